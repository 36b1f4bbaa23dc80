package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaptransact/internal/models"
)

func sampleTransactions() []models.Transaction {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("1500000")
	confidence := 0.93

	return []models.Transaction{
		{
			Date:        &date,
			Amount:      &amount,
			Description: "Transfer to supplier",
			Reference:   "TXN123456789",
			SourceFile:  "receipt.png",
			Confidence:  &confidence,
		},
		{
			Description: "Coffee with friends",
			SourceFile:  "note.jpg",
		},
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out", "transactions.csv")

	err := WriteTransactionsToCSV(sampleTransactions(), csvFile)
	require.NoError(t, err)

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,amount,description,account,category,reference,balance,source_file,confidence", lines[0])
	assert.Contains(t, lines[1], "2024-03-15")
	assert.Contains(t, lines[1], "1500000")
	assert.Contains(t, lines[1], "Transfer to supplier")
	assert.Contains(t, lines[2], "Coffee with friends")
}

func TestWriteTransactionsToCSVEmptySlice(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "transactions.csv")

	err := WriteTransactionsToCSV([]models.Transaction{}, csvFile)
	require.NoError(t, err)

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date,amount,description")
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "transactions.csv")
	original := sampleTransactions()

	require.NoError(t, WriteTransactionsToCSV(original, csvFile))

	read, err := ReadTransactionsFromCSV(csvFile)
	require.NoError(t, err)
	require.Len(t, read, len(original))

	require.NotNil(t, read[0].Date)
	assert.True(t, read[0].Date.Equal(*original[0].Date))
	require.NotNil(t, read[0].Amount)
	assert.True(t, read[0].Amount.Equal(*original[0].Amount))
	assert.Equal(t, original[0].Reference, read[0].Reference)

	assert.Nil(t, read[1].Date)
	assert.Nil(t, read[1].Amount)
	assert.Equal(t, original[1].Description, read[1].Description)
}

func TestSetDelimiter(t *testing.T) {
	defer SetDelimiter(',')

	SetDelimiter(';')
	csvFile := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date;amount;description")
}
