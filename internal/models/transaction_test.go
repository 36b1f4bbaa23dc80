package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowRoundTrip(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("1500000")
	balance := decimal.RequireFromString("2345.67")
	confidence := 0.93

	tx := Transaction{
		Date:        &date,
		Amount:      &amount,
		Description: "Transfer to supplier",
		Account:     "checking",
		Category:    "Suppliers",
		Reference:   "TXN123456789",
		Balance:     &balance,
		SourceFile:  "receipt.png",
		Confidence:  &confidence,
	}

	row := tx.Row()
	assert.Equal(t, "2024-03-15", row.Date)
	assert.Equal(t, "1500000", row.Amount)
	assert.Equal(t, "0.93", row.Confidence)

	back, err := FromRow(row)
	require.NoError(t, err)

	require.NotNil(t, back.Date)
	assert.True(t, back.Date.Equal(date))
	require.NotNil(t, back.Amount)
	assert.True(t, back.Amount.Equal(amount))
	require.NotNil(t, back.Balance)
	assert.True(t, back.Balance.Equal(balance))
	assert.Equal(t, tx.Description, back.Description)
	assert.Equal(t, tx.Reference, back.Reference)
	assert.Equal(t, tx.SourceFile, back.SourceFile)
	require.NotNil(t, back.Confidence)
	assert.Equal(t, confidence, *back.Confidence)
}

func TestRowAbsentFieldsSerializeEmpty(t *testing.T) {
	tx := Transaction{SourceFile: "scan.jpg"}
	row := tx.Row()

	assert.Empty(t, row.Date)
	assert.Empty(t, row.Amount)
	assert.Empty(t, row.Balance)
	assert.Empty(t, row.Confidence)
	assert.Equal(t, "scan.jpg", row.SourceFile)

	back, err := FromRow(row)
	require.NoError(t, err)
	assert.Nil(t, back.Date)
	assert.Nil(t, back.Amount)
	assert.Nil(t, back.Balance)
	assert.Nil(t, back.Confidence)
}

func TestFromRowRejectsMalformedCells(t *testing.T) {
	_, err := FromRow(TransactionRow{Date: "15/03/2024"})
	assert.Error(t, err)

	_, err = FromRow(TransactionRow{Amount: "1.500.000"})
	assert.Error(t, err)

	_, err = FromRow(TransactionRow{Confidence: "high"})
	assert.Error(t, err)
}
