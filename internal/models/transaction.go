// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the serialization layout for transaction dates (ISO, day precision).
const DateLayout = "2006-01-02"

// Transaction represents a single financial transaction recovered from
// recognized text. Every field except SourceFile may be absent; absence of
// one field never invalidates another. A Transaction is fully populated at
// construction time and not mutated afterwards.
type Transaction struct {
	Date        *time.Time       // transaction date, day precision
	Amount      *decimal.Decimal // strictly positive when present
	Description string
	Account     string
	Category    string
	Reference   string // alphanumeric, at least 4 characters when present
	Balance     *decimal.Decimal
	SourceFile  string   // origin of the recognized text, opaque
	Confidence  *float64 // OCR confidence in [0,1], passed through verbatim
}

// TransactionRow is the CSV shape of a Transaction. Absent optional fields
// serialize as empty strings, dates as YYYY-MM-DD and amounts as plain
// decimal text without currency markers or grouping separators.
type TransactionRow struct {
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
	Account     string `csv:"account"`
	Category    string `csv:"category"`
	Reference   string `csv:"reference"`
	Balance     string `csv:"balance"`
	SourceFile  string `csv:"source_file"`
	Confidence  string `csv:"confidence"`
}

// Row converts a Transaction to its CSV row representation.
func (t *Transaction) Row() TransactionRow {
	row := TransactionRow{
		Description: t.Description,
		Account:     t.Account,
		Category:    t.Category,
		Reference:   t.Reference,
		SourceFile:  t.SourceFile,
	}
	if t.Date != nil {
		row.Date = t.Date.Format(DateLayout)
	}
	if t.Amount != nil {
		row.Amount = t.Amount.String()
	}
	if t.Balance != nil {
		row.Balance = t.Balance.String()
	}
	if t.Confidence != nil {
		row.Confidence = fmt.Sprintf("%.2f", *t.Confidence)
	}
	return row
}

// FromRow reconstructs a Transaction from its CSV row representation.
// Empty cells map back to absent fields.
func FromRow(row TransactionRow) (Transaction, error) {
	tx := Transaction{
		Description: row.Description,
		Account:     row.Account,
		Category:    row.Category,
		Reference:   row.Reference,
		SourceFile:  row.SourceFile,
	}
	if row.Date != "" {
		d, err := time.Parse(DateLayout, row.Date)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid date %q: %w", row.Date, err)
		}
		tx.Date = &d
	}
	if row.Amount != "" {
		a, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid amount %q: %w", row.Amount, err)
		}
		tx.Amount = &a
	}
	if row.Balance != "" {
		b, err := decimal.NewFromString(row.Balance)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid balance %q: %w", row.Balance, err)
		}
		tx.Balance = &b
	}
	if row.Confidence != "" {
		c, err := strconv.ParseFloat(row.Confidence, 64)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid confidence %q: %w", row.Confidence, err)
		}
		tx.Confidence = &c
	}
	return tx, nil
}

// CategoryConfig maps a category name to the keywords that select it.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// ProcessingResult summarizes a processing run over a set of images.
type ProcessingResult struct {
	ProcessedCount   int
	TransactionCount int
	FailedCount      int
	Transactions     []Transaction
}
