package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReference(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "labeled reference",
			text:     "Reference: TXN123456789",
			expected: "TXN123456789",
			found:    true,
		},
		{
			name:     "transaction id label",
			text:     "Transaction ID: TXN123456789",
			expected: "TXN123456789",
			found:    true,
		},
		{
			name:     "label glued to the code",
			text:     "REF123456",
			expected: "123456",
			found:    true,
		},
		{
			name:     "vietnamese label",
			text:     "Mã GD: 8843221907",
			expected: "8843221907",
			found:    true,
		},
		{
			name:     "atm code",
			text:     "ATM WD998877",
			expected: "WD998877",
			found:    true,
		},
		{
			name:     "fund transfer code",
			text:     "FT20240315001 completed",
			expected: "20240315001",
			found:    true,
		},
		{
			name:  "too short code abandons the pattern",
			text:  "Ref: AB1",
			found: false,
		},
		{
			name:  "label words without a code",
			text:  "Transfer to supplier",
			found: false,
		},
		{
			name:  "no reference present",
			text:  "Coffee with friends",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, found := e.ExtractReference(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestExtractReferenceNeverShort(t *testing.T) {
	e := New(nil)

	inputs := []string{
		"Ref: A1", "ID: 99", "ATM X1", "FT 12", "Ref:", "trans 7",
	}
	for _, text := range inputs {
		ref, found := e.ExtractReference(text)
		if found {
			assert.GreaterOrEqual(t, len(ref), 4, "input %q yielded %q", text, ref)
		}
	}
}
