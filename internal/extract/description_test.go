package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDescription(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "english label",
			text:     "Description: Monthly rent payment",
			expected: "Monthly rent payment",
			found:    true,
		},
		{
			name:     "vietnamese label",
			text:     "Nội dung: Thanh toán hóa đơn điện",
			expected: "Thanh toán hóa đơn điện",
			found:    true,
		},
		{
			name:     "note label",
			text:     "Note: Lunch with the team",
			expected: "Lunch with the team",
			found:    true,
		},
		{
			name:     "trailing reference clause is cut from the capture",
			text:     "Description: Transfer to supplier Reference: TXN123456789",
			expected: "Transfer to supplier",
			found:    true,
		},
		{
			name:     "fallback picks the first meaningful line",
			text:     "15/03/2024\n250.000 VND\nCoffee with friends\nREF123456",
			expected: "Coffee with friends",
			found:    true,
		},
		{
			name:  "verbose vietnamese date line is not a description",
			text:  "Ngày 25 tháng 12 năm 2023",
			found: false,
		},
		{
			name:  "bare code line is not a description",
			text:  "REF123456\nTXN99887766",
			found: false,
		},
		{
			name:  "all lines too short",
			text:  "ok\nhi\nyes",
			found: false,
		},
		{
			name:     "short labeled capture falls back to the whole line",
			text:     "Note: ok",
			expected: "Note: ok",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, found := e.ExtractDescription(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, desc)
		})
	}
}
