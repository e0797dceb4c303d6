package pricing

import (
	"encoding/json"
	"math"
	"testing"

	"numbeo/internal/models"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		currency string
		expected string
	}{
		{name: "nil", value: nil, currency: "USD", expected: "-"},
		{name: "non-numeric string", value: "abc", currency: "USD", expected: "-"},
		{name: "thousands separator", value: 1234.5, currency: "USD", expected: "1,234.50 USD"},
		{name: "small value", value: 3.5, currency: "USD", expected: "3.50 USD"},
		{name: "zero", value: 0.0, currency: "EUR", expected: "0.00 EUR"},
		{name: "millions", value: 1234567.891, currency: "JPY", expected: "1,234,567.89 JPY"},
		{name: "negative", value: -1234.5, currency: "USD", expected: "-1,234.50 USD"},
		{name: "integer", value: 1200, currency: "CHF", expected: "1,200.00 CHF"},
		{name: "numeric string", value: "1234.5", currency: "USD", expected: "1,234.50 USD"},
		{name: "json number", value: json.Number("99.999"), currency: "USD", expected: "100.00 USD"},
		{name: "valid amount", value: models.AmountOf(3), currency: "USD", expected: "3.00 USD"},
		{name: "missing amount", value: models.Amount{}, currency: "USD", expected: "-"},
		{name: "non-numeric amount", value: models.Amount{Raw: "n/a", Valid: true}, currency: "USD", expected: "-"},
		{name: "nil amount pointer", value: (*models.Amount)(nil), currency: "USD", expected: "-"},
		{name: "positive infinity", value: math.Inf(1), currency: "USD", expected: "-"},
		{name: "NaN", value: math.NaN(), currency: "USD", expected: "-"},
		{name: "boolean", value: true, currency: "USD", expected: "-"},
		{name: "unsupported type", value: []int{1}, currency: "USD", expected: "-"},
		{name: "empty currency", value: 1234.5, currency: "", expected: "1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(tt.value, tt.currency)
			if got != tt.expected {
				t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.value, tt.currency, got, tt.expected)
			}
		})
	}
}
