package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"numbeo/internal/models"
)

// Placeholder is rendered for any value that is missing or unusable
const Placeholder = "-"

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a price with thousands separators and two decimals,
// followed by the currency label, e.g. "1,234.56 USD". Missing, null,
// non-numeric and non-finite values render as "-". It never fails.
func FormatMoney(value any, currency string) string {
	num, ok := toFloat(value)
	if !ok || math.IsNaN(num) || math.IsInf(num, 0) {
		return Placeholder
	}

	text := moneyPrinter.Sprintf("%.2f", num)
	if currency == "" {
		return text
	}
	return text + " " + currency
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case models.Amount:
		return v.Float()
	case *models.Amount:
		if v == nil {
			return 0, false
		}
		return v.Float()
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
