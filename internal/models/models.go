package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ItemMetadata represents a single entry of the Numbeo item catalog
type ItemMetadata struct {
	ItemID       OptionalInt    `json:"item_id"`
	DisplayOrder OptionalInt    `json:"display_order"`
	Category     OptionalString `json:"category"`
	Name         OptionalString `json:"name"`
}

// PriceEntry represents an observed price for an item in one city
type PriceEntry struct {
	ItemID       OptionalInt    `json:"item_id"`
	ItemName     OptionalString `json:"item_name"`
	AveragePrice Amount         `json:"average_price"`
	LowestPrice  Amount         `json:"lowest_price"`
	HighestPrice Amount         `json:"highest_price"`
	DataPoints   OptionalInt    `json:"data_points"`
}

// ItemsResponse is the body returned by /api/items
type ItemsResponse struct {
	Items []ItemMetadata `json:"items"`
	Error string         `json:"error,omitempty"`
}

// CityPrices is the body returned by /api/city_prices
type CityPrices struct {
	Name     string       `json:"name"`
	Currency string       `json:"currency"`
	Prices   []PriceEntry `json:"prices"`
	Error    string       `json:"error,omitempty"`
}

// Row is one line of the cost-of-living table
type Row struct {
	DisplayOrder int64       `json:"displayOrder" yaml:"displayOrder"`
	Category     string      `json:"category" yaml:"category"`
	Name         string      `json:"name" yaml:"name"`
	Average      string      `json:"average" yaml:"average"`
	Lowest       string      `json:"lowest" yaml:"lowest"`
	Highest      string      `json:"highest" yaml:"highest"`
	DataPoints   OptionalInt `json:"dataPoints" yaml:"dataPoints"`
}

// Cells returns the row in table column order
func (r Row) Cells() []any {
	return []any{
		r.DisplayOrder,
		r.Category,
		r.Name,
		r.Average,
		r.Lowest,
		r.Highest,
		r.DataPoints,
	}
}

// Report is the complete result handed to the output formatters
type Report struct {
	City        string    `json:"city" yaml:"city"`
	Currency    string    `json:"currency" yaml:"currency"`
	Rows        []Row     `json:"rows" yaml:"rows"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
}

// OptionalInt holds a JSON integer that may be absent, null or malformed.
// Only integer literals are accepted; "3", 3.5 or true decode as not valid.
type OptionalInt struct {
	Value int64
	Valid bool
}

// IntOf returns a valid OptionalInt
func IntOf(v int64) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler and never fails
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}
	v, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return nil
	}
	*o = IntOf(v)
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(o.Value, 10)), nil
}

// MarshalYAML implements yaml.Marshaler
func (o OptionalInt) MarshalYAML() (interface{}, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.Value, nil
}

// Or returns the value, or def when it is not valid
func (o OptionalInt) Or(def int64) int64 {
	if !o.Valid {
		return def
	}
	return o.Value
}

// String renders the value, "-" when not valid
func (o OptionalInt) String() string {
	if !o.Valid {
		return "-"
	}
	return strconv.FormatInt(o.Value, 10)
}

// OptionalString holds a JSON string that may be absent, null or of another type
type OptionalString struct {
	Value string
	Valid bool
}

// StringOf returns a valid OptionalString
func StringOf(v string) OptionalString {
	return OptionalString{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler and never fails
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	*o = OptionalString{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	*o = StringOf(s)
	return nil
}

// Or returns the value, or def when it is not valid
func (o OptionalString) Or(def string) string {
	if !o.Valid {
		return def
	}
	return o.Value
}

// Amount holds a price as sent by the API: a JSON number, a numeric string,
// null or absent. Raw keeps the literal so formatting can decide how to render
// it; Valid only reports that something other than null was present.
type Amount struct {
	Raw   string
	Valid bool
}

// AmountOf returns a valid Amount from a float
func AmountOf(v float64) Amount {
	return Amount{Raw: strconv.FormatFloat(v, 'f', -1, 64), Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler and never fails
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		*a = Amount{Raw: s, Valid: true}
		return nil
	}
	if _, err := strconv.ParseFloat(string(trimmed), 64); err != nil {
		return nil
	}
	*a = Amount{Raw: string(trimmed), Valid: true}
	return nil
}

// Float parses the amount. ok is false for missing or non-numeric values.
func (a Amount) Float() (float64, bool) {
	if !a.Valid {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
