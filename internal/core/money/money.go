// Package money formats amounts for display. Aggregations keep full float
// precision; rounding to cents only happens here.
package money

import "github.com/shopspring/decimal"

const displayPlaces = 2

// Round rounds v half away from zero to two fractional digits.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(displayPlaces).Float64()
	return f
}

// Format renders v with exactly two fractional digits, e.g. "12.50".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(displayPlaces)
}

// FormatPercent renders a percentage with no fractional digits, e.g. "85".
func FormatPercent(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(0)
}
