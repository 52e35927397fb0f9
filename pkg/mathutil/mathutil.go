// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/svanduffel/reach-planner/pkg/constants"
)

// RoundCurrency rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and for budget slots.
func RoundCurrency(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(val float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(val*factor) / factor
}

// Sum adds up a slice of values, ignoring non-finite terms.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		if isFinite(v) {
			total += v
		}
	}
	return total
}

// SafeDivide divides numerator by denominator, returning fallback when the
// division is undefined (zero or non-finite denominator, non-finite numerator).
func SafeDivide(numerator, denominator, fallback float64) float64 {
	if !isFinite(numerator) || !isFinite(denominator) || denominator == 0 {
		return fallback
	}
	return numerator / denominator
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

func isFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
