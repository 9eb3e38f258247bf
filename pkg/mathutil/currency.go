// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/roas-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApplyPercentage applies a percentage to a value, e.g. ApplyPercentage(500, 20) = 100.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// SafeRatio divides numerator by denominator, returning 0.0 when the
// denominator is exactly zero. The zero sentinel matches the behavior the
// calculators expose for undefined ratios rather than signaling an error.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0.0
	}
	return numerator / denominator
}

// RelativeChange returns the percentage change from base to value,
// or 0.0 when base is zero.
func RelativeChange(base, value float64) float64 {
	if base == 0 {
		return 0.0
	}
	return (value - base) / base * constants.PercentageMultiplier
}
