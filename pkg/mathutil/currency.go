// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// Round rounds a value to the nearest whole currency unit. The engine rounds
// after every balance, interest, and principal computation so that schedules
// match bank-statement rounding rather than a continuous amortization.
func Round(val float64) float64 {
	return math.Round(val)
}

// IsZero checks if a value is effectively zero (within half a currency unit)
func IsZero(val float64) bool {
	return math.Abs(val) < 0.5
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
