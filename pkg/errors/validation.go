package errors

import "math"

// ValidateLength checks that a length read from a description is a usable
// positive number. NaN and infinities are rejected along with zero and
// negative values, since any of them would poison every coordinate derived
// from it.
func ValidateLength(code Code, what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number, got %v", what, v)
	}
	if v <= 0 {
		return New(code, "%s must be positive, got %v", what, v)
	}
	return nil
}

// ValidateOffset checks that a signed offset (such as a row indent) is finite.
func ValidateOffset(code Code, what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number, got %v", what, v)
	}
	return nil
}
