// Package matrix: central validators shared by all kernels.
// Every kernel validates through these helpers so that error priority stays
// uniform: nil operand → shape/dimension mismatch → index errors at access.

package matrix

import "fmt"

// validatorErrorf wraps err with a validator tag, preserving errors.Is matching.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows(),
// the precondition for the matrix product a·b.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	// Nil checks first: nil dominates any shape report.
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	// Inner dimensions must chain.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n for a vector operand.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
