// Package matrix: canonical kernels (Mul, Transpose, Scale, MatVec) and the
// reduction helpers built on top of them (RowSums, ColSums, AllClose).
// All kernels use the central validators, allocate exactly one result, and
// traverse in a fixed row-major order for reproducibility.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a·b into a freshly allocated Dense.
// Stage 1 (Validate): ValidateMulCompatible(a, b).
// Stage 2 (Execute): row-major i→k→j accumulation over the flat buffers,
// skipping zero a[i,k] entries (count matrices are mostly zeros).
// Stage 3 (Finalize): return the (a.Rows × b.Cols) result.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Row-major multiplication into res.data:
	// a.data layout: i*aCols + k; b.data layout: k*bCols + j.
	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: O(r*c) time and space.
func Transpose(m *Dense) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate the (c×r) result and copy via flat indexing.
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Scale returns a copy of m with every element multiplied by alpha.
// Complexity: O(r*c) time and space.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Single flat pass over the backing slice.
	res := m.Clone()
	for i := range res.data {
		res.data[i] *= alpha
	}

	return res, nil
}

// MatVec computes y = m·x where x has length m.Cols().
// Stage 1 (Validate): non-nil matrix, vector length matches columns.
// Stage 2 (Execute): per-row dot product in fixed i→j order.
// Complexity: O(r*c) time, O(r) space.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	// Validate matrix and vector shape
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Accumulate one dot product per row.
	y := make([]float64, m.r)
	var i, j, base int
	var s float64
	for i = 0; i < m.r; i++ {
		s = 0.0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			s += m.data[base+j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(r*c).
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	// Build an all-ones vector of length equal to the number of columns.
	ones := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		ones[j] = 1.0 // neutral element for summation
	}

	// Multiply m by the ones vector to get per-row sums.
	return MatVec(m, ones)
}

// ColSums returns vector c where c[j] = Σ_i m[i,j].
// Implementation: Transpose(m) then MatVec with ones(rows).
// Complexity: O(r*c).
func ColSums(m *Dense) ([]float64, error) {
	// Transpose m first.
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	// Per-column sums of m are per-row sums of mᵀ.
	sums, err := RowSums(mt)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return sums, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|. NaN never compares close.
// Complexity: O(r*c).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	// Nil checks first, then shape agreement.
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	// Flat elementwise comparison.
	for i := range a.data {
		diff := math.Abs(a.data[i] - b.data[i])
		if math.IsNaN(diff) || diff > atol+rtol*math.Abs(b.data[i]) {
			return false, nil
		}
	}

	return true, nil
}
