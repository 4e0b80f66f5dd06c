package kappa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappastat/irr/kappa"
)

// TestPreprocess_DropsAllMissingRows verifies that rows with no finite
// entry are removed while partially-rated rows survive.
func TestPreprocess_DropsAllMissingRows(t *testing.T) {
	nan := kappa.Missing()
	ratings := [][]float64{
		{1, 0},
		{nan, nan},
		{nan, 1},
	}
	opts := kappa.DefaultOptions()

	cleaned, cats, observed, scale, err := kappa.Preprocess(ratings, &opts)
	require.NoError(t, err)
	assert.Len(t, cleaned, 2, "the all-missing row must be dropped")
	assert.Equal(t, []float64{0, 1}, cats, "inferred categories are the sorted observed values")
	assert.Equal(t, []float64{0, 1}, observed)
	assert.Equal(t, kappa.Nominal, scale, "scale defaults to nominal")
}

// TestPreprocess_NormalizesExplicitCategories verifies sorting and
// deduplication of a supplied category set.
func TestPreprocess_NormalizesExplicitCategories(t *testing.T) {
	opts := kappa.DefaultOptions()
	opts.Categories = []float64{2, 0, 1, 2, 0}

	_, cats, observed, _, err := kappa.Preprocess([][]float64{{1, 0}}, &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, cats)
	assert.Equal(t, []float64{0, 1}, observed, "observed reports only values actually present")
}

// TestPreprocess_UnknownCategory verifies rejection when an observed value
// falls outside the explicit set.
func TestPreprocess_UnknownCategory(t *testing.T) {
	opts := kappa.DefaultOptions()
	opts.Categories = []float64{0, 1}

	_, _, _, _, err := kappa.Preprocess([][]float64{{0, 2}}, &opts)
	assert.ErrorIs(t, err, kappa.ErrUnknownCategory)
}

// TestPreprocess_InsufficientItems covers the empty table and the table
// whose every row is entirely missing.
func TestPreprocess_InsufficientItems(t *testing.T) {
	opts := kappa.DefaultOptions()

	_, _, _, _, err := kappa.Preprocess(nil, &opts)
	assert.ErrorIs(t, err, kappa.ErrInsufficientItems, "empty table")

	nan := kappa.Missing()
	_, _, _, _, err = kappa.Preprocess([][]float64{{nan, nan}, {nan, nan}}, &opts)
	assert.ErrorIs(t, err, kappa.ErrInsufficientItems, "all rows missing")
}

// TestPreprocess_InsufficientRaters verifies the single-column rejection.
func TestPreprocess_InsufficientRaters(t *testing.T) {
	opts := kappa.DefaultOptions()

	_, _, _, _, err := kappa.Preprocess([][]float64{{1}, {0}}, &opts)
	assert.ErrorIs(t, err, kappa.ErrInsufficientRaters)
}

// TestPreprocess_RaggedMatrix verifies rejection of non-rectangular input.
func TestPreprocess_RaggedMatrix(t *testing.T) {
	opts := kappa.DefaultOptions()

	_, _, _, _, err := kappa.Preprocess([][]float64{{1, 0}, {1}}, &opts)
	assert.ErrorIs(t, err, kappa.ErrRaggedMatrix)
}

// TestPreprocess_InvalidScale verifies the eager scale check.
func TestPreprocess_InvalidScale(t *testing.T) {
	opts := kappa.DefaultOptions()
	opts.Scale = kappa.Scale(42)

	_, _, _, _, err := kappa.Preprocess([][]float64{{1, 0}}, &opts)
	assert.ErrorIs(t, err, kappa.ErrInvalidScale)
}

// TestIsMissing treats every non-finite entry as missing.
func TestIsMissing(t *testing.T) {
	assert.True(t, kappa.IsMissing(kappa.Missing()))
	assert.True(t, kappa.IsMissing(math.Inf(1)), "+Inf is missing")
	assert.True(t, kappa.IsMissing(math.Inf(-1)), "-Inf is missing")
	assert.False(t, kappa.IsMissing(0))
	assert.False(t, kappa.IsMissing(-3.5))
}
