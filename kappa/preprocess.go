package kappa

import (
	"fmt"
	"sort"
)

// minRaters is the smallest rater count for which pairwise agreement exists.
const minRaters = 2

// preprocess validates the raw ratings table and resolves the inputs the
// pipeline runs on.
//
// Stage 1 (Validate shape): scale must be recognized, the table must be
// rectangular with at least 2 columns and at least 1 row.
// Stage 2 (Clean): rows whose entries are all missing are dropped; at least
// one row must survive.
// Stage 3 (Resolve categories): the distinct finite observed values are
// collected; the category set is either the normalized explicit set (sorted,
// deduplicated) or the observed set itself. Every observed value must be a
// member of the category set.
//
// Returns the cleaned table, the resolved category set, the observed value
// set and the resolved scale. Every failure maps to one sentinel from
// errors.go and is detected at the earliest stage where it is knowable.
// Complexity: O(n·r + q·log q).
func preprocess(ratings [][]float64, opts *Options) (cleaned [][]float64, cats, observed []float64, scale Scale, err error) {
	// Stage 1 (Validate scale): knowable immediately, checked first.
	scale = opts.Scale
	if !scale.valid() {
		return nil, nil, nil, scale, fmt.Errorf("scale %d: %w", int(scale), ErrInvalidScale)
	}

	// Stage 1 (Validate shape): at least one row, rectangular, >= 2 columns.
	if len(ratings) == 0 {
		return nil, nil, nil, scale, ErrInsufficientItems
	}
	raters := len(ratings[0])
	for i, row := range ratings {
		if len(row) != raters {
			return nil, nil, nil, scale, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), raters, ErrRaggedMatrix)
		}
	}
	if raters < minRaters {
		return nil, nil, nil, scale, fmt.Errorf("%d rater(s): %w", raters, ErrInsufficientRaters)
	}

	// Stage 2 (Clean): keep only rows carrying at least one finite rating.
	cleaned = make([][]float64, 0, len(ratings))
	for _, row := range ratings {
		for _, v := range row {
			if !IsMissing(v) {
				cleaned = append(cleaned, row)

				break
			}
		}
	}
	if len(cleaned) < 1 {
		return nil, nil, nil, scale, ErrInsufficientItems
	}

	// Stage 3 (Observe): distinct finite values, ascending.
	seen := make(map[float64]struct{})
	for _, row := range cleaned {
		for _, v := range row {
			if !IsMissing(v) {
				seen[v] = struct{}{}
			}
		}
	}
	observed = make([]float64, 0, len(seen))
	for v := range seen {
		observed = append(observed, v)
	}
	sort.Float64s(observed)

	// Stage 3 (Resolve categories): explicit set normalized, or inferred.
	if len(opts.Categories) == 0 {
		cats = observed

		return cleaned, cats, observed, scale, nil
	}
	cats = normalizeCategories(opts.Categories)
	members := make(map[float64]struct{}, len(cats))
	for _, v := range cats {
		members[v] = struct{}{}
	}
	for _, v := range observed {
		if _, ok := members[v]; !ok {
			return nil, nil, nil, scale, fmt.Errorf("value %g: %w", v, ErrUnknownCategory)
		}
	}

	return cleaned, cats, observed, scale, nil
}

// normalizeCategories returns a sorted, deduplicated copy of the explicit
// category values. The input is never mutated.
func normalizeCategories(values []float64) []float64 {
	cats := make([]float64, len(values))
	copy(cats, values)
	sort.Float64s(cats)

	// Compact adjacent duplicates in place.
	out := cats[:0]
	for i, v := range cats {
		if i == 0 || v != cats[i-1] {
			out = append(out, v)
		}
	}

	return out
}
