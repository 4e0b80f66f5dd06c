package kappa

import (
	"fmt"

	"github.com/kappastat/irr/matrix"
)

// buildWeights derives the q×q partial-credit weight matrix W from the
// resolved category set (sorted ascending) and the measurement scale.
//
// Rules, for 0-based category positions k, l with values v_k, v_l:
//   - Nominal:  W = identity; every disagreement is equally wrong, whatever
//     the numeric values.
//   - Ordinal:  W[k,l] = 1 − C(span,2)/C(q,2) with span = |k−l|+1, the
//     inclusive number of ranks spanned. Depends on rank only.
//   - Interval: W[k,l] = 1 − |v_k−v_l| / (max−min). Depends on spacing only.
//   - Ratio:    W[k,l] = 1 − ((v_k−v_l)/(v_k+v_l))² / ((max−min)/(max+min))².
//     Rejected with ErrZeroSumCategories when any two distinct category
//     values sum to zero, so no NaN or Inf weight can ever escape.
//
// W[k,k] = 1 for every scale, and a single-category set yields the 1×1
// identity: the only pair is the diagonal, so every formula degenerates to
// perfect agreement.
// Complexity: O(q²) time and memory.
func buildWeights(cats []float64, scale Scale) (*matrix.Dense, error) {
	if !scale.valid() {
		return nil, fmt.Errorf("scale %d: %w", int(scale), ErrInvalidScale)
	}
	q := len(cats)

	// Nominal overrides any partial-credit computation, and a lone category
	// admits no off-diagonal pair under any scale.
	if scale == Nominal || q == 1 {
		w, err := matrix.NewIdentity(q)
		if err != nil {
			return nil, fmt.Errorf("buildWeights: %w", err)
		}

		return w, nil
	}

	w, err := matrix.NewDense(q, q)
	if err != nil {
		return nil, fmt.Errorf("buildWeights: %w", err)
	}

	switch scale {
	case Ordinal:
		fillOrdinal(w, q)
	case Interval:
		fillInterval(w, cats)
	case Ratio:
		if err = fillRatio(w, cats); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("scale %d: %w", int(scale), ErrInvalidScale)
	}

	return w, nil
}

// fillOrdinal writes rank-span binomial weights: the penalty for a k/l
// disagreement is the share of unordered rank pairs inside the spanned
// range, out of all C(q,2) pairs over the full range.
func fillOrdinal(w *matrix.Dense, q int) {
	mMax := binomial2(q)
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			span := k - l
			if span < 0 {
				span = -span
			}
			span++ // ranks spanned, inclusive
			_ = w.Set(k, l, 1.0-binomial2(span)/mMax)
		}
	}
}

// fillInterval writes value-distance weights normalized by the full
// category range. cats is sorted ascending with q >= 2 distinct values,
// so the range is strictly positive.
func fillInterval(w *matrix.Dense, cats []float64) {
	q := len(cats)
	rng := cats[q-1] - cats[0]
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			d := cats[k] - cats[l]
			if d < 0 {
				d = -d
			}
			_ = w.Set(k, l, 1.0-d/rng)
		}
	}
}

// fillRatio writes squared relative-difference weights. Any two distinct
// category values summing to zero (including min+max) would divide by zero,
// so that category set is rejected up front.
func fillRatio(w *matrix.Dense, cats []float64) error {
	q := len(cats)
	for k := 0; k < q; k++ {
		for l := k + 1; l < q; l++ {
			if cats[k]+cats[l] == 0 {
				return fmt.Errorf("categories %g and %g: %w", cats[k], cats[l], ErrZeroSumCategories)
			}
		}
	}

	// Denominator: squared relative spread of the whole set.
	spread := (cats[q-1] - cats[0]) / (cats[q-1] + cats[0])
	spreadSq := spread * spread

	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			if k == l {
				// Perfect agreement weight; also covers v_k = v_l = 0,
				// where the relative difference is 0/0 by convention 1.
				_ = w.Set(k, l, 1.0)

				continue
			}
			rel := (cats[k] - cats[l]) / (cats[k] + cats[l])
			_ = w.Set(k, l, 1.0-(rel*rel)/spreadSq)
		}
	}

	return nil
}

// binomial2 returns C(n, 2) = n·(n−1)/2, the number of unordered pairs
// among n ranks, as a float64.
func binomial2(n int) float64 {
	return float64(n*(n-1)) / 2.0
}
