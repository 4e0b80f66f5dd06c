package kappa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kappastat/irr/matrix"
)

// Compute derives the chance-corrected agreement coefficient from an
// items × raters table of numeric category assignments. NaN (or any
// non-finite value) marks a missing rating; see Missing/IsMissing.
//
// The pipeline is Preprocess → Weight Matrix → Tabulation → Agreement:
//
//	P_O    = mean over items with ≥2 ratings of the weighted fraction of
//	         agreeing ordered rater pairs on that item
//	P_C    = Σ_k Σ_l W[k,l]·(p̄_k·p̄_l − s_kl/r), Conger's bias-corrected
//	         chance agreement over the rater marginals
//	κ      = (P_O − P_C) / (1 − P_C)
//
// When every rater pair agrees perfectly, κ is 1 for any scale; when P_C
// is exactly 1 with imperfect observed agreement, κ is undefined and
// Compute fails with ErrDegenerateChance.
//
// A nil opts selects DefaultOptions. On any failure the returned Result
// carries NaN in Kappa, PO and PC, and the error wraps exactly one of the
// package sentinels. On success the Reporter (if any) receives the
// descriptive summary.
func Compute(ratings [][]float64, opts *Options) (Result, error) {
	// Apply options or defaults.
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	// Stage 1 (Preprocess): clean rows, resolve categories and scale.
	cleaned, cats, observed, scale, err := preprocess(ratings, opts)
	if err != nil {
		return undefinedResult(scale), err
	}
	res := Result{
		Items:      len(cleaned),
		Raters:     len(cleaned[0]),
		Categories: cats,
		Observed:   observed,
		Scale:      scale,
	}

	// Stage 2 (Weights): q×q partial-credit matrix for the scale.
	w, err := buildWeights(cats, scale)
	if err != nil {
		return undefinedResult(scale), err
	}

	// Stage 3 (Tabulate): item×category and rater×category counts, then
	// the weighted item counts as the product counts·W.
	itemCounts, raterCounts, err := tabulate(cleaned, cats)
	if err != nil {
		return undefinedResult(scale), err
	}
	weighted, err := matrix.Mul(itemCounts, w)
	if err != nil {
		return undefinedResult(scale), fmt.Errorf("weighted counts: %w", err)
	}

	// Stage 4 (Reduce): observed agreement, chance agreement, coefficient.
	po, err := observedAgreement(itemCounts, weighted)
	if err != nil {
		return undefinedResult(scale), err
	}
	pc, err := chanceAgreement(raterCounts, w)
	if err != nil {
		return undefinedResult(scale), err
	}

	if pc == 1 {
		// P_O = 1 forces κ = 1 in the limit: (P_O−P_C)/(1−P_C) is 1 for
		// every P_C < 1, and perfect observed agreement stays perfect.
		if po == 1 {
			res.Kappa, res.PO, res.PC = 1, po, pc
			reporter.Report(res)

			return res, nil
		}

		return undefinedResult(scale), ErrDegenerateChance
	}

	res.PO = po
	res.PC = pc
	res.Kappa = (po - pc) / (1 - pc)
	reporter.Report(res)

	return res, nil
}

// tabulate builds ItemCategoryCounts (n×q) and RaterCategoryCounts (r×q)
// from the cleaned table. Missing entries never match any category; the
// category set is guaranteed by preprocess to cover every finite value.
// Complexity: O(n·r).
func tabulate(cleaned [][]float64, cats []float64) (itemCounts, raterCounts *matrix.Dense, err error) {
	n, r, q := len(cleaned), len(cleaned[0]), len(cats)

	itemCounts, err = matrix.NewDense(n, q)
	if err != nil {
		return nil, nil, fmt.Errorf("item counts: %w", err)
	}
	raterCounts, err = matrix.NewDense(r, q)
	if err != nil {
		return nil, nil, fmt.Errorf("rater counts: %w", err)
	}

	// Category value → column index.
	index := make(map[float64]int, q)
	for k, v := range cats {
		index[v] = k
	}

	var i, g, k int
	var v, cur float64
	for i = 0; i < n; i++ {
		for g = 0; g < r; g++ {
			v = cleaned[i][g]
			if IsMissing(v) {
				continue
			}
			k = index[v] // membership guaranteed by preprocess
			cur, _ = itemCounts.At(i, k)
			_ = itemCounts.Set(i, k, cur+1)
			cur, _ = raterCounts.At(g, k)
			_ = raterCounts.Set(g, k, cur+1)
		}
	}

	return itemCounts, raterCounts, nil
}

// observedAgreement computes P_O: for each item with r_i >= 2 ratings, the
// weighted count of agreeing ordered rater pairs divided by r_i·(r_i−1),
// averaged uniformly over qualifying items.
//
// The per-item numerator is Σ_k counts[i,k]·(weighted[i,k] − 1): the
// weighted agreement across all ordered rater pairs with the self-pair
// contribution removed. This generalization is preserved verbatim;
// plausible-looking reformulations change the result for q > 2.
// Complexity: O(n·q).
func observedAgreement(itemCounts, weighted *matrix.Dense) (float64, error) {
	n := itemCounts.Rows()

	var sum float64
	var qualifying int
	for i := 0; i < n; i++ {
		icRow, err := itemCounts.Row(i)
		if err != nil {
			return math.NaN(), fmt.Errorf("observed agreement: %w", err)
		}
		wcRow, err := weighted.Row(i)
		if err != nil {
			return math.NaN(), fmt.Errorf("observed agreement: %w", err)
		}

		// r_i: ratings present on item i.
		ri := floats.Sum(icRow)
		if ri < minRaters {
			continue // a lone rating carries no pairwise information
		}

		var obs float64
		for k := range icRow {
			obs += icRow[k] * (wcRow[k] - 1)
		}
		sum += obs / (ri * (ri - 1))
		qualifying++
	}

	if qualifying == 0 {
		return math.NaN(), ErrNoQualifyingItems
	}

	return sum / float64(qualifying), nil
}

// chanceAgreement computes Conger's bias-corrected P_C from the rater
// marginals: p_gk is the fraction of rater g's ratings in category k,
// p̄_k the mean over raters, s_kl their Bessel-corrected sample covariance,
// and P_C = Σ_k Σ_l W[k,l]·(p̄_k·p̄_l − s_kl/r). The s_kl/r term removes
// the upward bias of chance agreement estimated from a finite rater sample.
// Complexity: O(r·q + q²).
func chanceAgreement(raterCounts, w *matrix.Dense) (float64, error) {
	r, q := raterCounts.Rows(), raterCounts.Cols()

	// Per-rater totals.
	totals, err := matrix.RowSums(raterCounts)
	if err != nil {
		return math.NaN(), fmt.Errorf("chance agreement: %w", err)
	}

	// Marginal proportions laid out by category: p[k][g] = p_gk.
	// A rater with no ratings contributes zero mass in every category.
	p := make([][]float64, q)
	for k := 0; k < q; k++ {
		p[k] = make([]float64, r)
	}
	var cnt float64
	for g := 0; g < r; g++ {
		if totals[g] == 0 {
			continue
		}
		for k := 0; k < q; k++ {
			cnt, err = raterCounts.At(g, k)
			if err != nil {
				return math.NaN(), fmt.Errorf("chance agreement: %w", err)
			}
			p[k][g] = cnt / totals[g]
		}
	}

	// Category base rates: p̄_k = mean over raters.
	pbar := make([]float64, q)
	for k := 0; k < q; k++ {
		pbar[k] = stat.Mean(p[k], nil)
	}

	// P_C with the finite-sample correction s_kl/r subtracted per cell.
	var pc, wkl, cov float64
	for k := 0; k < q; k++ {
		for l := 0; l < q; l++ {
			wkl, err = w.At(k, l)
			if err != nil {
				return math.NaN(), fmt.Errorf("chance agreement: %w", err)
			}
			if wkl == 0 {
				continue
			}
			cov = stat.Covariance(p[k], p[l], nil)
			pc += wkl * (pbar[k]*pbar[l] - cov/float64(r))
		}
	}

	return pc, nil
}

// undefinedResult is the sentinel Result returned on every failure: the
// numeric outputs are NaN, never a fabricated number.
func undefinedResult(scale Scale) Result {
	return Result{
		Kappa: math.NaN(),
		PO:    math.NaN(),
		PC:    math.NaN(),
		Scale: scale,
	}
}
