// Package kappa computes generalized, chance-corrected inter-rater
// agreement coefficients from a matrix of categorical ratings: Cohen's
// kappa for two raters and Conger's multi-rater generalization beyond,
// with partial-credit weighting for four measurement scales.
//
// 🚀 What is kappa?
//
//	Given an items × raters table of numeric category assignments
//	(NaN marks a missing rating), Compute derives:
//	  • a q×q weight matrix W from the category set and scale
//	    (nominal, ordinal, interval, ratio)
//	  • observed agreement P_O — the weighted fraction of agreeing
//	    rater pairs, averaged over items with at least two ratings
//	  • chance agreement P_C — Conger's expected agreement under
//	    independence, bias-corrected for the finite rater sample
//	  • κ = (P_O − P_C) / (1 − P_C)
//
// Algorithm Outline:
//  1. Preprocess: drop items with no valid rating, resolve the category
//     set (explicit or inferred from observed values), resolve the scale.
//  2. Build W: identity for nominal; rank-span binomial weights for
//     ordinal; value-distance weights for interval; squared relative
//     difference for ratio.
//  3. Tabulate item×category and rater×category counts; form the
//     weighted item counts as the matrix product counts·W.
//  4. Reduce to P_O, P_C and κ.
//
// Errors:
//
//	Every failure is fatal and eager: ErrInsufficientItems,
//	ErrInsufficientRaters, ErrUnknownCategory, ErrInvalidScale,
//	ErrZeroSumCategories, ErrNoQualifyingItems, ErrDegenerateChance,
//	ErrRaggedMatrix. The numeric fields of the returned Result are NaN
//	on failure — never a fabricated number.
//
// ⚙️ Usage:
//
//	import "github.com/kappastat/irr/kappa"
//
//	ratings := [][]float64{ // 4 items × 2 raters
//	    {1, 1},
//	    {1, 0},
//	    {0, 0},
//	    {0, 1},
//	}
//	opts := kappa.DefaultOptions()
//	opts.Scale = kappa.Nominal
//	res, err := kappa.Compute(ratings, &opts)
//	// res.Kappa, res.PO, res.PC
//
// Complexity:
//
//	Time   = O(n·r + n·q² + r·q + q²) for n items, r raters, q categories
//	Memory = O(n·q + r·q + q²)
//
// See example_test.go for runnable scenarios.
package kappa
