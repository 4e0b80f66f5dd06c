// Package irr is a small toolkit for chance-corrected inter-rater
// reliability analysis on categorical ratings.
//
// 🚀 What is irr?
//
//	A pure-Go library that computes generalized, weighted kappa
//	coefficients from a matrix of ratings (items × raters):
//		• Cohen's kappa for two raters
//		• Conger's multi-rater generalization for three or more
//		• Partial-credit weighting for nominal, ordinal, interval
//		  and ratio measurement scales
//		• Missing ratings (NaN) handled per item, no imputation
//
// ✨ Why choose irr?
//
//   - Minimal API – one Compute call, explicit Options, typed Result
//   - Deterministic – fixed traversal orders, no hidden randomness
//   - Pure Go – no cgo, tiny dependency surface
//   - Honest failures – sentinel errors, never a fabricated number
//
// Everything is organized under two subpackages:
//
//	kappa/  — the agreement engine: weights, tabulation, P_O, P_C, κ
//	matrix/ — small dense float64 matrix kernels used by the engine
//
// Quick sketch:
//
//	ratings := [][]float64{ // 4 items × 2 raters
//	    {1, 1},
//	    {1, 0},
//	    {0, 0},
//	    {0, 1},
//	}
//	opts := kappa.DefaultOptions()
//	res, err := kappa.Compute(ratings, &opts)
//
// Dive into kappa/doc.go for the formulas and a full walkthrough.
//
//	go get github.com/kappastat/irr
package irr
