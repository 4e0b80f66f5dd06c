// Package kappa defines the option, enum and result types for the
// agreement engine.
package kappa

import "math"

// Scale selects the measurement-level assumption governing how partial
// credit is granted for near-miss disagreements.
//
//   - Nominal  — all disagreements are equally wrong; the weight matrix is
//     the identity regardless of the numeric category values.
//   - Ordinal  — penalty grows with the rank distance between categories;
//     numeric spacing is ignored.
//   - Interval — penalty grows with the numeric distance between category
//     values relative to the full category range.
//   - Ratio    — penalty grows with the squared relative difference of the
//     category values, honoring the scale's meaningful zero point.
type Scale int

const (
	// Nominal scale: identity weights, no partial credit. The default.
	Nominal Scale = iota

	// Ordinal scale: rank-span binomial weights.
	Ordinal

	// Interval scale: value-distance weights over the category range.
	Interval

	// Ratio scale: squared relative-difference weights.
	Ratio
)

// scaleNames maps each Scale to its canonical lowercase name.
var scaleNames = map[Scale]string{
	Nominal:  "nominal",
	Ordinal:  "ordinal",
	Interval: "interval",
	Ratio:    "ratio",
}

// String returns the canonical lowercase name of the scale, or "unknown"
// for values outside the enum.
func (s Scale) String() string {
	if name, ok := scaleNames[s]; ok {
		return name
	}

	return "unknown"
}

// valid reports whether s is one of the four recognized scales.
func (s Scale) valid() bool {
	_, ok := scaleNames[s]

	return ok
}

// ParseScale converts a scale name ("nominal", "ordinal", "interval",
// "ratio") into its Scale value. Returns ErrInvalidScale for anything else.
func ParseScale(name string) (Scale, error) {
	for s, n := range scaleNames {
		if n == name {
			return s, nil
		}
	}

	return Nominal, ErrInvalidScale
}

// Options configures Compute.
//
// Fields:
//   - Categories — the full set of possible category values. May be empty,
//     in which case the set is inferred as the sorted distinct finite
//     values observed in the ratings. Order and duplicates are normalized.
//   - Scale      — measurement scale; defaults to Nominal.
//   - Reporter   — diagnostic sink for the human-readable summary; nil
//     means silent. Reporting never affects the numeric result.
type Options struct {
	Categories []float64
	Scale      Scale
	Reporter   Reporter
}

// DefaultOptions returns the canonical defaults: inferred categories,
// nominal scale, no reporting.
func DefaultOptions() Options {
	return Options{Scale: Nominal}
}

// Result carries the coefficient and the descriptive facts of one run.
// On failure Kappa, PO and PC are NaN and the error names the condition.
type Result struct {
	Kappa float64 // chance-corrected agreement coefficient, κ ∈ (−∞, 1]
	PO    float64 // observed weighted agreement, P_O ∈ [0, 1]
	PC    float64 // bias-corrected chance agreement, P_C

	Items      int       // items remaining after dropping all-missing rows
	Raters     int       // rater columns
	Categories []float64 // resolved category set, ascending
	Observed   []float64 // distinct finite values seen in the ratings, ascending
	Scale      Scale     // resolved measurement scale
}

// Label names the coefficient for display: "Cohen's kappa" for exactly two
// raters, "Conger's kappa" otherwise.
func (r Result) Label() string {
	if r.Raters == 2 {
		return "Cohen's kappa"
	}

	return "Conger's kappa"
}

// Missing returns the marker for an absent rating (NaN).
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v marks an absent rating. Any non-finite entry
// (NaN or ±Inf) is treated as missing; only finite values can match a
// category.
func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
