// Package kappa: sentinel error set.
// One sentinel per failure condition; every failure is fatal and detected at
// the earliest stage where it is knowable (input shape → scale → category
// membership → agreement reductions). Tests match these via errors.Is.

package kappa

import "errors"

var (
	// ErrInsufficientItems — fewer than 1 item remains after removing rows
	// whose entries are entirely missing.
	ErrInsufficientItems = errors.New("kappa: fewer than 1 item with valid ratings")

	// ErrInsufficientRaters — fewer than 2 raters (columns) supplied;
	// pairwise agreement is undefined for a single rater.
	ErrInsufficientRaters = errors.New("kappa: fewer than 2 raters")

	// ErrUnknownCategory — a finite rating value is not a member of the
	// resolved category set.
	ErrUnknownCategory = errors.New("kappa: observed value not in category set")

	// ErrInvalidScale — the scale is not one of Nominal, Ordinal, Interval,
	// Ratio.
	ErrInvalidScale = errors.New("kappa: invalid measurement scale")

	// ErrZeroSumCategories — ratio scale rejected because two distinct
	// category values sum to zero, which would make the relative-difference
	// weight divide by zero.
	ErrZeroSumCategories = errors.New("kappa: ratio scale requires no two distinct categories summing to zero")

	// ErrNoQualifyingItems — no item carries two or more ratings, so
	// observed agreement P_O is undefined.
	ErrNoQualifyingItems = errors.New("kappa: no item has at least 2 ratings")

	// ErrDegenerateChance — chance agreement P_C is exactly 1 while observed
	// agreement is not perfect, making κ undefined.
	ErrDegenerateChance = errors.New("kappa: chance agreement equals 1, kappa undefined")

	// ErrRaggedMatrix — rating rows have unequal lengths; the input must be
	// a rectangular items × raters table.
	ErrRaggedMatrix = errors.New("kappa: rating rows have unequal lengths")
)
