// Package stats: numeric constraint and sentinel error set.
//
// This file defines the element-type constraint shared by the generic
// operations and ONLY package-level sentinel errors. All functions MUST
// return these sentinels and tests MUST check them via errors.Is. No
// function panics on user-triggered error conditions.

package stats

import "errors"

// Real is the capability set required of a sample element: totally ordered
// and convertible to float64. Weights are always float64 regardless of the
// sample's element type.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sentinel errors returned by the stats package. Every message is prefixed
// with "stats: ..." for consistency and easy grepping across logs.
var (
	// ErrLengthMismatch indicates that two index-aligned input sequences
	// differ in length. Raised before any mutation or computation begins.
	ErrLengthMismatch = errors.New("stats: input sequences differ in length")

	// ErrNegativeWeight indicates that a weight is negative. Weights must be
	// non-negative reals.
	ErrNegativeWeight = errors.New("stats: negative weight")

	// ErrZeroTotalWeight indicates that every weight is zero where a non-zero
	// total is required (effective sample size).
	ErrZeroTotalWeight = errors.New("stats: all weights are zero")

	// ErrInsufficientData indicates that fewer than two observations were
	// supplied to a pairwise statistic.
	ErrInsufficientData = errors.New("stats: need at least two observations")

	// ErrDegenerateInput indicates that one of the correlated variables is
	// constant after tie correction, leaving Tau-b undefined.
	ErrDegenerateInput = errors.New("stats: constant variable, correlation undefined")
)

// validateWeights rejects negative weights. Zero weights are legal here;
// callers that additionally require a non-zero total check that themselves.
func validateWeights(weights []float64) error {
	for _, w := range weights {
		if w < 0 {
			return ErrNegativeWeight
		}
	}

	return nil
}
