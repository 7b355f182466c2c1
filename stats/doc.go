// Package stats implements weighted rank statistics over numeric sequences:
// a weighted merge-sort inversion counter, Kendall's Tau-b rank correlation
// with tie correction, and scalar reducers (sum, effective sample size).
//
// 🚀 What is weighted rank correlation?
//
//	Kendall's Tau-b measures monotone association between two variables by
//	comparing the relative order of observation pairs.  The weighted variant
//	lets each observation contribute unequally: a pair (i, j) carries mass
//	w[i]·w[j] instead of 1.  It is widely used in:
//	  • Pixel-weighted image statistics (intensity as confidence)
//	  • Survey analysis with sampling weights
//	  • Robust agreement measures between rankings
//
// ✨ Key features:
//   - bottom-up weighted merge sort: O(n log n), stable, counts weighted
//     inversions while sorting (WeightedMergeSort)
//   - Tau-b with tie correction for both variables (WeightedKendallTauB)
//   - effective sample size of a weight vector (EffectiveSampleSize)
//   - generic over element type: float and signed-integer samples share one
//     implementation (the Real constraint)
//
// ⚙️ Usage:
//
//	import "github.com/flimlab/flimgo/stats"
//
//	// mutating primitive: sorts data and weights in lock-step,
//	// returns the weighted inversion mass
//	inv, err := stats.WeightedMergeSort(data, weights)
//
//	// pure correlation: operates on private copies
//	tau, err := stats.WeightedKendallTauB(a, b, weights)
//
// Performance:
//
//   - WeightedMergeSort:    Time O(n log n), Memory O(n)
//   - WeightedKendallTauB:  Time O(n log n), Memory O(n)
//   - Sum / EffectiveSampleSize: Time O(n), Memory O(1)
//
// All errors are package-level sentinels (ErrLengthMismatch, ErrNegativeWeight,
// ErrZeroTotalWeight, ErrInsufficientData, ErrDegenerateInput) matched with
// errors.Is.  Inputs are validated before any mutation.
//
// See examples in example_test.go.
package stats
