package stats

// WeightedMergeSort — weighted inversion counting merge sort
//
// Description:
//
//	Sorts data ascending in place while carrying weights under the identical
//	permutation, and returns the total weighted inversion mass: the sum of
//	weight[i]·weight[j] over every pair (i, j) that appears out of order in
//	the input (i before j, data[i] > data[j]).
//
// Algorithm Outline (bottom-up):
//  1. Start with sorted runs of width 1.
//  2. On each pass, merge adjacent runs of the current width with a standard
//     two-pointer merge, then double the width; repeat until one run remains.
//  3. Whenever a right-run element is emitted ahead of pending left-run
//     elements, every one of those pending pairs is a resolved inversion;
//     its mass is weight(right) · Σ weight(pending left).
//  4. Equal values are never counted as inverted: on ties the left-run
//     element is emitted first, which also makes the sort stable.
//
// The iterative (bottom-up) formulation is chosen over a recursive one to
// bound auxiliary stack depth and keep the total-work accounting direct.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) (merge buffer)
//
// Errors:
//   - ErrLengthMismatch — len(data) != len(weights); no mutation occurs.
//   - ErrNegativeWeight — a weight is negative; no mutation occurs.

// pairBuf carries one sample value together with its weight so a merge step
// can never separate the two — the (value, weight) pairing is moved as a
// single unit through the buffer.
type pairBuf[T Real] struct {
	value  T
	weight float64
}

// WeightedMergeSort sorts data ascending and permutes weights in lock-step,
// returning the weighted inversion count. Both slices are mutated in place;
// this is the declared contract, not an incidental behavior — callers that
// need the original order must copy beforehand.
//
// Stability: original relative order is preserved among equal values, so
// downstream tie grouping sees ties contiguous and in input order.
//
// Example:
//
//	data := []float64{3, 1, 2}
//	w := []float64{1, 1, 1}
//	inv, err := stats.WeightedMergeSort(data, w) // inv == 2
func WeightedMergeSort[T Real](data []T, weights []float64) (float64, error) {
	if len(data) != len(weights) {
		return 0, ErrLengthMismatch
	}
	if err := validateWeights(weights); err != nil {
		return 0, err
	}

	n := len(data)
	if n < 2 {
		return 0, nil
	}

	buf := make([]pairBuf[T], n)
	var inversions float64

	for width := 1; width < n; width *= 2 {
		// Merge adjacent runs [lo, mid) and [mid, hi). A left run with no
		// right sibling is already in place and is skipped.
		for lo := 0; lo+width < n; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, n)

			// Weight mass still pending in the left run; each right-run
			// emission is discordant with exactly this much mass.
			var leftMass float64
			for i := lo; i < mid; i++ {
				leftMass += weights[i]
			}

			i, j, k := lo, mid, 0
			for i < mid && j < hi {
				if data[i] <= data[j] {
					// Ties resolve left-first: stable and not inverted.
					buf[k] = pairBuf[T]{data[i], weights[i]}
					leftMass -= weights[i]
					i++
				} else {
					buf[k] = pairBuf[T]{data[j], weights[j]}
					inversions += weights[j] * leftMass
					j++
				}
				k++
			}
			for i < mid {
				buf[k] = pairBuf[T]{data[i], weights[i]}
				i++
				k++
			}
			for j < hi {
				buf[k] = pairBuf[T]{data[j], weights[j]}
				j++
				k++
			}

			// Copy the merged run back, value and weight together.
			for p := 0; p < k; p++ {
				data[lo+p] = buf[p].value
				weights[lo+p] = buf[p].weight
			}
		}
	}

	return inversions, nil
}
