package threshold

import "github.com/flimlab/flimgo/stats"

// ManualMask returns a boolean mask of the same length as data with true for
// every element strictly greater than the threshold and false otherwise.
// The input is never mutated; an empty input yields an empty mask.
func ManualMask[T stats.Real](data []T, thresh T) []bool {
	mask := make([]bool, len(data))
	for i, v := range data {
		mask[i] = v > thresh
	}

	return mask
}
