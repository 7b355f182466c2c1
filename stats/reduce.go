package stats

// Sum returns the arithmetic sum of data as a float64.
// An empty sequence yields the additive identity, 0.
//
// Complexity: Time O(n), Memory O(1).
func Sum[T Real](data []T) float64 {
	var total float64
	for _, v := range data {
		total += float64(v)
	}

	return total
}

// EffectiveSampleSize returns the effective number of independent samples
// represented by a weighted sample set:
//
//	ESS = (Σ wᵢ)² / Σ (wᵢ²)
//
// With uniform weights the ESS equals the sample count; concentrating mass
// on fewer observations lowers it.
//
// Errors:
//   - ErrNegativeWeight  — a weight is negative.
//   - ErrZeroTotalWeight — the weight vector is empty or all-zero; the ratio
//     would divide by zero, so the call fails loudly instead.
//
// Complexity: Time O(n), Memory O(1).
func EffectiveSampleSize(weights []float64) (float64, error) {
	if err := validateWeights(weights); err != nil {
		return 0, err
	}

	var total, totalSq float64
	for _, w := range weights {
		total += w
		totalSq += w * w
	}
	if totalSq == 0 {
		return 0, ErrZeroTotalWeight
	}

	return total * total / totalSq, nil
}
