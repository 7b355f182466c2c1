package stats

import (
	"math"
	"sort"
)

// WeightedKendallTauB — weighted Kendall's Tau-b rank correlation
//
// Description:
//
//	Measures monotone association between two equal-length samples a and b,
//	where observation i contributes with weight w[i]: a pair (i, j) carries
//	mass w[i]·w[j] instead of 1. Tau-b corrects the denominator for tied
//	values in either variable.
//
// Algorithm Outline (Knight-style, weighted):
//  1. Copy (a, b, w) into index-aligned triples; the caller's slices are
//     never touched.
//  2. Stable-sort the triples by a, breaking ties by b. The secondary key
//     keeps pairs tied in a free of b-inversions, so the merge pass counts
//     only genuinely discordant pairs.
//  3. Group equal-a runs for the first tie correction n₁, and equal-(a,b)
//     runs for the joint-tie mass n₃; each run with total weight Gw and
//     weight-of-squares Gw2 contributes Gw² − Gw2.
//  4. WeightedMergeSort the b sequence (carrying w) — the returned inversion
//     mass D counts each unordered discordant pair once.
//  5. b is now sorted; group its equal runs for the second tie correction n₂.
//  6. With n₀ = (Σw)² − Σw² (ordered-pair mass) assemble
//
//     τ_b = (n₀ − n₁ − n₂ + n₃ − 4·D) / √((n₀ − n₁)(n₀ − n₂))
//
//     where 4·D appears because n₀ and the tie masses count ordered pairs
//     while D counts unordered ones (C − D with C derived complementarily).
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n)
//
// Errors:
//   - ErrLengthMismatch   — the three inputs differ in length.
//   - ErrInsufficientData — fewer than two observations.
//   - ErrNegativeWeight   — a weight is negative.
//   - ErrDegenerateInput  — a variable is constant after tie correction
//     (includes the all-zero-weight case), leaving τ_b undefined.

// observation is one (a, b, w) triple carried through the reference sort.
type observation struct {
	a, b, w float64
}

// WeightedKendallTauB returns the weighted Kendall's Tau-b correlation
// coefficient between a and b under weights w, in [-1.0, 1.0]. The result is
// symmetric in a and b, and with unit weights it equals the classical
// (unweighted) Tau-b.
//
// Unlike WeightedMergeSort, this function has no visible side effects: all
// sorting happens on private copies.
func WeightedKendallTauB(a, b, w []float64) (float64, error) {
	if len(a) != len(b) || len(a) != len(w) {
		return 0, ErrLengthMismatch
	}
	if len(a) < 2 {
		return 0, ErrInsufficientData
	}
	if err := validateWeights(w); err != nil {
		return 0, err
	}

	n := len(a)
	obs := make([]observation, n)
	for i := 0; i < n; i++ {
		obs[i] = observation{a: a[i], b: b[i], w: w[i]}
	}

	// Reference order: a ascending, ties broken by b ascending.
	sort.SliceStable(obs, func(i, j int) bool {
		if obs[i].a != obs[j].a {
			return obs[i].a < obs[j].a
		}

		return obs[i].b < obs[j].b
	})

	// Total ordered-pair mass n0 = (Σw)² − Σw².
	var sumW, sumW2 float64
	for _, o := range obs {
		sumW += o.w
		sumW2 += o.w * o.w
	}
	n0 := sumW*sumW - sumW2

	// Tie corrections over the a-sorted order: equal-a runs (n1) and
	// equal-(a,b) runs (n3). Both are contiguous after the reference sort.
	n1 := tieMass(obs, func(x, y observation) bool { return x.a == y.a })
	n3 := tieMass(obs, func(x, y observation) bool { return x.a == y.a && x.b == y.b })

	// Discordant mass: weighted inversions of b in the a-sorted order.
	bSeq := make([]float64, n)
	wSeq := make([]float64, n)
	for i, o := range obs {
		bSeq[i] = o.b
		wSeq[i] = o.w
	}
	dis, err := WeightedMergeSort(bSeq, wSeq)
	if err != nil {
		return 0, err
	}

	// bSeq is sorted now; its equal runs give the second tie correction n2.
	n2 := tieMassSorted(bSeq, wSeq)

	denomA := n0 - n1
	denomB := n0 - n2
	if denomA <= 0 || denomB <= 0 {
		return 0, ErrDegenerateInput
	}

	return (n0 - n1 - n2 + n3 - 4.0*dis) / math.Sqrt(denomA*denomB), nil
}

// tieMass accumulates Gw² − Gw2 over maximal runs of observations judged
// equal by same. Runs are compared against the run head, which is exact for
// equality predicates.
func tieMass(obs []observation, same func(x, y observation) bool) float64 {
	var mass float64
	for i := 0; i < len(obs); {
		j := i + 1
		gw := obs[i].w
		gw2 := obs[i].w * obs[i].w
		for j < len(obs) && same(obs[i], obs[j]) {
			gw += obs[j].w
			gw2 += obs[j].w * obs[j].w
			j++
		}
		mass += gw*gw - gw2
		i = j
	}

	return mass
}

// tieMassSorted accumulates Gw² − Gw2 over maximal equal-value runs of an
// already-sorted sequence.
func tieMassSorted(values, weights []float64) float64 {
	var mass float64
	for i := 0; i < len(values); {
		j := i + 1
		gw := weights[i]
		gw2 := weights[i] * weights[i]
		for j < len(values) && values[j] == values[i] {
			gw += weights[j]
			gw2 += weights[j] * weights[j]
			j++
		}
		mass += gw*gw - gw2
		i = j
	}

	return mass
}
