package integration

import "errors"

// Sentinel errors returned by the integration package.
var (
	// ErrTooFewSamples indicates that the curve has too few points for the
	// requested rule.
	ErrTooFewSamples = errors.New("integration: too few samples")

	// ErrOddSubintervals indicates that Simpson's 1/3 rule was asked to
	// integrate an odd number of subintervals.
	ErrOddSubintervals = errors.New("integration: odd number of subintervals")

	// ErrNonPositiveStep indicates a zero or negative sample spacing.
	ErrNonPositiveStep = errors.New("integration: step must be positive")
)

// Simpson approximates the definite integral of a uniformly sampled curve y
// with Simpson's composite 1/3 rule:
//
//	∫ f(x) dx ≈ (Δx/3) · [y₀ + 4y₁ + 2y₂ + 4y₃ + ... + 2yₙ₋₂ + 4yₙ₋₁ + yₙ]
//
// The rule pairs subintervals, so the number of subintervals (len(y) − 1)
// must be even.
//
// Errors:
//   - ErrNonPositiveStep  — dx <= 0.
//   - ErrTooFewSamples    — fewer than three samples.
//   - ErrOddSubintervals  — len(y) − 1 is odd; use CompositeSimpson instead.
func Simpson(y []float64, dx float64) (float64, error) {
	if dx <= 0 {
		return 0, ErrNonPositiveStep
	}
	if len(y) < 3 {
		return 0, ErrTooFewSamples
	}

	n := len(y) - 1 // subinterval count
	if n%2 != 0 {
		return 0, ErrOddSubintervals
	}

	integral := y[0] + y[n]
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			integral += 4.0 * y[i]
		} else {
			integral += 2.0 * y[i]
		}
	}

	return dx / 3.0 * integral, nil
}

// CompositeSimpson approximates the definite integral of a uniformly sampled
// curve y for any subinterval count: an even count uses Simpson's 1/3 rule
// directly; an odd count applies the rule to the even prefix and closes the
// final subinterval with a trapezoid:
//
//	∫ f(x) dx ≈ (Δx/2) · [yₙ₋₁ + yₙ]
//
// Errors:
//   - ErrNonPositiveStep — dx <= 0.
//   - ErrTooFewSamples   — fewer than two samples.
func CompositeSimpson(y []float64, dx float64) (float64, error) {
	if dx <= 0 {
		return 0, ErrNonPositiveStep
	}
	if len(y) < 2 {
		return 0, ErrTooFewSamples
	}

	n := len(y) - 1
	if n == 1 {
		// A single subinterval: the trapezoid is all there is.
		return dx / 2.0 * (y[0] + y[1]), nil
	}
	if n%2 == 0 {
		return Simpson(y, dx)
	}

	// Simpson on the even prefix, trapezoid over the last subinterval.
	integral, err := Simpson(y[:n], dx)
	if err != nil {
		return 0, err
	}

	return integral + dx/2.0*(y[n-1]+y[n]), nil
}
