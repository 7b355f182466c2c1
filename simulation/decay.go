package simulation

import "math"

// linspace returns n evenly spaced values from start to stop inclusive.
// A single-point grid collapses to [start].
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start

		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// IdealMonoexponential simulates a 1-dimensional ideal monoexponential decay
// curve:
//
//	I(t) = I₀ · e^(−t/τ)
//
// sampled at samples points across [0, period].
//
// Errors:
//   - ErrNonPositiveSamples — samples <= 0.
//   - ErrNonPositivePeriod  — period <= 0.
//   - ErrNonPositiveTau     — tau <= 0.
func IdealMonoexponential(samples int, period, tau, initialValue float64) ([]float64, error) {
	if samples <= 0 {
		return nil, ErrNonPositiveSamples
	}
	if period <= 0 {
		return nil, ErrNonPositivePeriod
	}
	if tau <= 0 {
		return nil, ErrNonPositiveTau
	}

	decay := make([]float64, samples)
	for i, t := range linspace(0, period, samples) {
		decay[i] = initialValue * math.Exp(-t/tau)
	}

	return decay, nil
}

// GaussianMonoexponential simulates the decay curve a real instrument would
// record: the ideal monoexponential decay circularly convolved with a
// Gaussian IRF of the given width (FWHM) and center.
//
// Errors: the union of IdealMonoexponential's and GaussianIRF's sentinels.
func GaussianMonoexponential(samples int, period, tau, initialValue, width, center float64) ([]float64, error) {
	decay, err := IdealMonoexponential(samples, period, tau, initialValue)
	if err != nil {
		return nil, err
	}
	irf, err := GaussianIRF(samples, period, width, center)
	if err != nil {
		return nil, err
	}

	return convolveCircular(decay, irf), nil
}

// convolveCircular returns the circular (periodic) convolution of two
// equal-length sequences: out[k] = Σᵢ a[i]·b[(k−i) mod n].
func convolveCircular(a, b []float64) []float64 {
	n := len(a)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var acc float64
		for i := 0; i < n; i++ {
			j := k - i
			if j < 0 {
				j += n
			}
			acc += a[i] * b[j]
		}
		out[k] = acc
	}

	return out
}
