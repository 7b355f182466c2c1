package simulation

import "math"

// fwhmToSigma converts a full width at half maximum into the standard
// deviation of the underlying Gaussian: σ = FWHM / (2·√(2·ln 2)).
func fwhmToSigma(fwhm float64) float64 {
	return fwhm / (2.0 * math.Sqrt(2.0*math.Ln2))
}

// GaussianIRF simulates a 1-dimensional Gaussian instrument response
// function sampled at bins points across [0, period], parameterized by its
// full width at half maximum and the temporal position of its peak:
//
//	σ = FWHM / (2·√(2·ln 2))
//	IRF(t) ∝ e^(−(t−center)² / (2σ²))
//
// The curve is normalized to unit sum so convolving with it preserves total
// intensity.
//
// Errors:
//   - ErrNonPositiveSamples — bins <= 0.
//   - ErrNonPositivePeriod  — period <= 0.
//   - ErrNonPositiveWidth   — width <= 0.
func GaussianIRF(bins int, period, width, center float64) ([]float64, error) {
	if bins <= 0 {
		return nil, ErrNonPositiveSamples
	}
	if period <= 0 {
		return nil, ErrNonPositivePeriod
	}
	if width <= 0 {
		return nil, ErrNonPositiveWidth
	}

	sigma := fwhmToSigma(width)
	irf := make([]float64, bins)
	var total float64
	for i, t := range linspace(0, period, bins) {
		d := (t - center) / sigma
		irf[i] = math.Exp(-0.5 * d * d)
		total += irf[i]
	}
	for i := range irf {
		irf[i] /= total
	}

	return irf, nil
}
