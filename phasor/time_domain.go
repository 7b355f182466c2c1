package phasor

import "math"

// Time-domain phasor transforms.
//
// A decay curve I sampled over one repetition period maps onto the phasor
// plot through the normalized discrete transforms
//
//	G = Σ Iᵢ·cos(nωtᵢ) / Σ Iᵢ
//	S = Σ Iᵢ·sin(nωtᵢ) / Σ Iᵢ
//
// with left-edge bin times tᵢ = i·T/len(I), so the first bin contributes at
// t = 0. Callers with a non-uniform acquisition grid can supply their own
// times through Options.IntegrationTimes.

// Real returns the real (G) phasor component of a decay curve over the given
// repetition period.
//
// Errors:
//   - ErrNonPositivePeriod      — period <= 0.
//   - ErrEmptyDecay             — decay has no samples.
//   - ErrBadHarmonic            — opts.Harmonic < 0 (0 selects the default, 1).
//   - ErrBadOmega               — opts.Omega < 0 (0 derives ω = 2π/period).
//   - ErrIntegrationTimesLength — opts.IntegrationTimes is set but does not
//     match the decay length.
//   - ErrZeroIntensity          — decay sums to zero.
func Real(decay []float64, period float64, opts Options) (float64, error) {
	g, _, err := transform(decay, period, opts, true, false)

	return g, err
}

// Imaginary returns the imaginary (S) phasor component of a decay curve over
// the given repetition period. Errors are identical to Real.
func Imaginary(decay []float64, period float64, opts Options) (float64, error) {
	_, s, err := transform(decay, period, opts, false, true)

	return s, err
}

// Coordinates returns both phasor components (G, S) of a decay curve in one
// pass. Errors are identical to Real.
func Coordinates(decay []float64, period float64, opts Options) (float64, float64, error) {
	return transform(decay, period, opts, true, true)
}

// transform evaluates the requested components; validation happens here so
// every public entry point shares the same policy.
func transform(decay []float64, period float64, opts Options, wantG, wantS bool) (float64, float64, error) {
	if period <= 0 {
		return 0, 0, ErrNonPositivePeriod
	}
	if len(decay) == 0 {
		return 0, 0, ErrEmptyDecay
	}
	if opts.Harmonic < 0 {
		return 0, 0, ErrBadHarmonic
	}
	if opts.Omega < 0 {
		return 0, 0, ErrBadOmega
	}
	if opts.IntegrationTimes != nil && len(opts.IntegrationTimes) != len(decay) {
		return 0, 0, ErrIntegrationTimesLength
	}

	harmonic := opts.Harmonic
	if harmonic == 0 {
		harmonic = 1
	}
	omega := opts.Omega
	if omega == 0 {
		omega = 2.0 * math.Pi / period
	}

	dt := period / float64(len(decay))
	freq := harmonic * omega

	var total, g, s float64
	for i, v := range decay {
		t := float64(i) * dt
		if opts.IntegrationTimes != nil {
			t = opts.IntegrationTimes[i]
		}
		total += v
		if wantG {
			g += v * math.Cos(freq*t)
		}
		if wantS {
			s += v * math.Sin(freq*t)
		}
	}
	if total == 0 {
		return 0, 0, ErrZeroIntensity
	}

	return g / total, s / total, nil
}
