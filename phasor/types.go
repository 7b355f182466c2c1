package phasor

import "errors"

// Sentinel errors returned by the phasor package.
var (
	// ErrEmptyDecay indicates that an empty decay curve was supplied.
	ErrEmptyDecay = errors.New("phasor: decay curve is empty")

	// ErrZeroIntensity indicates that the decay curve sums to zero, leaving
	// the normalized transform undefined.
	ErrZeroIntensity = errors.New("phasor: decay curve has zero total intensity")

	// ErrNonPositivePeriod indicates a zero or negative repetition period.
	ErrNonPositivePeriod = errors.New("phasor: period must be positive")

	// ErrBadHarmonic indicates a negative harmonic override; zero selects
	// the default (the fundamental).
	ErrBadHarmonic = errors.New("phasor: harmonic must be non-negative")

	// ErrBadOmega indicates a negative angular-frequency override; zero
	// derives ω = 2π/period.
	ErrBadOmega = errors.New("phasor: omega must be non-negative")

	// ErrIntegrationTimesLength indicates that a supplied integration-time
	// vector does not match the decay length.
	ErrIntegrationTimesLength = errors.New("phasor: integration times differ in length from decay")
)

// Options configures the time-domain transforms.
//
// Harmonic         – harmonic number n of the transform (default 1, the
// fundamental).
// Omega            – angular-frequency override; 0 (the default) derives
// ω = 2π/period.
// IntegrationTimes – per-bin sample times; nil (the default) uses the uniform
// left-edge grid tᵢ = i·period/len(decay). Must match the decay length when
// set.
//
// The zero value of Options selects all defaults, so DefaultOptions() and
// Options{} are interchangeable.
type Options struct {
	Harmonic         float64   // harmonic number, ≥ 1 in typical use
	Omega            float64   // angular frequency override; 0 → 2π/period
	IntegrationTimes []float64 // per-bin times; nil → tᵢ = i·period/n
}

// DefaultOptions returns the canonical transform configuration: fundamental
// harmonic, angular frequency derived from the period, uniform left-edge
// time grid.
func DefaultOptions() Options {
	return Options{Harmonic: 1, Omega: 0, IntegrationTimes: nil}
}
