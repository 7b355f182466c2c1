package simulation

import "errors"

// Sentinel errors returned by the simulation package.
var (
	// ErrNonPositiveSamples indicates a zero or negative sample count.
	ErrNonPositiveSamples = errors.New("simulation: sample count must be positive")

	// ErrNonPositivePeriod indicates a zero or negative time period.
	ErrNonPositivePeriod = errors.New("simulation: period must be positive")

	// ErrNonPositiveTau indicates a zero or negative lifetime.
	ErrNonPositiveTau = errors.New("simulation: lifetime must be positive")

	// ErrNonPositiveWidth indicates a zero or negative IRF width (FWHM).
	ErrNonPositiveWidth = errors.New("simulation: IRF width must be positive")
)
