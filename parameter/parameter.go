package parameter

import (
	"errors"
	"math"
)

// Sentinel errors returned by the parameter package.
var (
	// ErrNonPositivePeriod indicates a zero or negative repetition period.
	ErrNonPositivePeriod = errors.New("parameter: period must be positive")

	// ErrNonPositiveWavelength indicates a zero or negative wavelength.
	ErrNonPositiveWavelength = errors.New("parameter: wavelength must be positive")

	// ErrNonPositiveAperture indicates a zero or negative numerical aperture.
	ErrNonPositiveAperture = errors.New("parameter: numerical aperture must be positive")
)

// Omega returns the angular frequency for the given repetition period:
//
//	ω = 2π / T
//
// The result carries the reciprocal unit of the period (a period in seconds
// yields rad/s).
func Omega(period float64) (float64, error) {
	if period <= 0 {
		return 0, ErrNonPositivePeriod
	}

	return 2.0 * math.Pi / period, nil
}

// AbbeDiffractionLimit returns Ernst Abbe's diffraction limit for a
// microscope objective:
//
//	d = λ / (2·NA)
//
// where λ is the wavelength of light and NA the numerical aperture. The
// result carries the unit of the wavelength.
func AbbeDiffractionLimit(wavelength, na float64) (float64, error) {
	if wavelength <= 0 {
		return 0, ErrNonPositiveWavelength
	}
	if na <= 0 {
		return 0, ErrNonPositiveAperture
	}

	return wavelength / (2.0 * na), nil
}
