// Package parameter provides closed-form optical and instrument parameters
// used across fluorescence-lifetime analysis.
//
// ✨ Key features:
//   - Omega: angular frequency ω = 2π/T from a repetition period
//   - AbbeDiffractionLimit: Ernst Abbe's resolution limit d = λ/(2·NA)
//
// ⚙️ Usage:
//
//	import "github.com/flimlab/flimgo/parameter"
//
//	w, err := parameter.Omega(12.5e-9)            // laser period in seconds
//	d, err := parameter.AbbeDiffractionLimit(570, 1.45) // λ in nm
//
// All inputs are validated; non-physical values (zero or negative period,
// wavelength or aperture) return sentinel errors matched with errors.Is.
package parameter
