// Package phasor implements time-domain phasor analysis for
// fluorescence-lifetime decay curves: the normalized cosine/sine transforms
// that project a decay onto the phasor plot, the theoretical
// monoexponential reference coordinates, and calibration against a
// reference fluorophore of known lifetime.
//
// 🚀 What is a phasor plot?
//
//	A decay I(t) maps to a point (G, S) on the universal circle:
//	  G = Σ I(tᵢ)·cos(nωtᵢ) / Σ I(tᵢ)
//	  S = Σ I(tᵢ)·sin(nωtᵢ) / Σ I(tᵢ)
//	Monoexponential decays land exactly on the semicircle
//	  G = 1/(1+(ωτ)²),  S = ωτ/(1+(ωτ)²)
//	so deviations from it reveal lifetime mixtures without curve fitting.
//
// ✨ Key features:
//   - Real / Imaginary / Coordinates: discrete time-domain transforms with
//     optional harmonic and angular-frequency overrides (Options)
//   - MonoexponentialCoordinates, Modulation, Phase: plot geometry
//   - Calibrate: rotate & scale a measured (G, S) point
//   - ModulationAndPhase: derive calibration values from a reference lifetime
//
// ⚙️ Usage:
//
//	import "github.com/flimlab/flimgo/phasor"
//
//	g, s, err := phasor.Coordinates(decay, period, phasor.DefaultOptions())
//	m, p := phasor.ModulationAndPhase(g, s, refTau, omega)
//	gc, sc := phasor.Calibrate(g, s, m, p)
//
// Performance:
//
//   - Transforms: O(n) time, O(1) memory
//   - Geometry & calibration: O(1)
package phasor
