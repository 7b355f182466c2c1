// Package simulation synthesizes fluorescence-lifetime decay curves and
// Gaussian instrument response functions (IRFs) for testing and calibration
// pipelines.
//
// ✨ Key features:
//   - IdealMonoexponential: I(t) = I₀·e^(−t/τ) on a uniform time grid
//   - GaussianIRF: unit-sum Gaussian pulse parameterized by FWHM and center
//   - GaussianMonoexponential: the ideal decay circularly convolved with a
//     Gaussian IRF — the curve a real instrument would record
//
// ⚙️ Usage:
//
//	import "github.com/flimlab/flimgo/simulation"
//
//	decay, err := simulation.GaussianMonoexponential(256, 12.5, 3.0, 1.0, 0.5, 3.0)
//
// Performance:
//
//   - IdealMonoexponential / GaussianIRF: O(n) time
//   - GaussianMonoexponential: O(n²) time (direct circular convolution)
//
// The convolution is circular because the decay is periodic with the laser
// repetition period: photons excited near the end of one period are recorded
// at the start of the next.
package simulation
