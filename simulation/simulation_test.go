package simulation_test

import (
	"math"
	"testing"

	"github.com/flimlab/flimgo/simulation"
	"github.com/flimlab/flimgo/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdealMonoexponential_Shape verifies the boundary values and the decay
// law at an interior grid point.
func TestIdealMonoexponential_Shape(t *testing.T) {
	const (
		samples = 101
		period  = 10.0
		tau     = 2.0
		initial = 5.0
	)

	decay, err := simulation.IdealMonoexponential(samples, period, tau, initial)
	require.NoError(t, err)
	require.Len(t, decay, samples)

	assert.Equal(t, initial, decay[0], "decay must start at the initial value")
	// Grid point i=50 sits at t = 5.0 exactly.
	assert.InDelta(t, initial*math.Exp(-5.0/tau), decay[50], 1e-12, "decay law violated")
	assert.InDelta(t, initial*math.Exp(-period/tau), decay[samples-1], 1e-12,
		"final value must follow the decay law at t = period")

	// Strictly decreasing throughout.
	for i := 1; i < samples; i++ {
		require.Less(t, decay[i], decay[i-1], "decay must be strictly decreasing at %d", i)
	}
}

// TestIdealMonoexponential_Validation verifies the sentinel errors.
func TestIdealMonoexponential_Validation(t *testing.T) {
	_, err := simulation.IdealMonoexponential(0, 10, 2, 1)
	assert.ErrorIs(t, err, simulation.ErrNonPositiveSamples, "zero samples must error")

	_, err = simulation.IdealMonoexponential(10, 0, 2, 1)
	assert.ErrorIs(t, err, simulation.ErrNonPositivePeriod, "zero period must error")

	_, err = simulation.IdealMonoexponential(10, 10, 0, 1)
	assert.ErrorIs(t, err, simulation.ErrNonPositiveTau, "zero lifetime must error")
}

// TestGaussianIRF_UnitSumAndPeak verifies normalization and the peak
// position of the simulated IRF.
func TestGaussianIRF_UnitSumAndPeak(t *testing.T) {
	const (
		bins   = 256
		period = 12.5
		width  = 0.5
		center = 3.0
	)

	irf, err := simulation.GaussianIRF(bins, period, width, center)
	require.NoError(t, err)
	require.Len(t, irf, bins)

	assert.InDelta(t, 1.0, stats.Sum(irf), 1e-12, "IRF must be normalized to unit sum")

	// The maximum must sit at the grid point closest to the center.
	peak := 0
	for i := range irf {
		if irf[i] > irf[peak] {
			peak = i
		}
	}
	wantPeak := int(math.Round(center / period * float64(bins-1)))
	assert.Equal(t, wantPeak, peak, "IRF peak must sit at the center bin")
}

// TestGaussianIRF_HalfMaximum verifies the FWHM parameterization on a fine
// grid: the curve falls to half its maximum at center ± FWHM/2.
func TestGaussianIRF_HalfMaximum(t *testing.T) {
	const (
		bins   = 10001
		period = 10.0
		width  = 2.0
		center = 5.0
	)

	irf, err := simulation.GaussianIRF(bins, period, width, center)
	require.NoError(t, err)

	// Grid step is period/(bins-1) = 1e-3, so these indices are exact.
	peak := irf[5000]
	left := irf[4000]  // t = center - width/2
	right := irf[6000] // t = center + width/2
	assert.InDelta(t, 0.5*peak, left, 1e-9, "left half-maximum mismatch")
	assert.InDelta(t, 0.5*peak, right, 1e-9, "right half-maximum mismatch")
}

// TestGaussianIRF_Validation verifies the sentinel errors.
func TestGaussianIRF_Validation(t *testing.T) {
	_, err := simulation.GaussianIRF(0, 10, 1, 5)
	assert.ErrorIs(t, err, simulation.ErrNonPositiveSamples, "zero bins must error")

	_, err = simulation.GaussianIRF(10, 0, 1, 5)
	assert.ErrorIs(t, err, simulation.ErrNonPositivePeriod, "zero period must error")

	_, err = simulation.GaussianIRF(10, 10, 0, 5)
	assert.ErrorIs(t, err, simulation.ErrNonPositiveWidth, "zero width must error")
}

// TestGaussianMonoexponential_PreservesCounts verifies that convolving with
// the unit-sum IRF preserves the total intensity of the ideal decay.
func TestGaussianMonoexponential_PreservesCounts(t *testing.T) {
	const (
		samples = 256
		period  = 12.5
		tau     = 3.0
		initial = 1.0
		width   = 0.5
		center  = 3.0
	)

	ideal, err := simulation.IdealMonoexponential(samples, period, tau, initial)
	require.NoError(t, err)
	conv, err := simulation.GaussianMonoexponential(samples, period, tau, initial, width, center)
	require.NoError(t, err)
	require.Len(t, conv, samples)

	assert.InDelta(t, stats.Sum(ideal), stats.Sum(conv), 1e-9,
		"circular convolution with a unit-sum IRF must preserve total counts")
}

// TestGaussianMonoexponential_PeakShift verifies that the recorded peak
// moves to the IRF center instead of t = 0.
func TestGaussianMonoexponential_PeakShift(t *testing.T) {
	const (
		samples = 256
		period  = 12.5
		tau     = 3.0
		center  = 3.0
	)

	conv, err := simulation.GaussianMonoexponential(samples, period, tau, 1.0, 0.5, center)
	require.NoError(t, err)

	peak := 0
	for i := range conv {
		if conv[i] > conv[peak] {
			peak = i
		}
	}
	peakTime := float64(peak) * period / float64(samples-1)
	assert.InDelta(t, center, peakTime, 0.25, "recorded peak must sit near the IRF center")
}
