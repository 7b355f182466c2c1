package integration_test

import (
	"testing"

	"github.com/flimlab/flimgo/integration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimpson_Quadratic verifies exactness on x² over [0, 2] with four
// subintervals (Simpson is exact through cubics).
func TestSimpson_Quadratic(t *testing.T) {
	// y = x² at x = 0, 0.5, 1, 1.5, 2.
	y := []float64{0, 0.25, 1, 2.25, 4}

	area, err := integration.Simpson(y, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, area, 1e-15, "∫x²dx over [0,2] must be 8/3")
}

// TestSimpson_OddSubintervals verifies rejection of an odd subinterval count.
func TestSimpson_OddSubintervals(t *testing.T) {
	_, err := integration.Simpson([]float64{0, 1, 4, 9}, 1)
	assert.ErrorIs(t, err, integration.ErrOddSubintervals, "3 subintervals must error")
}

// TestSimpson_BadInputs verifies the remaining validation errors.
func TestSimpson_BadInputs(t *testing.T) {
	_, err := integration.Simpson([]float64{0, 1, 4}, 0)
	assert.ErrorIs(t, err, integration.ErrNonPositiveStep, "zero step must error")

	_, err = integration.Simpson([]float64{0, 1}, 1)
	assert.ErrorIs(t, err, integration.ErrTooFewSamples, "two samples must error")
}

// TestCompositeSimpson_EvenDelegates verifies that an even subinterval count
// matches plain Simpson exactly.
func TestCompositeSimpson_EvenDelegates(t *testing.T) {
	y := []float64{0, 0.25, 1, 2.25, 4}

	want, err := integration.Simpson(y, 0.5)
	require.NoError(t, err)
	got, err := integration.CompositeSimpson(y, 0.5)
	require.NoError(t, err)
	assert.Equal(t, want, got, "even count must delegate to Simpson")
}

// TestCompositeSimpson_TrapezoidTail verifies the trapezoid fallback on an
// odd subinterval count against a hand computation.
func TestCompositeSimpson_TrapezoidTail(t *testing.T) {
	// y = x² at x = 0, 1, 2, 3: Simpson over [0,2] = 8/3, trapezoid over
	// [2,3] = (4+9)/2 = 6.5.
	y := []float64{0, 1, 4, 9}

	area, err := integration.CompositeSimpson(y, 1)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0+6.5, area, 1e-15, "prefix + trapezoid mismatch")
}

// TestCompositeSimpson_SingleSubinterval verifies the pure-trapezoid case.
func TestCompositeSimpson_SingleSubinterval(t *testing.T) {
	area, err := integration.CompositeSimpson([]float64{2, 4}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, area, "single subinterval must be one trapezoid")
}

// TestCompositeSimpson_BadInputs verifies validation errors.
func TestCompositeSimpson_BadInputs(t *testing.T) {
	_, err := integration.CompositeSimpson([]float64{1}, 1)
	assert.ErrorIs(t, err, integration.ErrTooFewSamples, "one sample must error")

	_, err = integration.CompositeSimpson([]float64{1, 2}, -1)
	assert.ErrorIs(t, err, integration.ErrNonPositiveStep, "negative step must error")
}
