// SPDX-License-Identifier: MIT
package potential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/potential"
)

// TestSquareWell_Boundaries evaluates exactly at σ, σ+α and in between.
func TestSquareWell_Boundaries(t *testing.T) {
	sw, err := potential.NewSquareWell(1.5, 0.5, potential.WithSigma(1.0))
	require.NoError(t, err)

	u, err := sw.Calculate([]float64{0.5, 1.0, 1.25, 1.5, 2.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{potential.DefaultHighValue, potential.DefaultHighValue, -1.5, 0, 0}, u)
}

// TestHardSphere checks the strict boundary and the high-value option.
func TestHardSphere(t *testing.T) {
	hs, err := potential.NewHardSphere(potential.WithSigma(1.0), potential.WithHighValue(1e4))
	require.NoError(t, err)
	u, err := hs.Calculate([]float64{0.9, 1.0, 1.1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1e4, 0, 0}, u)
}

// TestSigmaUnset verifies the precondition error and its resolution.
func TestSigmaUnset(t *testing.T) {
	hs, err := potential.NewHardSphere()
	require.NoError(t, err)
	_, ok := hs.Contact()
	assert.False(t, ok)

	_, err = hs.Calculate([]float64{1})
	assert.ErrorIs(t, err, potential.ErrSigmaUnset)
	assert.ErrorIs(t, err, prism.ErrPrecondition)

	resolved := hs.WithContact(2.0)
	sigma, ok := resolved.Contact()
	assert.True(t, ok)
	assert.Equal(t, 2.0, sigma)
	_, ok = hs.Contact()
	assert.False(t, ok, "WithContact must not mutate the receiver")

	u, err := resolved.Calculate([]float64{1.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{potential.DefaultHighValue, 0}, u)
}

// TestExponential checks the decay beyond contact.
func TestExponential(t *testing.T) {
	e, err := potential.NewExponential(2, 0.5, potential.WithSigma(1))
	require.NoError(t, err)
	u, err := e.Calculate([]float64{1, 1.5})
	require.NoError(t, err)
	assert.Equal(t, potential.DefaultHighValue, u[0])
	assert.InDelta(t, -2*math.Exp(-1), u[1], 1e-15)
}

// TestLennardJones covers the minimum, the cutoff and the shift.
func TestLennardJones(t *testing.T) {
	rmin := math.Pow(2, 1.0/6.0)

	plain, err := potential.NewLennardJones(1, potential.WithSigma(1))
	require.NoError(t, err)
	u, err := plain.Calculate([]float64{1, rmin, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0, u[0], 1e-12)
	assert.InDelta(t, -1, u[1], 1e-12)
	assert.Less(t, u[2], 0.0)

	cut, err := potential.NewLennardJones(1, potential.WithSigma(1), potential.WithCutoff(2.5), potential.WithShift())
	require.NoError(t, err)
	u, err = cut.Calculate([]float64{2.5, 2.6})
	require.NoError(t, err)
	assert.InDelta(t, 0, u[0], 1e-15)
	assert.Equal(t, 0.0, u[1])

	_, err = potential.NewLennardJones(1, potential.WithCutoff(-1))
	assert.ErrorIs(t, err, potential.ErrBadParameter)
}

// TestWCA checks continuity at the cut and the +ε shift.
func TestWCA(t *testing.T) {
	w, err := potential.NewWeeksChandlerAndersen(1, potential.WithSigma(1))
	require.NoError(t, err)
	rc := math.Pow(2, 1.0/6.0)
	u, err := w.Calculate([]float64{1, rc - 1e-9, rc, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, u[0], 1e-12)
	assert.InDelta(t, 0, u[1], 1e-6)
	assert.Equal(t, 0.0, u[2])
	assert.Equal(t, 0.0, u[3])
}

// TestHardCoreLJ places the well depth at contact.
func TestHardCoreLJ(t *testing.T) {
	h, err := potential.NewHardCoreLennardJones(0.5, potential.WithSigma(1))
	require.NoError(t, err)
	u, err := h.Calculate([]float64{0.99, 1})
	require.NoError(t, err)
	assert.Equal(t, potential.DefaultHighValue, u[0])
	assert.InDelta(t, -0.5, u[1], 1e-15)
}

// TestYukawa checks the screened form at and beyond contact.
func TestYukawa(t *testing.T) {
	y, err := potential.NewYukawa(2, 1, potential.WithSigma(1))
	require.NoError(t, err)
	u, err := y.Calculate([]float64{0.5, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, potential.DefaultHighValue, u[0])
	assert.InDelta(t, 2, u[1], 1e-15)
	assert.InDelta(t, math.Exp(-1), u[2], 1e-15)
}

// TestBadParameters rejects invalid widths and contact distances.
func TestBadParameters(t *testing.T) {
	_, err := potential.NewSquareWell(1, 0)
	assert.ErrorIs(t, err, potential.ErrBadParameter)
	_, err = potential.NewExponential(1, -1)
	assert.ErrorIs(t, err, potential.ErrBadParameter)
	_, err = potential.NewYukawa(1, -1)
	assert.ErrorIs(t, err, potential.ErrBadParameter)
	_, err = potential.NewHardSphere(potential.WithSigma(-1))
	assert.ErrorIs(t, err, prism.ErrConfiguration)
}

// TestString reports unset σ readably.
func TestString(t *testing.T) {
	hs, _ := potential.NewHardSphere()
	assert.Equal(t, "Potential<HardSphere sigma=unset>", hs.String())
	assert.Equal(t, "Potential<HardSphere sigma=1>", hs.WithContact(1).String())
}
