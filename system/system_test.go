// SPDX-License-Identifier: MIT
package system_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/closure"
	"github.com/katalvlaran/prism/domain"
	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/omega"
	"github.com/katalvlaran/prism/potential"
	"github.com/katalvlaran/prism/solver"
	"github.com/katalvlaran/prism/system"
)

// TestPairTable_Symmetric checks unordered keys, FillUnset and Unset.
func TestPairTable_Symmetric(t *testing.T) {
	tbl, err := system.NewPairTable[int]([]string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Len(t, tbl.Unset(), 6)

	require.NoError(t, tbl.Set("B", "A", 7))
	v, err := tbl.Get("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = tbl.Get("C", "C")
	assert.ErrorIs(t, err, system.ErrPairUnset)
	assert.ErrorIs(t, err, prism.ErrConfiguration)

	assert.ErrorIs(t, tbl.Set("A", "Z", 1), system.ErrUnknownType)

	assert.Equal(t, 5, tbl.FillUnset(-1))
	assert.Empty(t, tbl.Unset())
	v, _ = tbl.Get("A", "B")
	assert.Equal(t, 7, v, "FillUnset must not overwrite")

	var visited []string
	tbl.Each(func(p system.Pair, _ int) { visited = append(visited, p.String()) })
	assert.Equal(t, []string{"A-A", "A-B", "A-C", "B-B", "B-C", "C-C"}, visited)

	v, ok := tbl.At(2, 0)
	assert.True(t, ok)
	assert.Equal(t, -1, v)
	_, ok = tbl.At(3, 0)
	assert.False(t, ok)
}

// TestNew_BadInput rejects empty, blank, duplicated types and bad kT.
func TestNew_BadInput(t *testing.T) {
	_, err := system.New(nil, 1)
	assert.ErrorIs(t, err, system.ErrBadTypes)
	_, err = system.New([]string{"A", " "}, 1)
	assert.ErrorIs(t, err, system.ErrBadTypes)
	_, err = system.New([]string{"A", "A"}, 1)
	assert.ErrorIs(t, err, system.ErrBadTypes)
	_, err = system.New([]string{"A"}, 0)
	assert.ErrorIs(t, err, system.ErrBadValue)
}

// TestDensities checks the site and pair density matrices.
func TestDensities(t *testing.T) {
	sys, err := system.New([]string{"A", "B"}, 1)
	require.NoError(t, err)
	_, err = sys.SiteDensity()
	assert.ErrorIs(t, err, system.ErrIncomplete)

	require.NoError(t, sys.SetDensity("A", 0.2))
	require.NoError(t, sys.SetDensity("B", 0.3))
	assert.ErrorIs(t, sys.SetDensity("B", -1), system.ErrBadValue)
	assert.ErrorIs(t, sys.SetDensity("C", 1), system.ErrUnknownType)

	site, err := sys.SiteDensity()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.5, 0.5, 0.3}, site.RawRowMajor(), 1e-15)

	pair, err := sys.PairDensity()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.04, 0.06, 0.06, 0.09}, pair.RawRowMajor(), 1e-15)

	total, err := sys.TotalDensity()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, total, 1e-15)

	require.NoError(t, sys.SetDiameter("B", 2))
	sigma, err := sys.ContactDistance("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.5, sigma)
}

// newScenario builds the two-type hard-sphere/PY scenario.
func newScenario(t *testing.T) *system.System {
	t.Helper()
	sys, err := system.New([]string{"A", "B"}, 1.0)
	require.NoError(t, err)
	dom, err := domain.New(0.1, 512)
	require.NoError(t, err)
	sys.SetDomain(dom)
	require.NoError(t, sys.SetDensity("A", 0.5))
	require.NoError(t, sys.SetDensity("B", 0.5))

	hs, err := potential.NewHardSphere(potential.WithSigma(1.0))
	require.NoError(t, err)
	sys.Potential.FillUnset(hs)
	sys.Closure.FillUnset(closure.PercusYevick{})
	gauss, err := omega.NewGaussian(1.0, 10)
	require.NoError(t, err)
	require.NoError(t, sys.Omega.Set("A", "A", omega.SingleSite{}))
	require.NoError(t, sys.Omega.Set("A", "B", omega.NoIntra{}))
	require.NoError(t, sys.Omega.Set("B", "B", gauss))

	return sys
}

// TestAssemble_Incomplete lists every missing part.
func TestAssemble_Incomplete(t *testing.T) {
	sys, err := system.New([]string{"A", "B"}, 1.0)
	require.NoError(t, err)
	require.NoError(t, sys.Omega.Set("A", "A", omega.SingleSite{}))

	_, err = sys.Assemble()
	require.Error(t, err)
	assert.ErrorIs(t, err, system.ErrIncomplete)
	assert.ErrorIs(t, err, prism.ErrConfiguration)
	for _, want := range []string{"domain", "density unset for A, B", "closure unset for A-A, A-B, B-B", "omega unset for A-B, B-B"} {
		assert.Contains(t, err.Error(), want)
	}

	_, err = sys.Solver()
	assert.ErrorIs(t, err, system.ErrIncomplete)
}

// TestAssemble_Scenario checks the evaluated arrays.
func TestAssemble_Scenario(t *testing.T) {
	sys := newScenario(t)
	a, err := sys.Assemble()
	require.NoError(t, err)
	assert.Empty(t, a.Warnings)

	in := a.Inputs
	assert.Equal(t, matrix.Fourier, in.Omega.Space())
	assert.Equal(t, matrix.Real, in.Potential.Space())
	v, _ := in.Omega.At(0, 0, 0)
	assert.Equal(t, 1.0, v)
	v, _ = in.Omega.At(10, 0, 1)
	assert.Equal(t, 0.0, v)
	v, _ = in.Potential.At(8, 1, 1) // r = 0.9
	assert.Equal(t, potential.DefaultHighValue, v)
	v, _ = in.Potential.At(9, 1, 1) // r = 1.0
	assert.Equal(t, 0.0, v)
	assert.Len(t, in.Closures, 3)

	p, err := sys.Solver()
	require.NoError(t, err)
	assert.Equal(t, solver.Assembled, p.State())
}

// TestAssemble_SnapLogging resolves σ from diameters and reports snapping.
func TestAssemble_SnapLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	sys, err := system.New([]string{"A", "B"}, 1.0)
	require.NoError(t, err)
	sys.SetLogger(logger)
	dom, _ := domain.New(0.1, 64)
	sys.SetDomain(dom)
	require.NoError(t, sys.SetDensity("A", 0.1))
	require.NoError(t, sys.SetDensity("B", 0.1))
	require.NoError(t, sys.SetDiameter("B", 1.04)) // A-B σ = 1.02, B-B σ = 1.04
	sys.Closure.FillUnset(closure.HyperNettedChain{})
	sys.Omega.FillUnset(omega.SingleSite{})

	unset, _ := potential.NewHardSphere()
	sys.Potential.FillUnset(unset)
	far, _ := potential.NewHardSphere(potential.WithSigma(20))
	require.NoError(t, sys.Potential.Set("A", "A", far))

	a, err := sys.Assemble()
	require.NoError(t, err)

	require.Len(t, a.Warnings, 1)
	assert.Equal(t, "A-A", a.Warnings[0].Pair.String())
	assert.InDelta(t, 6.4, a.Warnings[0].Snapped, 1e-12)

	sigma, ok := a.Potentials[matrix.PairIndex(0, 1, 2)].Contact()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, sigma, 1e-12)
	sigma, _ = a.Potentials[matrix.PairIndex(1, 1, 2)].Contact()
	assert.InDelta(t, 1.0, sigma, 1e-12)

	var infos, warns int
	for _, e := range hook.AllEntries() {
		switch e.Level {
		case logrus.InfoLevel:
			infos++
		case logrus.WarnLevel:
			warns++
			assert.Equal(t, "A-A", e.Data["pair"])
		}
	}
	assert.Equal(t, 2, infos)
	assert.Equal(t, 1, warns)
}
