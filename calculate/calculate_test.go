// SPDX-License-Identifier: MIT
package calculate_test

import (
	"context"
	"math"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism/calculate"
	"github.com/katalvlaran/prism/closure"
	"github.com/katalvlaran/prism/domain"
	"github.com/katalvlaran/prism/omega"
	"github.com/katalvlaran/prism/potential"
	"github.com/katalvlaran/prism/solver"
	"github.com/katalvlaran/prism/system"
)

func solveFluid(t *testing.T, rho float64) *solver.Result {
	t.Helper()

	return solveFluidOn(t, rho, 0.05, 512)
}

// solveFluidOn solves a PY hard-sphere fluid of unit diameter on the given grid.
func solveFluidOn(t *testing.T, rho, dr float64, length int, opts ...solver.Option) *solver.Result {
	t.Helper()
	sys, err := system.New([]string{"A"}, 1.0)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	sys.SetLogger(logger)
	dom, err := domain.New(dr, length)
	require.NoError(t, err)
	sys.SetDomain(dom)
	require.NoError(t, sys.SetDensity("A", rho))
	hs, _ := potential.NewHardSphere(potential.WithSigma(1))
	sys.Potential.FillUnset(hs)
	sys.Closure.FillUnset(closure.PercusYevick{})
	sys.Omega.FillUnset(omega.SingleSite{})

	p, err := sys.Solver(opts...)
	require.NoError(t, err)
	res, err := p.Solve(context.Background())
	require.NoError(t, err)

	return res
}

// TestPairCorrelation checks g = 0 inside the core and g → 1 far away.
func TestPairCorrelation(t *testing.T) {
	res := solveFluid(t, 0.4)
	g, err := calculate.PairCorrelation(res)
	require.NoError(t, err)
	ch, _ := g.Channel(0, 0)
	assert.InDelta(t, 0, ch[5], 1e-9)
	assert.InDelta(t, 1, ch[len(ch)-1], 1e-3)
	assert.Greater(t, ch[19], 1.0, "contact value exceeds one") // r = 1.0
}

// TestStructureFactor compares S at the first k point with the PY
// compressibility route S(0) = (1−η)⁴ / (1+2η)². The hard core ends on the
// last grid point inside σ, so the effective diameter is about σ − dr/2; the
// grid must be fine for that shift to stay within tolerance.
func TestStructureFactor(t *testing.T) {
	const rho = 0.4
	res := solveFluidOn(t, rho, 0.01, 2048, solver.WithKrylov(60, 5))
	sk, err := calculate.StructureFactor(res)
	require.NoError(t, err)
	ch, _ := sk.Channel(0, 0)

	eta := math.Pi / 6 * rho
	want := math.Pow(1-eta, 4) / math.Pow(1+2*eta, 2)
	assert.InEpsilon(t, want, ch[0], 0.05)
	assert.InDelta(t, 1, ch[len(ch)-1], 1e-2)
}

// TestStructureFactor_GridConvergence checks that S at small k approaches the
// continuum value as the grid is refined.
func TestStructureFactor_GridConvergence(t *testing.T) {
	const rho = 0.4
	eta := math.Pi / 6 * rho
	want := math.Pow(1-eta, 4) / math.Pow(1+2*eta, 2)

	coarse := solveFluidOn(t, rho, 0.05, 512)
	fine := solveFluidOn(t, rho, 0.01, 2048, solver.WithKrylov(60, 5))
	skCoarse, err := calculate.StructureFactor(coarse)
	require.NoError(t, err)
	skFine, err := calculate.StructureFactor(fine)
	require.NoError(t, err)
	c, _ := skCoarse.Channel(0, 0)
	f, _ := skFine.Channel(0, 0)
	assert.Less(t, math.Abs(f[0]-want), math.Abs(c[0]-want))
}

// TestPotentialOfMeanForce checks +Inf in the core and −kT·ln g outside.
func TestPotentialOfMeanForce(t *testing.T) {
	res := solveFluid(t, 0.3)
	w, err := calculate.PotentialOfMeanForce(res)
	require.NoError(t, err)
	g, _ := calculate.PairCorrelation(res)

	wch, _ := w.Channel(0, 0)
	gch, _ := g.Channel(0, 0)
	for i := 30; i < 40; i++ {
		assert.InDelta(t, -math.Log(gch[i]), wch[i], 1e-12)
	}
	for i := 0; i < 19; i++ {
		if gch[i] <= 0 {
			assert.True(t, math.IsInf(wch[i], 1))
		}
	}

	_, err = calculate.PotentialOfMeanForce(nil)
	assert.ErrorIs(t, err, calculate.ErrNilResult)
}
