// SPDX-License-Identifier: MIT
package rootfind_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/rootfind"
)

func linear(x, f []float64) error {
	// A = [[4,1,0],[1,3,1],[0,1,2]], b = [1,2,3]
	f[0] = 4*x[0] + x[1] - 1
	f[1] = x[0] + 3*x[1] + x[2] - 2
	f[2] = x[1] + 2*x[2] - 3
	return nil
}

// TestNewtonKrylov_Linear solves a small SPD system.
func TestNewtonKrylov_Linear(t *testing.T) {
	res, err := rootfind.NewtonKrylov(context.Background(), linear, []float64{0, 0, 0}, rootfind.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.ResidualNorm, 1e-7)

	f := make([]float64, 3)
	require.NoError(t, linear(res.X, f))
	assert.InDeltaSlice(t, []float64{0, 0, 0}, f, 1e-7)
	assert.LessOrEqual(t, res.Iterations, 5)
}

// TestNewtonKrylov_Nonlinear intersects a circle with the diagonal.
func TestNewtonKrylov_Nonlinear(t *testing.T) {
	fn := func(x, f []float64) error {
		f[0] = x[0]*x[0] + x[1]*x[1] - 4
		f[1] = x[0] - x[1]
		return nil
	}
	var seen []float64
	opts := rootfind.DefaultOptions()
	opts.Callback = func(_ int, norm float64) { seen = append(seen, norm) }

	res, err := rootfind.NewtonKrylov(context.Background(), fn, []float64{1, 0.5}, opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.X[0], 1e-7)
	assert.InDelta(t, math.Sqrt2, res.X[1], 1e-7)
	assert.Len(t, seen, res.Iterations)
	assert.Greater(t, res.Evaluations, res.Iterations)
}

// TestNewtonKrylov_BacktracksSingularTrials keeps iterating when a full step
// lands outside the residual's domain.
func TestNewtonKrylov_BacktracksSingularTrials(t *testing.T) {
	rejected := 0
	fn := func(x, f []float64) error {
		if x[0] <= 0 {
			rejected++
			return fmt.Errorf("log of %g: %w", x[0], prism.ErrSingularMatrix)
		}
		f[0] = math.Log(x[0])
		return nil
	}
	res, err := rootfind.NewtonKrylov(context.Background(), fn, []float64{3}, rootfind.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1, res.X[0], 1e-6)
	assert.Positive(t, rejected)
}

// TestNewtonKrylov_InitialFailure surfaces the residual error unchanged.
func TestNewtonKrylov_InitialFailure(t *testing.T) {
	fn := func(_, _ []float64) error { return prism.ErrSingularMatrix }
	res, err := rootfind.NewtonKrylov(context.Background(), fn, []float64{1}, rootfind.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, prism.ErrSingularMatrix)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, 1, res.Evaluations)
}

// TestNewtonKrylov_NonFinite classifies NaN residuals.
func TestNewtonKrylov_NonFinite(t *testing.T) {
	fn := func(_, f []float64) error {
		f[0] = math.NaN()
		return nil
	}
	_, err := rootfind.NewtonKrylov(context.Background(), fn, []float64{1}, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrNonFinite)
}

// TestNewtonKrylov_Cancelled honours a cancelled context.
func TestNewtonKrylov_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rootfind.NewtonKrylov(ctx, linear, []float64{0, 0, 0}, rootfind.DefaultOptions())
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestPicard_Contraction converges on x = cos(x).
func TestPicard_Contraction(t *testing.T) {
	fn := func(x, f []float64) error {
		f[0] = math.Cos(x[0]) - x[0]
		return nil
	}
	res, err := rootfind.Picard(context.Background(), fn, []float64{0}, rootfind.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332, res.X[0], 1e-6)
	assert.Equal(t, res.Iterations+1, res.Evaluations)
}

// TestPicard_Budget reports ErrNotConverged with the iteration count.
func TestPicard_Budget(t *testing.T) {
	fn := func(x, f []float64) error {
		f[0] = math.Cos(x[0]) - x[0]
		return nil
	}
	opts := rootfind.DefaultOptions()
	opts.MaxIterations = 1
	res, err := rootfind.Picard(context.Background(), fn, []float64{0}, opts)
	assert.ErrorIs(t, err, rootfind.ErrNotConverged)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
}

// TestOptions_Validate rejects broken settings.
func TestOptions_Validate(t *testing.T) {
	for name, mutate := range map[string]func(*rootfind.Options){
		"tolerance":  func(o *rootfind.Options) { o.Tolerance = 0 },
		"iterations": func(o *rootfind.Options) { o.MaxIterations = 0 },
		"krylov":     func(o *rootfind.Options) { o.KrylovSize = 0 },
		"forcing":    func(o *rootfind.Options) { o.Forcing = 1 },
		"damping":    func(o *rootfind.Options) { o.Damping = 2 },
		"linesearch": func(o *rootfind.Options) { o.LineSearchSteps = 0 },
	} {
		opts := rootfind.DefaultOptions()
		mutate(&opts)
		_, err := rootfind.NewtonKrylov(context.Background(), linear, []float64{0, 0, 0}, opts)
		assert.ErrorIs(t, err, rootfind.ErrBadOptions, name)
		_, err = rootfind.Picard(context.Background(), linear, []float64{0, 0, 0}, opts)
		assert.ErrorIs(t, err, rootfind.ErrBadOptions, name)
	}
}
