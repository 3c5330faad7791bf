// SPDX-License-Identifier: MIT
package rootfind

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Picard solves fn(x) = 0 by the damped fixed-point iteration x ← x + λ·F(x),
// which for F(x) = G(x) − x is the mixing x ← (1−λ)·x + λ·G(x).
//
// λ starts at Options.Damping, grows by 10% after a residual decrease and
// halves after an increase, clamped to [MinDamping, MaxDamping].
// Complexity: one residual evaluation per iteration.
func Picard(ctx context.Context, fn Func, x0 []float64, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	p := &problem{ctx: ctx, fn: fn}
	x := append([]float64(nil), x0...)
	f := make([]float64, len(x0))
	res := &Result{X: x, ResidualNorm: math.NaN()}

	if err := p.eval(x, f); err != nil {
		res.Evaluations = p.evals
		return res, fmt.Errorf("rootfind: initial residual: %w", err)
	}
	norm := maxNorm(f)
	lambda := opts.Damping

	for {
		res.ResidualNorm = norm
		res.Evaluations = p.evals
		if norm <= opts.Tolerance {
			res.Converged = true
			return res, nil
		}
		if res.Iterations >= opts.MaxIterations {
			return res, fmt.Errorf("rootfind: %d iterations, residual %.3e: %w", res.Iterations, norm, ErrNotConverged)
		}

		floats.AddScaled(x, lambda, f)
		if err := p.eval(x, f); err != nil {
			res.Evaluations = p.evals
			return res, err
		}
		next := maxNorm(f)
		if next < norm {
			lambda = math.Min(opts.MaxDamping, lambda*1.1)
		} else {
			lambda = math.Max(opts.MinDamping, lambda*0.5)
		}
		norm = next
		res.Iterations++
		if opts.Callback != nil {
			opts.Callback(res.Iterations, norm)
		}
	}
}
