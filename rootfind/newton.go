// SPDX-License-Identifier: MIT
package rootfind

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// armijo is the sufficient-decrease constant of the line search.
const armijo = 1e-4

// NewtonKrylov solves fn(x) = 0 from x0 with a Jacobian-free Newton–Krylov
// iteration.
//
// Stage 1 (Validate): options; initial residual evaluation.
// Stage 2 (Iterate): inexact Newton step from GMRES with relative tolerance
// Options.Forcing, then backtracking from λ = 1 until
// ‖F(x + λd)‖₂ <= (1 − 1e-4·λ)·‖F(x)‖₂. Trial points whose residual fails
// with a singular block or a non-finite value are treated as rejected.
// Stage 3 (Finalize): the last accepted iterate is returned in Result.X.
//
// Errors: ErrBadOptions; the initial residual error; ErrNotConverged when the
// iteration budget is spent; ErrLineSearch (wrapping the last trial error,
// if any) when no step is accepted; context errors from ctx.
func NewtonKrylov(ctx context.Context, fn Func, x0 []float64, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n := len(x0)
	p := &problem{ctx: ctx, fn: fn}
	x := append([]float64(nil), x0...)
	f := make([]float64, n)
	res := &Result{X: x, ResidualNorm: math.NaN()}

	if err := p.eval(x, f); err != nil {
		res.Evaluations = p.evals
		return res, fmt.Errorf("rootfind: initial residual: %w", err)
	}
	norm := maxNorm(f)

	var (
		g   = newGMRES(n, opts.KrylovSize)
		d   = make([]float64, n)
		rhs = make([]float64, n)
		xt  = make([]float64, n)
		ft  = make([]float64, n)
		xs  = make([]float64, n)
	)
	jv := func(v, out []float64) error { return p.jacVec(x, f, v, out, xs) }

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

		floats.ScaleTo(rhs, -1, f)
		if err := g.solve(jv, rhs, d, opts.Forcing, opts.KrylovRestarts); err != nil {
			res.Evaluations = p.evals
			if recoverable(err) {
				return res, fmt.Errorf("%w: krylov step: %w", ErrLineSearch, err)
			}
			return res, err
		}

		f2 := floats.Norm(f, 2)
		lambda := 1.0
		accepted := false
		var lastErr error
		for ls := 0; ls < opts.LineSearchSteps; ls++ {
			floats.AddScaledTo(xt, x, lambda, d)
			err := p.eval(xt, ft)
			switch {
			case err == nil:
				if floats.Norm(ft, 2) <= (1-armijo*lambda)*f2 {
					accepted = true
				}
			case recoverable(err):
				lastErr = err
			default:
				res.Evaluations = p.evals
				return res, err
			}
			if accepted {
				break
			}
			lambda *= 0.5
		}
		if !accepted {
			res.Evaluations = p.evals
			if lastErr != nil {
				return res, fmt.Errorf("%w: %w", ErrLineSearch, lastErr)
			}
			return res, ErrLineSearch
		}

		copy(x, xt)
		copy(f, ft)
		norm = maxNorm(f)
		res.Iterations++
		if opts.Callback != nil {
			opts.Callback(res.Iterations, norm)
		}
	}
}
