// SPDX-License-Identifier: MIT
package rootfind

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
)

// sqrtEps scales the finite-difference step of Jacobian-vector products.
var sqrtEps = math.Sqrt(2.220446049250313e-16)

// problem wraps a residual with cancellation, counting and finiteness checks.
type problem struct {
	ctx   context.Context
	fn    Func
	evals int
}

func (p *problem) eval(x, f []float64) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	p.evals++
	if err := p.fn(x, f); err != nil {
		return err
	}
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// jacVec approximates J(x)·v by (F(x + εv) − F(x)) / ε into out, with fx = F(x).
// xs is scratch of len(x).
func (p *problem) jacVec(x, fx, v, out, xs []float64) error {
	vn := floats.Norm(v, 2)
	if vn == 0 {
		for i := range out {
			out[i] = 0
		}

		return nil
	}
	eps := sqrtEps * math.Max(1, floats.Norm(x, 2)) / vn
	floats.AddScaledTo(xs, x, eps, v)
	if err := p.eval(xs, out); err != nil {
		return err
	}
	floats.Sub(out, fx)
	floats.Scale(1/eps, out)

	return nil
}

func maxNorm(f []float64) float64 { return floats.Norm(f, math.Inf(1)) }
