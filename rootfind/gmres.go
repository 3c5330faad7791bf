// SPDX-License-Identifier: MIT
package rootfind

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// breakdown is the relative Arnoldi norm below which the Krylov space is
// considered invariant.
const breakdown = 1e-14

// linearOp writes A·v into out.
type linearOp func(v, out []float64) error

// gmres is a restarted GMRES(m) workspace for vectors of length n.
type gmres struct {
	n, m int
	v    [][]float64 // Arnoldi basis, m+1 vectors
	h    []float64   // (m+1)×m Hessenberg, row-major
	w    []float64
	r    []float64
}

func newGMRES(n, m int) *gmres {
	g := &gmres{
		n: n,
		m: m,
		v: make([][]float64, m+1),
		h: make([]float64, (m+1)*m),
		w: make([]float64, n),
		r: make([]float64, n),
	}
	for i := range g.v {
		g.v[i] = make([]float64, n)
	}

	return g
}

// solve approximately solves A·x = b from x = 0 until ‖b − A·x‖₂ <= rtol·‖b‖₂
// or the restart budget is spent. x is overwritten.
// Complexity: O(restarts · m · (cost(A) + m·n)).
func (g *gmres) solve(apply linearOp, b, x []float64, rtol float64, restarts int) error {
	for i := range x {
		x[i] = 0
	}
	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		return nil
	}
	target := rtol * bnorm

	for cycle := 0; cycle < restarts; cycle++ {
		if cycle == 0 {
			copy(g.r, b)
		} else {
			if err := apply(x, g.w); err != nil {
				return err
			}
			floats.SubTo(g.r, b, g.w)
		}
		beta := floats.Norm(g.r, 2)
		if beta <= target {
			return nil
		}
		floats.ScaleTo(g.v[0], 1/beta, g.r)
		for i := range g.h {
			g.h[i] = 0
		}

		var (
			y     []float64
			resid float64
			k     int
			err   error
		)
		for j := 0; j < g.m; j++ {
			if err = apply(g.v[j], g.w); err != nil {
				return err
			}
			// modified Gram–Schmidt
			for i := 0; i <= j; i++ {
				hij := floats.Dot(g.w, g.v[i])
				g.h[i*g.m+j] = hij
				floats.AddScaled(g.w, -hij, g.v[i])
			}
			hn := floats.Norm(g.w, 2)
			g.h[(j+1)*g.m+j] = hn
			k = j + 1

			y, resid, err = g.leastSquares(k, beta)
			if err != nil {
				return err
			}
			if resid <= target || hn <= breakdown*beta {
				break
			}
			floats.ScaleTo(g.v[j+1], 1/hn, g.w)
		}
		for i := 0; i < k; i++ {
			floats.AddScaled(x, y[i], g.v[i])
		}
		if resid <= target {
			return nil
		}
	}

	return nil
}

// leastSquares minimises ‖β·e₁ − H_k·y‖₂ over the leading (k+1)×k block of
// the Hessenberg matrix and returns y with the residual norm.
func (g *gmres) leastSquares(k int, beta float64) ([]float64, float64, error) {
	data := make([]float64, (k+1)*k)
	for i := 0; i <= k; i++ {
		copy(data[i*k:(i+1)*k], g.h[i*g.m:i*g.m+k])
	}
	hk := mat.NewDense(k+1, k, data)
	rhs := mat.NewVecDense(k+1, nil)
	rhs.SetVec(0, beta)

	var y mat.VecDense
	if err := y.SolveVec(hk, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, 0, fmt.Errorf("rootfind: krylov least squares: %w", err)
		}
	}
	out := make([]float64, k)
	for i := range out {
		out[i] = y.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, 0, fmt.Errorf("rootfind: krylov least squares: %w", ErrNonFinite)
		}
	}

	var fit, diff mat.VecDense
	fit.MulVec(hk, &y)
	diff.SubVec(rhs, &fit)

	return out, mat.Norm(&diff, 2), nil
}
