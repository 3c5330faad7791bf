// SPDX-License-Identifier: MIT
package solver

import (
	"github.com/katalvlaran/prism/domain"
	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/rootfind"
)

// Result is an immutable converged solution. Every accessor returns a copy.
type Result struct {
	types   []string
	dom     *domain.Domain
	kT      float64
	site    *matrix.Dense
	pair    *matrix.Dense
	omega   *matrix.Array
	cK, hK  *matrix.Array
	cR, hR  *matrix.Array
	gammaR  *matrix.Array
	iters   int
	evals   int
	resNorm float64
}

func (s *PRISM) result(r *rootfind.Result) *Result {
	hR := s.gamma.Clone()
	_ = hR.AddInPlace(s.cReal) // h = γ + c

	return &Result{
		types:   append([]string(nil), s.in.Types...),
		dom:     s.in.Domain.Clone(),
		kT:      s.in.KT,
		site:    s.in.SiteDensity.Clone(),
		pair:    s.in.PairDensity.Clone(),
		omega:   s.in.Omega.Clone(),
		cK:      s.c.Clone(),
		hK:      s.h.Clone(),
		cR:      s.cReal.Clone(),
		hR:      hR,
		gammaR:  s.gamma.Clone(),
		iters:   r.Iterations,
		evals:   r.Evaluations,
		resNorm: r.ResidualNorm,
	}
}

// DirectCorr returns Ĉ(k).
func (r *Result) DirectCorr() *matrix.Array { return r.cK.Clone() }

// TotalCorr returns ĥ(k).
func (r *Result) TotalCorr() *matrix.Array { return r.hK.Clone() }

// DirectCorrReal returns c(r) as produced by the closure.
func (r *Result) DirectCorrReal() *matrix.Array { return r.cR.Clone() }

// TotalCorrReal returns h(r) = γ(r) + c(r).
func (r *Result) TotalCorrReal() *matrix.Array { return r.hR.Clone() }

// IndirectCorrReal returns γ(r).
func (r *Result) IndirectCorrReal() *matrix.Array { return r.gammaR.Clone() }

// Omega returns the unscaled ω̂(k).
func (r *Result) Omega() *matrix.Array { return r.omega.Clone() }

// Domain returns a copy of the solution grid.
func (r *Result) Domain() *domain.Domain { return r.dom.Clone() }

// Types returns the site types in matrix order.
func (r *Result) Types() []string { return append([]string(nil), r.types...) }

// KT returns the thermal energy of the solve.
func (r *Result) KT() float64 { return r.kT }

// SiteDensity returns ρ^site.
func (r *Result) SiteDensity() *matrix.Dense { return r.site.Clone() }

// PairDensity returns ρ^pair.
func (r *Result) PairDensity() *matrix.Dense { return r.pair.Clone() }

// Iterations returns the number of accepted outer iterations.
func (r *Result) Iterations() int { return r.iters }

// Evaluations returns the number of residual evaluations.
func (r *Result) Evaluations() int { return r.evals }

// ResidualNorm returns the max-norm of the final residual.
func (r *Result) ResidualNorm() float64 { return r.resNorm }
