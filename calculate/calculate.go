// SPDX-License-Identifier: MIT
package calculate

import (
	"errors"
	"math"

	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/solver"
)

// ErrNilResult indicates a nil result argument.
var ErrNilResult = errors.New("calculate: nil result")

// PairCorrelation returns g(r) = h(r) + 1 for every pair.
func PairCorrelation(res *solver.Result) (*matrix.Array, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	return res.TotalCorrReal().AddScalar(1), nil
}

// StructureFactor returns the partial structure factors
//
//	S_αβ(k) = (ρ^site_αβ·ω̂_αβ + ρ^pair_αβ·ĥ_αβ) / ρ^site_αβ
//
// which for one component is ω̂ + ρ·ĥ.
func StructureFactor(res *solver.Result) (*matrix.Array, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	site, pair := res.SiteDensity(), res.PairDensity()
	n := site.Rows()
	ratio, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s, _ := site.At(i, j)
			p, _ := pair.At(i, j)
			_ = ratio.Set(i, j, p/s)
		}
	}

	h := res.TotalCorr()
	if err := h.ScalePairs(ratio); err != nil {
		return nil, err
	}
	sk := res.Omega()
	if err := sk.AddInPlace(h); err != nil {
		return nil, err
	}

	return sk, nil
}

// PotentialOfMeanForce returns w(r) = −kT·ln g(r); w = +Inf where g <= 0.
func PotentialOfMeanForce(res *solver.Result) (*matrix.Array, error) {
	g, err := PairCorrelation(res)
	if err != nil {
		return nil, err
	}
	kT := res.KT()
	for p := 0; p < g.Pairs(); p++ {
		ch, _ := g.ChannelAt(p)
		for i, v := range ch {
			if v <= 0 {
				ch[i] = math.Inf(1)
				continue
			}
			ch[i] = -kT * math.Log(v)
		}
	}

	return g, nil
}
