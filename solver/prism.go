// SPDX-License-Identifier: MIT
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/closure"
	"github.com/katalvlaran/prism/domain"
	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/rootfind"
)

// Inputs is everything a PRISM solve needs, already evaluated on the grid.
type Inputs struct {
	Domain *domain.Domain
	Types  []string

	// Omega is the unscaled intramolecular correlation ω̂(k), Fourier space.
	Omega *matrix.Array
	// Potential is U(r), real space.
	Potential *matrix.Array
	// Closures holds one closure per independent pair, indexed by matrix.PairIndex.
	Closures []closure.Closure

	SiteDensity *matrix.Dense // ρ^site
	PairDensity *matrix.Dense // ρ^pair
	KT          float64
}

// PRISM is an assembled solver. The zero value is Unconfigured.
type PRISM struct {
	state State
	in    Inputs
	beta  float64
	base  settings

	omega   *matrix.Array // ρ^site ∘ ω̂
	invPair *matrix.Dense // 1 / ρ^pair

	// working set, overwritten by every residual evaluation
	c     *matrix.Array // Ĉ(k)
	h     *matrix.Array // ĥ(k)
	gamma *matrix.Array // γ̂ → γ(r)
	cReal *matrix.Array // c(r) from the closure
	cNew  *matrix.Array // FT[c(r)]

	// per-point scratch for the OZ kernel
	wc, a, inv, t1 *matrix.Dense
	lu             *matrix.LU
}

// New validates and copies the inputs, precomputes the scaled Ω and returns
// an Assembled solver.
// Stage 1 (Validate): grid, shapes, spaces, closures, densities, kT.
// Stage 2 (Prepare): ρ^site ∘ ω̂, 1/ρ^pair, working arrays.
// Complexity: O(length · rank²).
func New(in Inputs, opts ...Option) (*PRISM, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}
	base := defaultSettings()
	for _, o := range opts {
		o(&base)
	}
	if err := base.validate(); err != nil {
		return nil, err
	}

	n := len(in.Types)
	m := in.Domain.Length()
	s := &PRISM{
		state: Assembled,
		in: Inputs{
			Domain:      in.Domain.Clone(),
			Types:       append([]string(nil), in.Types...),
			Omega:       in.Omega.Clone(),
			Potential:   in.Potential.Clone(),
			Closures:    append([]closure.Closure(nil), in.Closures...),
			SiteDensity: in.SiteDensity.Clone(),
			PairDensity: in.PairDensity.Clone(),
			KT:          in.KT,
		},
		beta: 1 / in.KT,
		base: base,
	}

	s.omega = in.Omega.Clone()
	if err := s.omega.ScalePairs(in.SiteDensity); err != nil {
		return nil, err
	}
	s.invPair, _ = matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := in.PairDensity.At(i, j)
			_ = s.invPair.Set(i, j, 1/v)
		}
	}

	s.c, _ = matrix.NewArray(m, n, matrix.Fourier)
	s.h, _ = matrix.NewArray(m, n, matrix.Fourier)
	s.gamma, _ = matrix.NewArray(m, n, matrix.Fourier)
	s.cReal, _ = matrix.NewArray(m, n, matrix.Real)
	s.cNew, _ = matrix.NewArray(m, n, matrix.Real)
	s.wc, _ = matrix.NewDense(n, n)
	s.a, _ = matrix.NewDense(n, n)
	s.inv, _ = matrix.NewDense(n, n)
	s.t1, _ = matrix.NewDense(n, n)
	s.lu, _ = matrix.NewLU(n)

	return s, nil
}

func validateInputs(in Inputs) error {
	if in.Domain == nil {
		return inputsErrorf("domain unset")
	}
	n := len(in.Types)
	if n == 0 {
		return inputsErrorf("no site types")
	}
	m := in.Domain.Length()
	check := func(name string, a *matrix.Array, want matrix.Space) error {
		switch {
		case a == nil:
			return inputsErrorf("%s unset", name)
		case a.Length() != m || a.Rank() != n:
			return inputsErrorf("%s is %s, want %d points × rank %d", name, a, m, n)
		case a.Space() != want:
			return inputsErrorf("%s in %s space, want %s", name, a.Space(), want)
		}
		if err := matrix.ValidateFinite(a); err != nil {
			return inputsErrorf("%s: %v", name, err)
		}
		return nil
	}
	if err := check("omega", in.Omega, matrix.Fourier); err != nil {
		return err
	}
	if err := check("potential", in.Potential, matrix.Real); err != nil {
		return err
	}
	if len(in.Closures) != matrix.PairCount(n) {
		return inputsErrorf("%d closures for %d pairs", len(in.Closures), matrix.PairCount(n))
	}
	for p, c := range in.Closures {
		if c == nil {
			i, j := matrix.PairAt(p, n)
			return inputsErrorf("closure %s-%s unset", in.Types[i], in.Types[j])
		}
	}
	for name, d := range map[string]*matrix.Dense{"site density": in.SiteDensity, "pair density": in.PairDensity} {
		if d == nil || d.Rows() != n || d.Cols() != n {
			return inputsErrorf("%s must be %d×%d", name, n, n)
		}
		for _, v := range d.RawRowMajor() {
			if !(v > 0) || math.IsInf(v, 0) {
				return inputsErrorf("%s entry %g must be positive", name, v)
			}
		}
	}
	if !(in.KT > 0) || math.IsInf(in.KT, 0) {
		return inputsErrorf("kT %g must be positive", in.KT)
	}

	return nil
}

// State returns the lifecycle stage.
func (s *PRISM) State() State { return s.state }

// Types returns the site types in matrix order.
func (s *PRISM) Types() []string { return append([]string(nil), s.in.Types...) }

// Solve iterates to convergence.
//
// Stage 1 (Validate): state, merged options, initial guess.
// Stage 2 (Iterate): the configured root finder on the flattened Ĉ(k).
// Stage 3 (Finalize): one residual evaluation at the solution fills the
// result arrays; the state becomes Converged.
//
// Configuration problems return ErrInvalidOption (ConfigurationError) and
// leave the state unchanged. Every iteration failure, including a cancelled
// ctx, returns *prism.NonConvergenceError and sets the state to Failed; no
// partial result is returned.
func (s *PRISM) Solve(ctx context.Context, opts ...Option) (*Result, error) {
	switch s.state {
	case Unconfigured:
		return nil, ErrNotAssembled
	case Iterating:
		return nil, ErrBusy
	}
	cfg := s.base
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	x0 := make([]float64, s.c.FlatLen())
	if cfg.guess != nil {
		if err := matrix.ValidateSameShape(s.c, cfg.guess); err != nil {
			return nil, fmt.Errorf("initial guess %s: %w", cfg.guess, ErrInvalidOption)
		}
		if cfg.guess.Space() != matrix.Fourier {
			return nil, fmt.Errorf("initial guess must be in Fourier space: %w", ErrInvalidOption)
		}
		_ = cfg.guess.Flatten(x0)
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"types":  s.in.Types,
		"length": s.in.Domain.Length(),
		"method": cfg.method.String(),
	})
	cfg.root.Callback = func(iter int, norm float64) {
		entry := log.WithFields(logrus.Fields{"iter": iter, "residual": norm})
		if cfg.verbose {
			entry.Info("prism iteration")
		} else {
			entry.Debug("prism iteration")
		}
	}

	s.state = Iterating
	var (
		res *rootfind.Result
		err error
	)
	switch cfg.method {
	case Picard:
		res, err = rootfind.Picard(ctx, s.residual, x0, cfg.root)
	default:
		res, err = rootfind.NewtonKrylov(ctx, s.residual, x0, cfg.root)
	}
	if err == nil {
		// refresh the working set at the accepted iterate
		f := make([]float64, len(x0))
		err = s.residual(res.X, f)
	}
	if err != nil {
		s.state = Failed
		nce := &prism.NonConvergenceError{Cause: err, ResidualNorm: math.NaN()}
		if res != nil {
			nce.Iterations = res.Iterations
			nce.ResidualNorm = res.ResidualNorm
		}
		log.WithFields(logrus.Fields{
			"iter":     nce.Iterations,
			"residual": nce.ResidualNorm,
		}).WithError(err).Warn("prism solve failed")

		return nil, nce
	}

	s.state = Converged
	log.WithFields(logrus.Fields{
		"iter":        res.Iterations,
		"evaluations": res.Evaluations,
		"residual":    res.ResidualNorm,
	}).Info("prism converged")

	return s.result(res), nil
}

// residual writes Ĉ_new − Ĉ for the flattened Ĉ in x into f.
// Stage 1: Ĉ ← x; Ĥ = (I − ΩĈ)⁻¹ΩĈΩ per point; ĥ = Ĥ / ρ^pair.
// Stage 2: γ(r) = FT⁻¹[ĥ − Ĉ].
// Stage 3: c(r) = closure(γ, U, β); Ĉ_new = FT[c].
// Complexity: O(length · rank³ + pairs · length log length).
func (s *PRISM) residual(x, f []float64) error {
	if err := s.c.Unflatten(x); err != nil {
		return err
	}
	if err := matrix.Pointwise(s.h, s.ozKernel, s.omega, s.c); err != nil {
		return err
	}
	if err := s.h.ScalePairs(s.invPair); err != nil {
		return err
	}

	if err := s.gamma.CopyFrom(s.h); err != nil {
		return err
	}
	if err := s.gamma.SubInPlace(s.c); err != nil {
		return err
	}
	if err := s.in.Domain.MatrixArrayToReal(s.gamma); err != nil {
		return err
	}

	for p := 0; p < s.c.Pairs(); p++ {
		g, _ := s.gamma.ChannelAt(p)
		u, _ := s.in.Potential.ChannelAt(p)
		c, _ := s.cReal.ChannelAt(p)
		cl := s.in.Closures[p]
		for i := range c {
			c[i] = cl.Apply(g[i], u[i], s.beta)
		}
	}
	if err := s.cNew.CopyFrom(s.cReal); err != nil {
		return err
	}
	if err := s.in.Domain.MatrixArrayToFourier(s.cNew); err != nil {
		return err
	}

	if err := s.cNew.Flatten(f); err != nil {
		return err
	}
	for i := range f {
		f[i] -= x[i]
		if math.IsNaN(f[i]) || math.IsInf(f[i], 0) {
			return fmt.Errorf("solver: residual at %d: %w", i, rootfind.ErrNonFinite)
		}
	}

	return nil
}

// ozKernel computes (I − ΩĈ)⁻¹·ΩĈΩ at one grid point.
func (s *PRISM) ozKernel(_ int, dst *matrix.Dense, src []*matrix.Dense) error {
	w, c := src[0], src[1]
	if err := s.wc.Mul(w, c); err != nil {
		return err
	}
	if err := s.a.IdentityMinus(s.wc); err != nil {
		return err
	}
	if err := s.lu.Factorize(s.a); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return fmt.Errorf("%w: %w", rootfind.ErrNonFinite, err)
		}
		return err
	}
	if err := s.lu.Inverse(s.inv); err != nil {
		return err
	}
	if err := s.t1.Mul(s.wc, w); err != nil {
		return err
	}

	return dst.Mul(s.inv, s.t1)
}
