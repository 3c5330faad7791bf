// SPDX-License-Identifier: MIT
package potential

import (
	"fmt"
	"math"
)

// DefaultHighValue approximates an infinite hard-core repulsion.
const DefaultHighValue = 1e6

// Potential evaluates a pair potential on a distance grid.
type Potential interface {
	// Calculate returns U(r) for every r; the result is freshly allocated.
	Calculate(r []float64) ([]float64, error)
	// Contact reports σ and whether it has been set.
	Contact() (float64, bool)
	// WithContact returns a copy of the potential with σ set.
	WithContact(sigma float64) Potential
	fmt.Stringer
}

// Option configures the shared parameters of a potential.
type Option func(*params)

// WithSigma sets the contact distance explicitly.
func WithSigma(sigma float64) Option {
	return func(p *params) {
		p.sigma = sigma
		p.hasSigma = true
	}
}

// WithHighValue overrides the hard-core value.
func WithHighValue(high float64) Option {
	return func(p *params) { p.high = high }
}

// WithCutoff truncates a Lennard-Jones potential beyond rc.
func WithCutoff(rc float64) Option {
	return func(p *params) {
		p.cutoff = rc
		p.hasCutoff = true
	}
}

// WithShift shifts a truncated Lennard-Jones potential so that U(rc) = 0.
func WithShift() Option {
	return func(p *params) { p.shift = true }
}

type params struct {
	sigma    float64
	hasSigma bool
	high     float64

	cutoff    float64
	hasCutoff bool
	shift     bool
}

func newParams(opts []Option) params {
	p := params{high: DefaultHighValue}
	for _, o := range opts {
		o(&p)
	}

	return p
}

// Contact implements part of Potential.
func (p params) Contact() (float64, bool) { return p.sigma, p.hasSigma }

func (p params) withContact(sigma float64) params {
	p.sigma = sigma
	p.hasSigma = true

	return p
}

func (p params) validate(name string) error {
	if p.hasSigma && (!(p.sigma > 0) || math.IsInf(p.sigma, 0)) {
		return fmt.Errorf("%s: sigma %g: %w", name, p.sigma, ErrBadParameter)
	}
	if p.hasCutoff && !(p.cutoff > 0) {
		return fmt.Errorf("%s: cutoff %g: %w", name, p.cutoff, ErrBadParameter)
	}

	return nil
}

func (p params) requireSigma(name string) (float64, error) {
	if !p.hasSigma {
		return 0, fmt.Errorf("%s: %w", name, ErrSigmaUnset)
	}

	return p.sigma, nil
}

func (p params) sigmaString() string {
	if !p.hasSigma {
		return "unset"
	}

	return fmt.Sprintf("%g", p.sigma)
}

// evaluate applies fn at every r after resolving σ.
func evaluate(p params, name string, r []float64, fn func(r, sigma float64) float64) ([]float64, error) {
	sigma, err := p.requireSigma(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(r))
	for i, x := range r {
		out[i] = fn(x, sigma)
	}

	return out, nil
}
