// SPDX-License-Identifier: MIT
package potential

import (
	"fmt"
	"math"
)

// HardSphere is high inside σ and zero outside.
type HardSphere struct {
	params
}

// NewHardSphere builds a hard-sphere potential.
func NewHardSphere(opts ...Option) (*HardSphere, error) {
	p := newParams(opts)
	if err := p.validate("HardSphere"); err != nil {
		return nil, err
	}

	return &HardSphere{params: p}, nil
}

// Calculate implements Potential.
func (h *HardSphere) Calculate(r []float64) ([]float64, error) {
	return evaluate(h.params, "HardSphere", r, func(x, sigma float64) float64 {
		if x < sigma {
			return h.high
		}
		return 0
	})
}

// WithContact implements Potential.
func (h *HardSphere) WithContact(sigma float64) Potential {
	return &HardSphere{params: h.withContact(sigma)}
}

func (h *HardSphere) String() string {
	return fmt.Sprintf("Potential<HardSphere sigma=%s>", h.sigmaString())
}

// SquareWell is high up to σ, −ε on (σ, σ+α) and zero from σ+α on.
// A negative ε makes the well a shoulder.
type SquareWell struct {
	params
	Epsilon float64
	Alpha   float64
}

// NewSquareWell validates α > 0.
func NewSquareWell(epsilon, alpha float64, opts ...Option) (*SquareWell, error) {
	p := newParams(opts)
	if err := p.validate("SquareWell"); err != nil {
		return nil, err
	}
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("SquareWell: alpha %g: %w", alpha, ErrBadParameter)
	}

	return &SquareWell{params: p, Epsilon: epsilon, Alpha: alpha}, nil
}

// Calculate implements Potential.
func (s *SquareWell) Calculate(r []float64) ([]float64, error) {
	return evaluate(s.params, "SquareWell", r, func(x, sigma float64) float64 {
		switch {
		case x <= sigma:
			return s.high
		case x >= sigma+s.Alpha:
			return 0
		default:
			return -s.Epsilon
		}
	})
}

// WithContact implements Potential.
func (s *SquareWell) WithContact(sigma float64) Potential {
	return &SquareWell{params: s.withContact(sigma), Epsilon: s.Epsilon, Alpha: s.Alpha}
}

func (s *SquareWell) String() string {
	return fmt.Sprintf("Potential<SquareWell eps=%g alpha=%g sigma=%s>", s.Epsilon, s.Alpha, s.sigmaString())
}

// Exponential is high up to σ and −ε·exp(−(r−σ)/α) beyond.
type Exponential struct {
	params
	Epsilon float64
	Alpha   float64
}

// NewExponential validates α > 0.
func NewExponential(epsilon, alpha float64, opts ...Option) (*Exponential, error) {
	p := newParams(opts)
	if err := p.validate("Exponential"); err != nil {
		return nil, err
	}
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("Exponential: alpha %g: %w", alpha, ErrBadParameter)
	}

	return &Exponential{params: p, Epsilon: epsilon, Alpha: alpha}, nil
}

// Calculate implements Potential.
func (e *Exponential) Calculate(r []float64) ([]float64, error) {
	return evaluate(e.params, "Exponential", r, func(x, sigma float64) float64 {
		if x <= sigma {
			return e.high
		}
		return -e.Epsilon * math.Exp(-(x-sigma)/e.Alpha)
	})
}

// WithContact implements Potential.
func (e *Exponential) WithContact(sigma float64) Potential {
	return &Exponential{params: e.withContact(sigma), Epsilon: e.Epsilon, Alpha: e.Alpha}
}

func (e *Exponential) String() string {
	return fmt.Sprintf("Potential<Exponential eps=%g alpha=%g sigma=%s>", e.Epsilon, e.Alpha, e.sigmaString())
}

// Yukawa is high inside σ and ε·σ·exp(−κ(r−σ))/r beyond.
type Yukawa struct {
	params
	Epsilon float64
	Kappa   float64
}

// NewYukawa validates κ >= 0.
func NewYukawa(epsilon, kappa float64, opts ...Option) (*Yukawa, error) {
	p := newParams(opts)
	if err := p.validate("Yukawa"); err != nil {
		return nil, err
	}
	if kappa < 0 || math.IsNaN(kappa) || math.IsInf(kappa, 0) {
		return nil, fmt.Errorf("Yukawa: kappa %g: %w", kappa, ErrBadParameter)
	}

	return &Yukawa{params: p, Epsilon: epsilon, Kappa: kappa}, nil
}

// Calculate implements Potential.
func (y *Yukawa) Calculate(r []float64) ([]float64, error) {
	return evaluate(y.params, "Yukawa", r, func(x, sigma float64) float64 {
		if x < sigma {
			return y.high
		}
		return y.Epsilon * sigma * math.Exp(-y.Kappa*(x-sigma)) / x
	})
}

// WithContact implements Potential.
func (y *Yukawa) WithContact(sigma float64) Potential {
	return &Yukawa{params: y.withContact(sigma), Epsilon: y.Epsilon, Kappa: y.Kappa}
}

func (y *Yukawa) String() string {
	return fmt.Sprintf("Potential<Yukawa eps=%g kappa=%g sigma=%s>", y.Epsilon, y.Kappa, y.sigmaString())
}
