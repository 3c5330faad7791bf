// SPDX-License-Identifier: MIT
package potential

import (
	"fmt"
	"math"
)

func lj(x, sigma, epsilon float64) float64 {
	s6 := math.Pow(sigma/x, 6)

	return 4 * epsilon * (s6*s6 - s6)
}

// LennardJones is 4ε[(σ/r)^12 − (σ/r)^6], optionally truncated at a cutoff
// (WithCutoff) and shifted to vanish there (WithShift).
type LennardJones struct {
	params
	Epsilon float64
}

// NewLennardJones builds a Lennard-Jones potential.
func NewLennardJones(epsilon float64, opts ...Option) (*LennardJones, error) {
	p := newParams(opts)
	if err := p.validate("LennardJones"); err != nil {
		return nil, err
	}

	return &LennardJones{params: p, Epsilon: epsilon}, nil
}

// Calculate implements Potential.
func (l *LennardJones) Calculate(r []float64) ([]float64, error) {
	return evaluate(l.params, "LennardJones", r, func(x, sigma float64) float64 {
		if !l.hasCutoff {
			return lj(x, sigma, l.Epsilon)
		}
		if x > l.cutoff {
			return 0
		}
		u := lj(x, sigma, l.Epsilon)
		if l.shift {
			u -= lj(l.cutoff, sigma, l.Epsilon)
		}
		return u
	})
}

// WithContact implements Potential.
func (l *LennardJones) WithContact(sigma float64) Potential {
	return &LennardJones{params: l.withContact(sigma), Epsilon: l.Epsilon}
}

func (l *LennardJones) String() string {
	if l.hasCutoff {
		return fmt.Sprintf("Potential<LennardJones eps=%g sigma=%s rc=%g shift=%t>",
			l.Epsilon, l.sigmaString(), l.cutoff, l.shift)
	}

	return fmt.Sprintf("Potential<LennardJones eps=%g sigma=%s>", l.Epsilon, l.sigmaString())
}

// WeeksChandlerAndersen is the purely repulsive Lennard-Jones potential cut at
// 2^{1/6}σ and shifted up by ε.
type WeeksChandlerAndersen struct {
	params
	Epsilon float64
}

// NewWeeksChandlerAndersen builds a WCA potential.
func NewWeeksChandlerAndersen(epsilon float64, opts ...Option) (*WeeksChandlerAndersen, error) {
	p := newParams(opts)
	if err := p.validate("WeeksChandlerAndersen"); err != nil {
		return nil, err
	}

	return &WeeksChandlerAndersen{params: p, Epsilon: epsilon}, nil
}

// Calculate implements Potential.
func (w *WeeksChandlerAndersen) Calculate(r []float64) ([]float64, error) {
	return evaluate(w.params, "WeeksChandlerAndersen", r, func(x, sigma float64) float64 {
		if x >= math.Pow(2, 1.0/6.0)*sigma {
			return 0
		}
		return lj(x, sigma, w.Epsilon) + w.Epsilon
	})
}

// WithContact implements Potential.
func (w *WeeksChandlerAndersen) WithContact(sigma float64) Potential {
	return &WeeksChandlerAndersen{params: w.withContact(sigma), Epsilon: w.Epsilon}
}

func (w *WeeksChandlerAndersen) String() string {
	return fmt.Sprintf("Potential<WeeksChandlerAndersen eps=%g sigma=%s>", w.Epsilon, w.sigmaString())
}

// HardCoreLennardJones is high inside σ and ε[(σ/r)^12 − 2(σ/r)^6] beyond,
// so the well depth −ε sits at contact.
type HardCoreLennardJones struct {
	params
	Epsilon float64
}

// NewHardCoreLennardJones builds a hard-core Lennard-Jones potential.
func NewHardCoreLennardJones(epsilon float64, opts ...Option) (*HardCoreLennardJones, error) {
	p := newParams(opts)
	if err := p.validate("HardCoreLennardJones"); err != nil {
		return nil, err
	}

	return &HardCoreLennardJones{params: p, Epsilon: epsilon}, nil
}

// Calculate implements Potential.
func (h *HardCoreLennardJones) Calculate(r []float64) ([]float64, error) {
	return evaluate(h.params, "HardCoreLennardJones", r, func(x, sigma float64) float64 {
		if x < sigma {
			return h.high
		}
		s6 := math.Pow(sigma/x, 6)
		return h.Epsilon * (s6*s6 - 2*s6)
	})
}

// WithContact implements Potential.
func (h *HardCoreLennardJones) WithContact(sigma float64) Potential {
	return &HardCoreLennardJones{params: h.withContact(sigma), Epsilon: h.Epsilon}
}

func (h *HardCoreLennardJones) String() string {
	return fmt.Sprintf("Potential<HardCoreLennardJones eps=%g sigma=%s>", h.Epsilon, h.sigmaString())
}
