// SPDX-License-Identifier: MIT
package closure

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/prism"
)

// ErrUnknownClosure indicates a name that ByName cannot resolve.
var ErrUnknownClosure = fmt.Errorf("closure: unknown closure: %w", prism.ErrConfiguration)

// Closure evaluates c(γ; U, β) pointwise.
type Closure interface {
	Apply(gamma, u, beta float64) float64
	// Derivative returns ∂c/∂γ. The solver takes finite-difference Jacobian
	// products and does not call it; it serves callers linearising a closure.
	Derivative(gamma, u, beta float64) float64
	fmt.Stringer
}

// PercusYevick is the PY closure.
type PercusYevick struct{}

// Apply implements Closure.
func (PercusYevick) Apply(gamma, u, beta float64) float64 {
	return (math.Exp(-beta*u) - 1) * (1 + gamma)
}

// Derivative implements Closure.
func (PercusYevick) Derivative(_, u, beta float64) float64 {
	return math.Exp(-beta*u) - 1
}

func (PercusYevick) String() string { return "Closure<PercusYevick>" }

// HyperNettedChain is the HNC closure.
type HyperNettedChain struct{}

// Apply implements Closure.
func (HyperNettedChain) Apply(gamma, u, beta float64) float64 {
	return math.Exp(-beta*u+gamma) - 1 - gamma
}

// Derivative implements Closure.
func (HyperNettedChain) Derivative(gamma, u, beta float64) float64 {
	return math.Exp(-beta*u+gamma) - 1
}

func (HyperNettedChain) String() string { return "Closure<HyperNettedChain>" }

// KovalenkoHirata is the partially linearised HNC closure.
type KovalenkoHirata struct{}

// Apply implements Closure.
func (KovalenkoHirata) Apply(gamma, u, beta float64) float64 {
	d := -beta*u + gamma
	if d > 0 {
		return d - gamma
	}

	return math.Exp(d) - 1 - gamma
}

// Derivative implements Closure.
func (KovalenkoHirata) Derivative(gamma, u, beta float64) float64 {
	d := -beta*u + gamma
	if d > 0 {
		return 0
	}

	return math.Exp(d) - 1
}

func (KovalenkoHirata) String() string { return "Closure<KovalenkoHirata>" }

// ByName resolves a closure from its short or long name, ignoring case,
// spaces, hyphens and underscores: "PY", "percus-yevick", "HNC", "KH", ...
func ByName(name string) (Closure, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	switch key {
	case "py", "percusyevick":
		return PercusYevick{}, nil
	case "hnc", "hypernettedchain":
		return HyperNettedChain{}, nil
	case "kh", "kovalenkohirata":
		return KovalenkoHirata{}, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownClosure)
}
