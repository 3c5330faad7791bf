// SPDX-License-Identifier: MIT
package closure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/closure"
)

var all = []closure.Closure{closure.PercusYevick{}, closure.HyperNettedChain{}, closure.KovalenkoHirata{}}

// TestDerivative_FiniteDifference compares ∂c/∂γ with central differences
// away from the KH branch switch.
func TestDerivative_FiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, c := range all {
		for _, u := range []float64{-0.5, 0, 0.3, 2} {
			for _, gamma := range []float64{-0.7, -0.1, 0.2, 1.1} {
				if _, kh := c.(closure.KovalenkoHirata); kh && math.Abs(-u+gamma) < 10*h {
					continue
				}
				fd := (c.Apply(gamma+h, u, 1) - c.Apply(gamma-h, u, 1)) / (2 * h)
				assert.InDelta(t, fd, c.Derivative(gamma, u, 1), 1e-6, "%s u=%g gamma=%g", c, u, gamma)
			}
		}
	}
}

// TestHardCore checks c = −1 − γ inside a hard core for every closure.
func TestHardCore(t *testing.T) {
	for _, c := range all {
		assert.InDelta(t, -1.3, c.Apply(0.3, 1e6, 1), 1e-12, c.String())
		assert.False(t, math.IsNaN(c.Apply(50, 1e6, 1)), c.String())
	}
}

// TestIdealGas verifies c = 0 for U = 0 and γ = 0.
func TestIdealGas(t *testing.T) {
	for _, c := range all {
		assert.Equal(t, 0.0, c.Apply(0, 0, 1), c.String())
	}
}

// TestKovalenkoHirata_Branches checks both branches and continuity.
func TestKovalenkoHirata_Branches(t *testing.T) {
	kh := closure.KovalenkoHirata{}
	hnc := closure.HyperNettedChain{}

	// attractive region, d = 1.5 + 0.5 > 0: linear branch c = −βU
	assert.InDelta(t, 1.5, kh.Apply(0.5, -1.5, 1), 1e-15)
	// repulsive region reduces to HNC
	assert.InDelta(t, hnc.Apply(0.2, 1, 1), kh.Apply(0.2, 1, 1), 1e-15)
	// continuity at d = 0
	assert.InDelta(t, kh.Apply(0.4, 0.4-1e-12, 1), kh.Apply(0.4, 0.4+1e-12, 1), 1e-10)
}

// TestByName resolves aliases and rejects unknown names.
func TestByName(t *testing.T) {
	for name, want := range map[string]closure.Closure{
		"PY":                 closure.PercusYevick{},
		"percus-yevick":      closure.PercusYevick{},
		"HNC":                closure.HyperNettedChain{},
		"hyper_netted_chain": closure.HyperNettedChain{},
		"kh":                 closure.KovalenkoHirata{},
		"Kovalenko Hirata":   closure.KovalenkoHirata{},
	} {
		got, err := closure.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := closure.ByName("MSA")
	assert.ErrorIs(t, err, closure.ErrUnknownClosure)
	assert.ErrorIs(t, err, prism.ErrConfiguration)
}
