// SPDX-License-Identifier: MIT
package omega

import (
	"fmt"
	"math"
)

// Omega evaluates an intramolecular correlation function on a wavenumber grid.
type Omega interface {
	// Calculate returns ω̂(k) for every k; the result is freshly allocated.
	Calculate(k []float64) ([]float64, error)
	fmt.Stringer
}

// SingleSite is the ω̂ = 1 correlation of a site with itself.
type SingleSite struct{}

// Calculate implements Omega.
func (SingleSite) Calculate(k []float64) ([]float64, error) { return constant(k, 1), nil }

func (SingleSite) String() string { return "Omega<SingleSite>" }

// NoIntra marks a pair that never shares a molecule.
type NoIntra struct{}

// Calculate implements Omega.
func (NoIntra) Calculate(k []float64) ([]float64, error) { return constant(k, 0), nil }

func (NoIntra) String() string { return "Omega<NoIntra>" }

// FromArray wraps precomputed values; Calculate fails when the grid length differs.
type FromArray struct {
	values []float64
}

// NewFromArray copies values into a FromArray.
func NewFromArray(values []float64) *FromArray {
	return &FromArray{values: append([]float64(nil), values...)}
}

// Calculate implements Omega.
func (f *FromArray) Calculate(k []float64) ([]float64, error) {
	if len(k) != len(f.values) {
		return nil, fmt.Errorf("FromArray: %d values for %d wavenumbers: %w", len(f.values), len(k), ErrLengthMismatch)
	}

	return append([]float64(nil), f.values...), nil
}

func (f *FromArray) String() string { return fmt.Sprintf("Omega<FromArray n=%d>", len(f.values)) }

func constant(k []float64, v float64) []float64 {
	out := make([]float64, len(k))
	for i := range out {
		out[i] = v
	}

	return out
}

// smallGap is the 1−E threshold below which the closed chain form is replaced
// by the direct series, which has no 0/0 at k → 0.
const smallGap = 1e-3

// chain evaluates ω̂ of a linear chain of n sites whose per-bond factor is e:
//
//	ω = (1 − E² − 2E/N + 2E^{N+1}/N) / (1 − E)²
//	  = (N + 2·Σ_{d=1}^{N−1} (N−d)·E^d) / N
func chain(e float64, n int) float64 {
	nf := float64(n)
	if 1-e > smallGap {
		return (1 - e*e - 2*e/nf + 2*math.Pow(e, nf+1)/nf) / ((1 - e) * (1 - e))
	}
	sum, pow := nf, 1.0
	for d := 1; d < n; d++ {
		pow *= e
		sum += 2 * float64(n-d) * pow
	}

	return sum / nf
}
