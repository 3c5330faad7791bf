// SPDX-License-Identifier: MIT
package omega

import (
	"fmt"
	"math"
)

// Gaussian is the ideal Gaussian chain of Length sites with segment length Sigma.
type Gaussian struct {
	Sigma  float64
	Length int
}

// NewGaussian validates sigma > 0 and length >= 1.
func NewGaussian(sigma float64, length int) (*Gaussian, error) {
	if err := checkChain("Gaussian", sigma, length); err != nil {
		return nil, err
	}

	return &Gaussian{Sigma: sigma, Length: length}, nil
}

// Calculate implements Omega with E = exp(−k²σ²/6).
// Complexity: O(len(k)).
func (g *Gaussian) Calculate(k []float64) ([]float64, error) {
	if err := checkChain("Gaussian", g.Sigma, g.Length); err != nil {
		return nil, err
	}
	out := make([]float64, len(k))
	for i, kv := range k {
		out[i] = chain(math.Exp(-kv*kv*g.Sigma*g.Sigma/6), g.Length)
	}

	return out, nil
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("Omega<Gaussian sigma=%g N=%d>", g.Sigma, g.Length)
}

// GaussianRing is the ideal Gaussian ring of Length sites.
type GaussianRing struct {
	Sigma  float64
	Length int
}

// NewGaussianRing validates sigma > 0 and length >= 1.
func NewGaussianRing(sigma float64, length int) (*GaussianRing, error) {
	if err := checkChain("GaussianRing", sigma, length); err != nil {
		return nil, err
	}

	return &GaussianRing{Sigma: sigma, Length: length}, nil
}

// Calculate implements Omega:
//
//	ω = 1 + Σ_{t=1}^{N−1} exp(−k²σ²·t(N−t)/(6N))
//
// Complexity: O(len(k)·N).
func (g *GaussianRing) Calculate(k []float64) ([]float64, error) {
	if err := checkChain("GaussianRing", g.Sigma, g.Length); err != nil {
		return nil, err
	}
	n := float64(g.Length)
	out := make([]float64, len(k))
	for i, kv := range k {
		x := kv * kv * g.Sigma * g.Sigma / (6 * n)
		sum := 1.0
		for t := 1; t < g.Length; t++ {
			ft := float64(t)
			sum += math.Exp(-x * ft * (n - ft))
		}
		out[i] = sum
	}

	return out, nil
}

func (g *GaussianRing) String() string {
	return fmt.Sprintf("Omega<GaussianRing sigma=%g N=%d>", g.Sigma, g.Length)
}

func checkChain(name string, scale float64, length int) error {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return fmt.Errorf("%s: length scale %g: %w", name, scale, ErrBadParameter)
	}
	if length < 1 {
		return fmt.Errorf("%s: chain length %d: %w", name, length, ErrBadParameter)
	}

	return nil
}
