// SPDX-License-Identifier: MIT
package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Domain is a real-space grid of `length` points spaced by dr together with
// its conjugate reciprocal-space grid.
//
// Transforms share one scratch buffer, so a Domain is not safe for concurrent
// ToFourier/ToReal calls; give each goroutine its own Clone.
type Domain struct {
	dr     float64
	dk     float64
	length int

	r []float64
	k []float64

	// precomputed prefactors of the forward and inverse transforms
	fourierCoeff []float64 // 2π·dr / k_j
	realCoeff    []float64 // dk / (4π²·r_j)

	dst *fourier.DST
	buf []float64
}

// New builds the grids for spacing dr and `length` points.
// Stage 1 (Validate): dr finite and > 0, length >= 2.
// Stage 2 (Prepare): grids, transform prefactors and the DST plan.
// Complexity: O(length).
func New(dr float64, length int) (*Domain, error) {
	if !(dr > 0) || math.IsInf(dr, 0) {
		return nil, fmt.Errorf("dr=%g: %w", dr, ErrBadGrid)
	}
	if length < 2 {
		return nil, fmt.Errorf("length=%d: %w", length, ErrBadGrid)
	}

	d := &Domain{
		dr:           dr,
		dk:           math.Pi / (dr * float64(length+1)),
		length:       length,
		r:            make([]float64, length),
		k:            make([]float64, length),
		fourierCoeff: make([]float64, length),
		realCoeff:    make([]float64, length),
		dst:          fourier.NewDST(length),
		buf:          make([]float64, length),
	}
	for i := 0; i < length; i++ {
		d.r[i] = float64(i+1) * d.dr
		d.k[i] = float64(i+1) * d.dk
		d.fourierCoeff[i] = 2 * math.Pi * d.dr / d.k[i]
		d.realCoeff[i] = d.dk / (4 * math.Pi * math.Pi * d.r[i])
	}

	return d, nil
}

// Clone returns an independent Domain with its own transform buffers, safe to
// use from another goroutine.
func (d *Domain) Clone() *Domain {
	c, _ := New(d.dr, d.length)

	return c
}

// Dr returns the real-space spacing.
func (d *Domain) Dr() float64 { return d.dr }

// Dk returns the reciprocal-space spacing π/(dr·(length+1)).
func (d *Domain) Dk() float64 { return d.dk }

// Length returns the number of grid points.
func (d *Domain) Length() int { return d.length }

// R returns a copy of the real-space grid.
func (d *Domain) R() []float64 { return append([]float64(nil), d.r...) }

// K returns a copy of the reciprocal-space grid.
func (d *Domain) K() []float64 { return append([]float64(nil), d.k...) }

// RMax returns the last real-space grid point.
func (d *Domain) RMax() float64 { return d.r[d.length-1] }

// SnapToGrid returns the real-space grid point nearest to x, its index and
// the absolute snap distance |x − r_idx|.
// Complexity: O(1).
func (d *Domain) SnapToGrid(x float64) (snapped float64, idx int, distance float64) {
	idx = int(math.Round(x/d.dr)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= d.length {
		idx = d.length - 1
	}
	snapped = d.r[idx]

	return snapped, idx, math.Abs(x - snapped)
}

// String implements fmt.Stringer.
func (d *Domain) String() string {
	return fmt.Sprintf("Domain(dr=%g, dk=%.6g, length=%d)", d.dr, d.dk, d.length)
}
