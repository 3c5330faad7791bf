// SPDX-License-Identifier: MIT
package domain

import (
	"fmt"

	"github.com/katalvlaran/prism/matrix"
)

// ToFourier transforms a real-space radial function src into dst.
// dst and src may be the same slice.
// Errors: ErrLengthMismatch when either slice is not Length() long.
// Complexity: O(N log N).
func (d *Domain) ToFourier(dst, src []float64) error {
	if err := d.checkLen(dst, src); err != nil {
		return fmt.Errorf("ToFourier: %w", err)
	}
	for i, v := range src {
		d.buf[i] = v * d.r[i]
	}
	d.dst.Transform(d.buf, d.buf)
	for i, v := range d.buf {
		dst[i] = v * d.fourierCoeff[i]
	}

	return nil
}

// ToReal transforms a reciprocal-space function src into dst.
// dst and src may be the same slice.
// Errors: ErrLengthMismatch when either slice is not Length() long.
// Complexity: O(N log N).
func (d *Domain) ToReal(dst, src []float64) error {
	if err := d.checkLen(dst, src); err != nil {
		return fmt.Errorf("ToReal: %w", err)
	}
	for i, v := range src {
		d.buf[i] = v * d.k[i]
	}
	d.dst.Transform(d.buf, d.buf)
	for i, v := range d.buf {
		dst[i] = v * d.realCoeff[i]
	}

	return nil
}

// MatrixArrayToFourier transforms every independent channel of a Real array in
// place and retags it as Fourier.
// Errors: ErrLengthMismatch, ErrWrongSpace.
// Complexity: O(pairs · N log N).
func (d *Domain) MatrixArrayToFourier(a *matrix.Array) error {
	if err := d.checkArray(a, matrix.Real); err != nil {
		return fmt.Errorf("MatrixArrayToFourier: %w", err)
	}
	for p := 0; p < a.Pairs(); p++ {
		ch, _ := a.ChannelAt(p)
		if err := d.ToFourier(ch, ch); err != nil {
			return err
		}
	}
	a.SetSpace(matrix.Fourier)

	return nil
}

// MatrixArrayToReal transforms every independent channel of a Fourier array in
// place and retags it as Real.
// Errors: ErrLengthMismatch, ErrWrongSpace.
// Complexity: O(pairs · N log N).
func (d *Domain) MatrixArrayToReal(a *matrix.Array) error {
	if err := d.checkArray(a, matrix.Fourier); err != nil {
		return fmt.Errorf("MatrixArrayToReal: %w", err)
	}
	for p := 0; p < a.Pairs(); p++ {
		ch, _ := a.ChannelAt(p)
		if err := d.ToReal(ch, ch); err != nil {
			return err
		}
	}
	a.SetSpace(matrix.Real)

	return nil
}

func (d *Domain) checkLen(dst, src []float64) error {
	if len(src) != d.length {
		return fmt.Errorf("src has %d points, grid has %d: %w", len(src), d.length, ErrLengthMismatch)
	}
	if len(dst) != d.length {
		return fmt.Errorf("dst has %d points, grid has %d: %w", len(dst), d.length, ErrLengthMismatch)
	}

	return nil
}

func (d *Domain) checkArray(a *matrix.Array, want matrix.Space) error {
	if a == nil {
		return matrix.ErrNilMatrix
	}
	if a.Length() != d.length {
		return fmt.Errorf("array has %d points, grid has %d: %w", a.Length(), d.length, ErrLengthMismatch)
	}
	if a.Space() != want {
		return fmt.Errorf("want %s, got %s: %w", want, a.Space(), ErrWrongSpace)
	}

	return nil
}
