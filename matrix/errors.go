// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prism"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Each sentinel wraps one root category of the prism taxonomy, so
// errors.Is(err, prism.ErrConfiguration) also matches shape problems.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension/space mismatch -> numeric (NaN/Inf, singular).

var (
	// ErrBadShape is returned when a requested shape is invalid (length<=0 or rank<=0).
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", prism.ErrConfiguration)

	// ErrOutOfRange indicates that a grid, row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g., Add of arrays with different lengths, or a flat vector of wrong size.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", prism.ErrConfiguration)

	// ErrSpaceMismatch indicates operands living in different spaces (Real vs Fourier).
	ErrSpaceMismatch = fmt.Errorf("matrix: space mismatch: %w", prism.ErrConfiguration)

	// ErrAsymmetry signals that a block expected to be symmetric violated symmetry
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a (numerically) zero pivot is met during LU.
	ErrSingular = fmt.Errorf("matrix: singular block: %w", prism.ErrSingularMatrix)
)

// SingularError carries the location of a failed per-point inversion.
// Point is the grid index (-1 for a standalone block), Pivot the failing column.
type SingularError struct {
	Point int
	Pivot int
}

// Error implements the error interface.
func (e *SingularError) Error() string {
	if e.Point < 0 {
		return fmt.Sprintf("matrix: zero pivot in column %d: singular block", e.Pivot)
	}

	return fmt.Sprintf("matrix: zero pivot in column %d at grid point %d: singular block", e.Pivot, e.Point)
}

// Unwrap lets errors.Is match ErrSingular and prism.ErrSingularMatrix.
func (e *SingularError) Unwrap() error {
	return ErrSingular
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opDot       = "Dot"
	opInvert    = "Invert"
	opFlatten   = "Flatten"
	opUnflatten = "Unflatten"
	opPointwise = "Pointwise"
)
