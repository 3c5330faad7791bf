// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/space/symmetry checks here.
//   - Return plain sentinel errors wrapped with the validator tag so call sites
//     can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on
// bad tol, ErrAsymmetry on violation.
// Complexity: O(n^2).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → length/rank equal.
// Complexity: O(1).
func ValidateSameShape(a, b *Array) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.length != b.length {
		return validatorErrorf("ValidateSameShape: Length", ErrDimensionMismatch)
	}
	if a.rank != b.rank {
		return validatorErrorf("ValidateSameShape: Rank", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameSpace – Composite: SameShape → space tags equal.
// Complexity: O(1).
func ValidateSameSpace(a, b *Array) error {
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateSameSpace", err)
	}
	if a.space != b.space {
		return validatorErrorf("ValidateSameSpace", ErrSpaceMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite reports ErrNaNInf when any stored value of a is NaN or ±Inf.
// Complexity: O(m·n(n+1)/2).
func ValidateFinite(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
