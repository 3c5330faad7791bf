// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting and the block
// inverse built on it. The per-grid-point OZ solve inverts one small n×n
// block per wavenumber, so the factorization reuses its scratch storage
// across calls instead of allocating per point.

package matrix

import "math"

// DefaultPivotTolerance is the relative magnitude below which a pivot is
// treated as zero: |p| <= DefaultPivotTolerance · max|a_ij|.
const DefaultPivotTolerance = 1e-14

// LU holds a row-pivoted factorization P·A = L·U of an n×n block.
// L is unit lower triangular and shares storage with U.
type LU struct {
	n   int
	lu  []float64 // combined L (strict lower) and U (upper), row-major
	piv []int     // row permutation: row i of P·A is row piv[i] of A
	col []float64 // scratch for substitution
	e   []float64 // scratch identity column
	x   []float64 // scratch solution column
	tol float64
}

// NewLU allocates an LU workspace for n×n blocks.
func NewLU(n int) (*LU, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &LU{
		n:   n,
		lu:  make([]float64, n*n),
		piv: make([]int, n),
		col: make([]float64, n),
		e:   make([]float64, n),
		x:   make([]float64, n),
		tol: DefaultPivotTolerance,
	}, nil
}

// Factorize computes P·A = L·U for the square block a.
// Blueprint:
//
//	Stage 1 (Validate): a is n×n and finite.
//	Stage 2 (Decompose): Doolittle elimination, choosing the largest
//	                     remaining pivot in each column.
//	Stage 3 (Finalize): zero (or NaN) pivot -> *SingularError.
//
// Complexity: O(n³) time, O(1) extra memory.
func (f *LU) Factorize(a *Dense) error {
	if a.r != f.n || a.c != f.n {
		return ErrDimensionMismatch
	}
	n := f.n
	copy(f.lu, a.data)

	var scale float64
	for _, v := range f.lu {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	for i := range f.piv {
		f.piv[i] = i
	}
	threshold := f.tol * scale

	var (
		i, j, k, p int
		best, v    float64
		pivot      float64
	)
	for k = 0; k < n; k++ {
		// choose pivot row
		p, best = k, math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(f.lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= threshold || math.IsNaN(best) {
			return &SingularError{Point: -1, Pivot: k}
		}
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
		}
		pivot = f.lu[k*n+k]
		// eliminate below the pivot, storing multipliers in L
		for i = k + 1; i < n; i++ {
			f.lu[i*n+k] /= pivot
			m := f.lu[i*n+k]
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= m * f.lu[k*n+j]
			}
		}
	}

	return nil
}

// solveInto solves A·x = b for a factorized A. b and x may alias.
func (f *LU) solveInto(x, b []float64) {
	n := f.n
	var (
		i, k int
		sum  float64
	)
	// apply permutation and forward substitution: L·y = P·b
	for i = 0; i < n; i++ {
		f.col[i] = b[f.piv[i]]
	}
	for i = 0; i < n; i++ {
		sum = f.col[i]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * f.col[k]
		}
		f.col[i] = sum
	}
	// backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = f.col[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * f.col[k]
		}
		f.col[i] = sum / f.lu[i*n+i]
	}
	copy(x, f.col)
}

// SolveVec solves A·x = b for the last factorized block.
func (f *LU) SolveVec(x, b []float64) error {
	if len(x) != f.n || len(b) != f.n {
		return ErrDimensionMismatch
	}
	f.solveInto(x, b)

	return nil
}

// Inverse writes A⁻¹ of the last factorized block into dst.
// Stage 1: for each identity column e_j solve A·x = e_j.
// Stage 2: scatter x into column j of dst.
// Complexity: O(n³).
func (f *LU) Inverse(dst *Dense) error {
	if dst.r != f.n || dst.c != f.n {
		return matrixErrorf(opInvert, ErrDimensionMismatch)
	}
	n := f.n
	e, x := f.e, f.x
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		f.solveInto(x, e)
		for i := 0; i < n; i++ {
			dst.data[i*n+j] = x[i]
		}
	}

	return nil
}

// Inverse returns a⁻¹ for a square block, or *SingularError.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opInvert, ErrNilMatrix)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	f, err := NewLU(a.r)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	if err = f.Factorize(a); err != nil {
		return nil, err
	}
	inv, _ := NewDense(a.r, a.c)
	if err = f.Inverse(inv); err != nil {
		return nil, err
	}

	return inv, nil
}
