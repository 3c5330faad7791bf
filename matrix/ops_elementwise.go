// SPDX-License-Identifier: MIT
// Package matrix provides whole-volume and per-grid-point operations on
// Arrays: elementwise addition, subtraction, Hadamard product/quotient and
// scaling across the (m,n,n) volume, plus per-point matrix products and
// inverses. All functions perform strict fail-fast validation and return
// clear errors on shape or space mismatches.
//
// Notes:
//   - Elementwise kernels walk the flat channel storage once (0..len-1).
//   - Per-point kernels gather a rank×rank Dense, operate, and scatter back
//     symmetrised; grid points are independent of each other.

package matrix

import "errors"

// elementwise computes out[idx] = fn(a[idx], b[idx]) into a fresh Array.
// Inputs must share shape and space; operands are not mutated.
// Complexity: O(len).
func elementwise(a, b *Array, fn func(x, y float64) float64, opTag string) (*Array, error) {
	if err := ValidateSameSpace(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := a.Clone()
	for idx := range res.data {
		res.data[idx] = fn(a.data[idx], b.data[idx])
	}

	return res, nil
}

// elementwiseInPlace computes a[idx] = fn(a[idx], b[idx]).
func elementwiseInPlace(a, b *Array, fn func(x, y float64) float64, opTag string) error {
	if err := ValidateSameSpace(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range a.data {
		a.data[idx] = fn(a.data[idx], b.data[idx])
	}

	return nil
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSpaceMismatch.
func Add(a, b *Array) (*Array, error) { return elementwise(a, b, add, opAdd) }

// Sub returns a − b.
func Sub(a, b *Array) (*Array, error) { return elementwise(a, b, sub, opSub) }

// Mul returns the elementwise (Hadamard) product a ∘ b.
func Mul(a, b *Array) (*Array, error) { return elementwise(a, b, mul, opMul) }

// Div returns the elementwise quotient a ⊘ b. Division by zero follows IEEE-754.
func Div(a, b *Array) (*Array, error) { return elementwise(a, b, div, opDiv) }

// AddInPlace performs a += b.
func (a *Array) AddInPlace(b *Array) error { return elementwiseInPlace(a, b, add, opAdd) }

// SubInPlace performs a −= b.
func (a *Array) SubInPlace(b *Array) error { return elementwiseInPlace(a, b, sub, opSub) }

// MulInPlace performs a ∘= b.
func (a *Array) MulInPlace(b *Array) error { return elementwiseInPlace(a, b, mul, opMul) }

// DivInPlace performs a ⊘= b.
func (a *Array) DivInPlace(b *Array) error { return elementwiseInPlace(a, b, div, opDiv) }

// Scale multiplies every value by s in place and returns a for chaining.
func (a *Array) Scale(s float64) *Array {
	for idx := range a.data {
		a.data[idx] *= s
	}

	return a
}

// AddScalar adds s to every value in place and returns a for chaining.
func (a *Array) AddScalar(s float64) *Array {
	for idx := range a.data {
		a.data[idx] += s
	}

	return a
}

// ScalePairs multiplies channel (i,j) at every grid point by w[i][j], which
// applies a constant symmetric weight matrix elementwise (e.g. site densities).
func (a *Array) ScalePairs(w *Dense) error {
	if w.r != a.rank || w.c != a.rank {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}
	for p := 0; p < a.pairs; p++ {
		i, j := PairAt(p, a.rank)
		s := w.data[i*a.rank+j]
		ch := a.data[p*a.length : (p+1)*a.length]
		for k := range ch {
			ch[k] *= s
		}
	}

	return nil
}

// PointKernel computes dst from the gathered input blocks at grid point k.
// dst is a scratch block; the caller scatters it symmetrised into the output.
type PointKernel func(k int, dst *Dense, src []*Dense) error

// Pointwise evaluates kernel at every grid point and stores the results in out.
// Stage 1 (Validate): every input shares out's shape.
// Stage 2 (Prepare): one scratch block per input plus one for the output.
// Stage 3 (Execute): k = 0..length-1, gather → kernel → scatter.
// A *SingularError raised by the kernel is stamped with the grid index.
// out may alias one of the inputs: each point is gathered before it is written.
// Complexity: O(length · cost(kernel)).
func Pointwise(out *Array, kernel PointKernel, in ...*Array) error {
	if out == nil {
		return matrixErrorf(opPointwise, ErrNilMatrix)
	}
	for _, x := range in {
		if err := ValidateSameShape(out, x); err != nil {
			return matrixErrorf(opPointwise, err)
		}
	}
	n := out.rank
	src := make([]*Dense, len(in))
	for i := range src {
		src[i], _ = NewDense(n, n)
	}
	dst, _ := NewDense(n, n)

	for k := 0; k < out.length; k++ {
		for i, x := range in {
			x.gather(k, src[i])
		}
		if err := kernel(k, dst, src); err != nil {
			var se *SingularError
			if errors.As(err, &se) && se.Point < 0 {
				se.Point = k
			}

			return matrixErrorf(opPointwise, err)
		}
		out.scatter(k, dst)
	}

	return nil
}

// Dot returns the per-point matrix product a(k)·b(k), symmetrised.
// The product of two symmetric blocks is symmetric only when they commute;
// use Pointwise for general chains such as (I − ΩC)⁻¹ΩCΩ.
// Complexity: O(length · rank³).
func Dot(a, b *Array) (*Array, error) {
	if err := ValidateSameSpace(a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	out, err := NewArray(a.length, a.rank, a.space)
	if err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	err = Pointwise(out, func(_ int, dst *Dense, src []*Dense) error {
		return dst.Mul(src[0], src[1])
	}, a, b)
	if err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	return out, nil
}

// Invert replaces every block by its inverse, in place.
// Errors: *SingularError (matching ErrSingular and prism.ErrSingularMatrix)
// naming the first grid point whose block has a zero pivot.
// Complexity: O(length · rank³).
func (a *Array) Invert() error {
	f, err := NewLU(a.rank)
	if err != nil {
		return matrixErrorf(opInvert, err)
	}
	err = Pointwise(a, func(_ int, dst *Dense, src []*Dense) error {
		if ferr := f.Factorize(src[0]); ferr != nil {
			return ferr
		}

		return f.Inverse(dst)
	}, a)
	if err != nil {
		return matrixErrorf(opInvert, err)
	}

	return nil
}
