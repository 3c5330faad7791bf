// SPDX-License-Identifier: MIT
// Package matrix: Array is the three-index correlation container of the
// solver, logically a function from grid index k to a symmetric rank×rank
// block. Only the rank(rank+1)/2 independent pairs are stored, one contiguous
// channel of `length` values per pair, so At(k,i,j) == At(k,j,i) holds by
// construction and never drifts.

package matrix

import "fmt"

// Space tags which grid an Array lives on.
type Space int

const (
	// Real marks functions of the separation r.
	Real Space = iota

	// Fourier marks functions of the wavenumber k.
	Fourier
)

// String implements fmt.Stringer.
func (s Space) String() string {
	switch s {
	case Real:
		return "Real"
	case Fourier:
		return "Fourier"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// PairCount returns the number of independent pairs of a rank×rank symmetric block.
func PairCount(rank int) int { return rank * (rank + 1) / 2 }

// PairIndex maps (i,j) to its channel index in row-major upper-triangle order.
// The pair is canonicalised (i<=j) first.
// Complexity: O(1).
func PairIndex(i, j, rank int) int {
	if i > j {
		i, j = j, i
	}

	return i*rank - i*(i-1)/2 + (j - i)
}

// PairAt is the inverse of PairIndex: channel p -> (i,j) with i<=j.
// Complexity: O(rank).
func PairAt(p, rank int) (int, int) {
	for i := 0; i < rank; i++ {
		width := rank - i
		if p < width {
			return i, i + p
		}
		p -= width
	}

	return -1, -1
}

// Array stores `pairs` channels of `length` values, channel-major.
type Array struct {
	length int       // number of grid points
	rank   int       // number of site types
	pairs  int       // rank(rank+1)/2
	space  Space     // Real or Fourier
	data   []float64 // pairs*length values
}

// NewArray allocates a zero Array of shape (length, rank, rank).
// Stage 1 (Validate): length > 0, rank > 0.
// Stage 2 (Prepare): single flat allocation.
// Complexity: O(length·rank²).
func NewArray(length, rank int, space Space) (*Array, error) {
	if length <= 0 || rank <= 0 {
		return nil, ErrBadShape
	}
	pairs := PairCount(rank)

	return &Array{
		length: length,
		rank:   rank,
		pairs:  pairs,
		space:  space,
		data:   make([]float64, pairs*length),
	}, nil
}

// NewIdentityArray returns an Array holding I at every grid point.
func NewIdentityArray(length, rank int, space Space) (*Array, error) {
	a, err := NewArray(length, rank, space)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rank; i++ {
		ch := a.channel(i, i)
		for k := range ch {
			ch[k] = 1
		}
	}

	return a, nil
}

// Length returns the number of grid points.
func (a *Array) Length() int { return a.length }

// Rank returns the number of site types.
func (a *Array) Rank() int { return a.rank }

// Pairs returns the number of stored channels.
func (a *Array) Pairs() int { return a.pairs }

// Space returns the space tag.
func (a *Array) Space() Space { return a.space }

// SetSpace retags the array; the transform routines call it after converting the data.
func (a *Array) SetSpace(s Space) { a.space = s }

// FlatLen is the length of the vector produced by Flatten.
func (a *Array) FlatLen() int { return len(a.data) }

// channel returns the aliased channel without bounds checks.
func (a *Array) channel(i, j int) []float64 {
	p := PairIndex(i, j, a.rank)

	return a.data[p*a.length : (p+1)*a.length]
}

// Channel returns the (aliased) values of pair (i,j) over the grid.
// Writes through the returned slice modify the array, for both (i,j) and (j,i).
// Complexity: O(1).
func (a *Array) Channel(i, j int) ([]float64, error) {
	if i < 0 || i >= a.rank || j < 0 || j >= a.rank {
		return nil, fmt.Errorf("Array.Channel(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return a.channel(i, j), nil
}

// ChannelAt returns the aliased values of channel p (PairIndex order).
func (a *Array) ChannelAt(p int) ([]float64, error) {
	if p < 0 || p >= a.pairs {
		return nil, fmt.Errorf("Array.ChannelAt(%d): %w", p, ErrOutOfRange)
	}

	return a.data[p*a.length : (p+1)*a.length], nil
}

// SetChannel copies values into pair (i,j).
func (a *Array) SetChannel(i, j int, values []float64) error {
	ch, err := a.Channel(i, j)
	if err != nil {
		return err
	}
	if len(values) != a.length {
		return fmt.Errorf("Array.SetChannel(%d,%d): %w", i, j, ErrDimensionMismatch)
	}
	copy(ch, values)

	return nil
}

// At returns the value of pair (i,j) at grid point k.
// Complexity: O(1).
func (a *Array) At(k, i, j int) (float64, error) {
	if k < 0 || k >= a.length || i < 0 || i >= a.rank || j < 0 || j >= a.rank {
		return 0, fmt.Errorf("Array.At(%d,%d,%d): %w", k, i, j, ErrOutOfRange)
	}

	return a.data[PairIndex(i, j, a.rank)*a.length+k], nil
}

// Set assigns v to pair (i,j) (and thereby (j,i)) at grid point k.
// Complexity: O(1).
func (a *Array) Set(k, i, j int, v float64) error {
	if k < 0 || k >= a.length || i < 0 || i >= a.rank || j < 0 || j >= a.rank {
		return fmt.Errorf("Array.Set(%d,%d,%d): %w", k, i, j, ErrOutOfRange)
	}
	a.data[PairIndex(i, j, a.rank)*a.length+k] = v

	return nil
}

// Point gathers the rank×rank block at grid point k into dst.
// Complexity: O(rank²).
func (a *Array) Point(k int, dst *Dense) error {
	if k < 0 || k >= a.length {
		return fmt.Errorf("Array.Point(%d): %w", k, ErrOutOfRange)
	}
	if dst.r != a.rank || dst.c != a.rank {
		return fmt.Errorf("Array.Point(%d): %w", k, ErrDimensionMismatch)
	}
	a.gather(k, dst)

	return nil
}

// gather is Point without checks.
func (a *Array) gather(k int, dst *Dense) {
	n := a.rank
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v = a.data[PairIndex(i, j, n)*a.length+k]
			dst.data[i*n+j] = v
			dst.data[j*n+i] = v
		}
	}
}

// SetPoint scatters src into grid point k, storing (src_ij + src_ji)/2 for
// every pair so floating-point drift in src never breaks symmetry.
// Complexity: O(rank²).
func (a *Array) SetPoint(k int, src *Dense) error {
	if k < 0 || k >= a.length {
		return fmt.Errorf("Array.SetPoint(%d): %w", k, ErrOutOfRange)
	}
	if src.r != a.rank || src.c != a.rank {
		return fmt.Errorf("Array.SetPoint(%d): %w", k, ErrDimensionMismatch)
	}
	a.scatter(k, src)

	return nil
}

// scatter is SetPoint without checks.
func (a *Array) scatter(k int, src *Dense) {
	n := a.rank
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.data[PairIndex(i, j, n)*a.length+k] = 0.5 * (src.data[i*n+j] + src.data[j*n+i])
		}
	}
}

// Clone returns a deep copy.
// Complexity: O(len).
func (a *Array) Clone() *Array {
	cp := make([]float64, len(a.data))
	copy(cp, a.data)

	return &Array{length: a.length, rank: a.rank, pairs: a.pairs, space: a.space, data: cp}
}

// CopyFrom overwrites a with src (shape must match; the space tag is copied).
func (a *Array) CopyFrom(src *Array) error {
	if err := ValidateSameShape(a, src); err != nil {
		return err
	}
	copy(a.data, src.data)
	a.space = src.space

	return nil
}

// Fill sets every stored value to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Flatten copies the independent values into dst, channel-major
// (channel p occupies dst[p*length:(p+1)*length]).
// Complexity: O(len).
func (a *Array) Flatten(dst []float64) error {
	if err := ValidateVecLen(dst, len(a.data)); err != nil {
		return matrixErrorf(opFlatten, err)
	}
	copy(dst, a.data)

	return nil
}

// Unflatten is the inverse of Flatten.
// Complexity: O(len).
func (a *Array) Unflatten(src []float64) error {
	if err := ValidateVecLen(src, len(a.data)); err != nil {
		return matrixErrorf(opUnflatten, err)
	}
	copy(a.data, src)

	return nil
}

// String implements fmt.Stringer with a compact shape summary.
func (a *Array) String() string {
	return fmt.Sprintf("Array(%d×%d×%d, %s)", a.length, a.rank, a.rank, a.space)
}
