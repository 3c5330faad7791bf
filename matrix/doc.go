// Package matrix holds the correlation-function containers of the PRISM
// solver and the small dense linear algebra they need.
//
// The matrix package provides:
//
//   - Array: a (length, rank, rank) symmetric array, one channel per
//     independent site-type pair, tagged as living in Real or Fourier space.
//   - Elementwise algebra over the whole volume (Add, Sub, Mul, Div, Scale).
//   - Per-grid-point kernels (Pointwise, Dot, Invert): the Ornstein–Zernike
//     relation is a separate rank×rank matrix equation at every wavenumber,
//     so no global (length·rank)² system is ever formed.
//   - Dense + LU: row-major blocks and a partial-pivoting factorization whose
//     zero pivots surface as *SingularError.
//
// Cost per per-point pass is O(length·rank³); elementwise passes are O(length·rank²).
//
// See the examples in this package for usage patterns.
package matrix
