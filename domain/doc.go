// Package domain defines the solution grids of the PRISM solver and the
// radial Fourier transform pair that links them.
//
// Grids:
//
//	r_i = (i+1)·dr,  k_i = (i+1)·dk,  dk = π / (dr·(N+1)),  i = 0..N-1
//
// Both grids exclude the origin, which is exactly the sample set of the
// type-I discrete sine transform, so the forward and inverse transforms
//
//	f̂(k_j) = (2π·dr / k_j) · DST[r·f]_j
//	f(r_j) = (dk / (4π²·r_j)) · DST[k·f̂]_j
//
// discretise the 3-D radial transform f̂(k) = 4π/k ∫ r f(r) sin(kr) dr and
// its inverse, and compose to the identity up to rounding (DST∘DST = 2(N+1)).
//
// Transforms reuse internal work buffers: a Domain must not be used for
// transforms from several goroutines at once; Clone it instead.
package domain
