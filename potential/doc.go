// Package potential provides pair potentials U_αβ(r) evaluated on the
// real-space grid.
//
// Every potential carries a contact distance σ. It may be given explicitly
// (WithSigma) or left unset and resolved later from site diameters through
// WithContact; evaluating a potential with σ unset fails with ErrSigmaUnset.
// Hard cores are represented by a large finite value (WithHighValue, default
// 1e6), never by +Inf.
//
// Contact boundaries:
//
//	HardSphere, HardCoreLennardJones, Yukawa   r <  σ → high
//	SquareWell, Exponential                    r <= σ → high
package potential
