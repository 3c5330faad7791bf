// Package solver assembles and solves the PRISM equation
//
//	Ĥ(k) = [I − Ω(k)·Ĉ(k)]⁻¹ · Ω(k)·Ĉ(k)·Ω(k)
//
// closed in real space by one closure per site pair. The unknown is the
// direct correlation Ĉ(k) of every independent pair, flattened channel-major
// and driven to the fixed point of
//
//	Ĉ → FT[ closure( FT⁻¹[ĥ − Ĉ], U ) ]
//
// by a rootfind method. Ω here is the intramolecular correlation scaled
// elementwise by the site density matrix, and ĥ = Ĥ / ρ^pair.
//
// Lifecycle:
//
//	Unconfigured ─New→ Assembled ─Solve→ Iterating ─→ Converged
//	                                               └─→ Failed
//
// Converged and Failed solvers may be solved again. A PRISM value owns its
// working arrays and must not be solved from two goroutines at once; distinct
// values are independent.
package solver
