// Package rootfind solves F(x) = 0 for vector residual functions.
//
// Two methods share one Options type:
//
//	NewtonKrylov   Jacobian-free Newton: each step solves J·d = −F with
//	               restarted GMRES, where J·v is approximated by a forward
//	               difference of F, followed by a backtracking line search on ‖F‖₂.
//	Picard         damped fixed-point iteration x ← x + λ·F(x) with λ adapted
//	               to the observed residual trend.
//
// Convergence is declared when the max-norm of F drops to Options.Tolerance.
// Residual failures that only mean "this trial point is bad" (a singular
// block or a non-finite value) are absorbed by the line search; any other
// error from F aborts the solve.
package rootfind
