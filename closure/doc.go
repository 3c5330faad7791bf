// Package closure provides the closure relations that complete the PRISM
// equation.
//
// A closure maps the real-space indirect correlation γ = h − c at one grid
// point, the pair potential U there, and β = 1/kT to the direct correlation c.
// Writing closures in γ keeps hard-core regions finite: e^{−βU} underflows to
// zero instead of e^{+βU} overflowing.
//
//	PercusYevick       c = (e^{−βU} − 1)(1 + γ)
//	HyperNettedChain   c = e^{−βU+γ} − 1 − γ
//	KovalenkoHirata    c = −βU            if −βU + γ > 0
//	                   c = e^{−βU+γ} − 1 − γ otherwise
//
// Derivative returns ∂c/∂γ at fixed U, for Jacobian or preconditioner use.
package closure
