// Package calculate derives observables from a converged solver.Result:
//
//	PairCorrelation        g(r) = h(r) + 1
//	StructureFactor        S(k) = ω̂(k) + (ρ^pair / ρ^site)·ĥ(k)
//	PotentialOfMeanForce   w(r) = −kT·ln g(r)
//
// Every function returns a new Array; the Result is not modified.
package calculate
