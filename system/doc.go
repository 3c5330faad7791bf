// Package system is the user-facing description of a PRISM problem: the site
// types, thermal energy, grid, per-type densities and diameters, and the
// per-pair closures, potentials and intramolecular correlations.
//
// Per-pair settings live in PairTable values keyed by unordered type pairs.
// There is no implicit default: a pair is either set, or filled explicitly
// with FillUnset, and Assemble reports every pair that is still missing.
//
//	sys, _ := system.New([]string{"A", "B"}, 1.0)
//	sys.SetDomain(dom)
//	sys.Potential.FillUnset(hs)          // every pair
//	sys.Omega.Set("A", "B", omega.NoIntra{})
//	...
//	p, err := sys.Solver()
package system
