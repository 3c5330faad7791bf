// Package omega provides intramolecular pair correlation functions ω̂_αβ(k).
//
// An Omega is evaluated once per solve on the reciprocal-space grid. The
// "self" convention is used throughout: a single site correlates with itself
// with weight 1, so ω̂ → number of sites as k → 0 for a homopolymer chain.
//
//	SingleSite               ω = 1
//	NoIntra                  ω = 0
//	Gaussian                 ideal Gaussian chain of N sites, segment σ
//	GaussianRing             ideal Gaussian ring of N sites
//	FreelyJointedChain       freely jointed chain of N sites, bond length l
//	FreelyJointedCopolymer   freely jointed copolymer, per label pair
//	FromArray                user-supplied values on the grid
package omega
