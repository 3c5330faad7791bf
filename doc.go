// Package prism solves the Polymer Reference Interaction Site Model (PRISM)
// for the equilibrium pair correlations of multi-component polymer liquids.
//
// 🚀 What is PRISM?
//
//	An integral-equation theory: the matrix Ornstein–Zernike relation couples
//	the direct correlation Ĉ(k), the total correlation Ĥ(k) and the
//	intramolecular correlation Ω̂(k) of every site-type pair; a closure ties
//	c(r) back to h(r) and the pair potential U(r). The solver drives the
//	coupled system to self-consistency with a Newton–Krylov root finder.
//
// ✨ Why this layout?
//
//   - Per-grid-point n×n algebra only: O(m·n³) per residual, never a global inverse
//   - Round-trip exact radial transforms built on DST-I (gonum/dsp/fourier)
//   - Providers as data: Omega, Potential and Closure are small interfaces
//   - Explicit per-pair configuration with a visible "fill unset" step
//
// Under the hood, everything is organized under these subpackages:
//
//	domain/      real/reciprocal grids and the forward/inverse radial transform
//	matrix/      (m,n,n) symmetric correlation arrays + per-point LU/inverse
//	omega/       intramolecular correlation functions ω̂(k)
//	potential/   pair potentials U(r) with optional contact distance
//	closure/     Percus–Yevick, HNC, Kovalenko–Hirata
//	system/      site types, densities, diameters, per-pair tables, assembly
//	rootfind/    Newton–Krylov (GMRES) and damped Picard
//	solver/      the PRISM residual, state machine and results
//	calculate/   g(r), S(k), potential of mean force
//	config/      INI / TOML loaders
//	report/      TSV and plot output
//	cmd/prism    command line front end
//
// Quick example:
//
//	sys, _ := system.New([]string{"A", "B"}, 1.0)
//	dom, _ := domain.New(0.1, 512)
//	sys.SetDomain(dom)
//	_ = sys.SetDensity("A", 0.5)
//	_ = sys.SetDensity("B", 0.5)
//	hs, _ := potential.NewHardSphere(potential.WithSigma(1.0))
//	sys.Potential.FillUnset(hs)
//	sys.Closure.FillUnset(closure.PercusYevick{})
//	sys.Omega.FillUnset(omega.SingleSite{})
//	p, _ := sys.Solver()
//	res, err := p.Solve(context.Background())
//
// Errors follow one taxonomy (see errors.go): ErrConfiguration,
// ErrPrecondition, ErrSingularMatrix and *NonConvergenceError.
//
//	go get github.com/katalvlaran/prism
package prism
