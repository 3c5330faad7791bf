// Package config loads PRISM problems from INI or TOML files.
//
// Both formats share one layout:
//
//	[system]            types = A, B        kT = 1.0
//	[domain]            dr = 0.1            length = 512
//	[density]           A = 0.5             B = 0.5
//	[diameter]          A = 1.0                         (optional)
//	[closure]           default = PY        A-B = HNC
//	[potential.default] type = HardSphere   sigma = 1.0
//	[potential.A-B]     type = SquareWell   epsilon = 1 alpha = 0.5
//	[omega.A-A]         type = SingleSite
//	[omega.B-B]         type = Gaussian     sigma = 1   length = 10
//	[solver]            method = newton-krylov  tolerance = 1e-7
//	                    max_iterations = 100    verbose = false
//
// A "default" entry fills every pair left unset. In TOML, types is an array
// of strings; in INI it is a comma-separated list.
package config
