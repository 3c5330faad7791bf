// SPDX-License-Identifier: MIT
package rootfind

import "fmt"

// Func writes F(x) into f. len(f) == len(x).
type Func func(x, f []float64) error

// Options tunes both solvers. Zero values are not defaults; start from
// DefaultOptions.
type Options struct {
	Tolerance     float64 // max-norm convergence threshold
	MaxIterations int     // outer iterations

	KrylovSize      int     // GMRES subspace size per restart
	KrylovRestarts  int     // GMRES restarts per Newton step
	Forcing         float64 // relative GMRES tolerance η
	LineSearchSteps int     // halvings before a Newton step is abandoned

	Damping    float64 // initial Picard λ
	MinDamping float64
	MaxDamping float64

	// Callback, when set, observes every accepted iterate.
	Callback func(iter int, norm float64)
}

// DefaultOptions returns the recommended settings.
func DefaultOptions() Options {
	return Options{
		Tolerance:       1e-7,
		MaxIterations:   100,
		KrylovSize:      40,
		KrylovRestarts:  3,
		Forcing:         1e-4,
		LineSearchSteps: 12,
		Damping:         0.5,
		MinDamping:      0.01,
		MaxDamping:      1.0,
	}
}

func (o Options) validate() error {
	switch {
	case !(o.Tolerance > 0):
		return fmt.Errorf("tolerance %g: %w", o.Tolerance, ErrBadOptions)
	case o.MaxIterations < 1:
		return fmt.Errorf("max iterations %d: %w", o.MaxIterations, ErrBadOptions)
	case o.KrylovSize < 1 || o.KrylovRestarts < 1:
		return fmt.Errorf("krylov %d×%d: %w", o.KrylovSize, o.KrylovRestarts, ErrBadOptions)
	case !(o.Forcing > 0 && o.Forcing < 1):
		return fmt.Errorf("forcing %g: %w", o.Forcing, ErrBadOptions)
	case o.LineSearchSteps < 1:
		return fmt.Errorf("line search steps %d: %w", o.LineSearchSteps, ErrBadOptions)
	case !(o.MinDamping > 0 && o.MinDamping <= o.Damping && o.Damping <= o.MaxDamping):
		return fmt.Errorf("damping %g in [%g, %g]: %w", o.Damping, o.MinDamping, o.MaxDamping, ErrBadOptions)
	}

	return nil
}

// Result describes the final iterate. On failure it holds the last accepted
// iterate and its residual.
type Result struct {
	X            []float64
	Iterations   int
	Evaluations  int
	ResidualNorm float64
	Converged    bool
}
