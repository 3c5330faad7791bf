// SPDX-License-Identifier: MIT
package rootfind

import (
	"errors"

	"github.com/katalvlaran/prism"
)

var (
	// ErrNotConverged indicates the iteration budget ran out above tolerance.
	ErrNotConverged = errors.New("rootfind: not converged")

	// ErrNonFinite indicates a residual containing NaN or ±Inf.
	ErrNonFinite = errors.New("rootfind: non-finite residual")

	// ErrLineSearch indicates no trial step reduced the residual.
	ErrLineSearch = errors.New("rootfind: line search failed")

	// ErrBadOptions indicates non-positive tolerances or budgets.
	ErrBadOptions = errors.New("rootfind: invalid options")
)

// recoverable reports whether err condemns only the current trial point.
func recoverable(err error) bool {
	return errors.Is(err, prism.ErrSingularMatrix) || errors.Is(err, ErrNonFinite)
}
