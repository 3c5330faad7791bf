// SPDX-License-Identifier: MIT
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prism"
)

var (
	// ErrInvalidInputs indicates inconsistent assembly inputs.
	ErrInvalidInputs = fmt.Errorf("solver: invalid inputs: %w", prism.ErrConfiguration)

	// ErrInvalidOption indicates a non-positive tolerance or budget, or a
	// malformed initial guess.
	ErrInvalidOption = fmt.Errorf("solver: invalid option: %w", prism.ErrConfiguration)

	// ErrNotAssembled indicates Solve on a solver that New did not build.
	ErrNotAssembled = fmt.Errorf("solver: not assembled: %w", prism.ErrPrecondition)

	// ErrBusy indicates Solve re-entered while iterating.
	ErrBusy = errors.New("solver: solve already in progress")
)

func inputsErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInputs)
}
