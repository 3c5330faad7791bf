// SPDX-License-Identifier: MIT
package system

import (
	"fmt"

	"github.com/katalvlaran/prism"
)

var (
	// ErrUnknownType indicates a site type that was not declared in New.
	ErrUnknownType = fmt.Errorf("system: unknown site type: %w", prism.ErrConfiguration)

	// ErrBadTypes indicates an empty, blank or duplicated type list.
	ErrBadTypes = fmt.Errorf("system: invalid site types: %w", prism.ErrConfiguration)

	// ErrPairUnset indicates a pair lookup that has no value.
	ErrPairUnset = fmt.Errorf("system: pair unset: %w", prism.ErrConfiguration)

	// ErrBadValue indicates a non-positive density, diameter or kT.
	ErrBadValue = fmt.Errorf("system: invalid value: %w", prism.ErrConfiguration)

	// ErrIncomplete indicates Assemble on a system with missing parts.
	ErrIncomplete = fmt.Errorf("system: incomplete: %w", prism.ErrConfiguration)
)
