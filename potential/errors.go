// SPDX-License-Identifier: MIT
package potential

import (
	"fmt"

	"github.com/katalvlaran/prism"
)

var (
	// ErrSigmaUnset indicates evaluation before the contact distance was resolved.
	ErrSigmaUnset = fmt.Errorf("potential: sigma must be set before evaluating: %w", prism.ErrPrecondition)

	// ErrBadParameter indicates a non-physical constructor argument.
	ErrBadParameter = fmt.Errorf("potential: invalid parameter: %w", prism.ErrConfiguration)
)
