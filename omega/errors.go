// SPDX-License-Identifier: MIT
package omega

import (
	"fmt"

	"github.com/katalvlaran/prism"
)

var (
	// ErrBadParameter indicates a non-positive length scale or chain length.
	ErrBadParameter = fmt.Errorf("omega: invalid parameter: %w", prism.ErrConfiguration)

	// ErrLabelNotInSequence indicates a copolymer pair label absent from the sequence.
	ErrLabelNotInSequence = fmt.Errorf("omega: pair label not in sequence: %w", prism.ErrConfiguration)

	// ErrLengthMismatch indicates FromArray values that do not match the grid.
	ErrLengthMismatch = fmt.Errorf("omega: length mismatch: %w", prism.ErrConfiguration)
)
