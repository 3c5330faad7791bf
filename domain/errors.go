// SPDX-License-Identifier: MIT
package domain

import (
	"fmt"

	"github.com/katalvlaran/prism"
)

var (
	// ErrBadGrid indicates a non-positive spacing or a grid shorter than two points.
	ErrBadGrid = fmt.Errorf("domain: invalid grid parameters: %w", prism.ErrConfiguration)

	// ErrLengthMismatch indicates a sequence whose length differs from the grid length.
	ErrLengthMismatch = fmt.Errorf("domain: sequence length mismatch: %w", prism.ErrConfiguration)

	// ErrWrongSpace indicates an Array tagged with the wrong space for the requested transform.
	ErrWrongSpace = fmt.Errorf("domain: array is in the wrong space: %w", prism.ErrConfiguration)
)
