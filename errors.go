// SPDX-License-Identifier: MIT
// Package prism: unified error taxonomy.
//
// Every package of the module returns its own sentinels (prefixed with the
// package name) that wrap exactly one of the root categories below, so callers
// can match either the precise condition or its category via errors.Is:
//
//	errors.Is(err, domain.ErrLengthMismatch) // precise
//	errors.Is(err, prism.ErrConfiguration)   // category
//
// Failures of a solve attempt are reported as *NonConvergenceError, which
// unwraps to the underlying cause (singular matrix, non-finite residual,
// exhausted budget, cancelled context).

package prism

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks malformed or inconsistent input: missing pair
	// labels, unset required parameters, mismatched grid lengths.
	ErrConfiguration = errors.New("prism: configuration error")

	// ErrPrecondition marks a provider evaluated before its required state was
	// resolved (e.g. a potential whose contact distance is still unset).
	ErrPrecondition = errors.New("prism: precondition violated")

	// ErrSingularMatrix marks a per-grid-point block that could not be inverted.
	ErrSingularMatrix = errors.New("prism: singular matrix")
)

// NonConvergenceError is returned when a solve attempt fails. Partial results
// are never returned alongside it.
type NonConvergenceError struct {
	Iterations   int     // completed outer iterations
	ResidualNorm float64 // max-norm of the last accepted residual
	Cause        error   // underlying reason, may be nil
}

// Error implements the error interface.
func (e *NonConvergenceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("prism: no convergence after %d iterations (residual %.3e)", e.Iterations, e.ResidualNorm)
	}

	return fmt.Sprintf("prism: no convergence after %d iterations (residual %.3e): %v", e.Iterations, e.ResidualNorm, e.Cause)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *NonConvergenceError) Unwrap() error {
	return e.Cause
}
