// SPDX-License-Identifier: MIT
package solver

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/rootfind"
)

// Method selects the nonlinear root finder.
type Method int

const (
	// NewtonKrylov is the default Jacobian-free Newton–Krylov method.
	NewtonKrylov Method = iota
	// Picard is damped fixed-point mixing.
	Picard
)

func (m Method) String() string {
	switch m {
	case NewtonKrylov:
		return "newton-krylov"
	case Picard:
		return "picard"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "newton-krylov" (or "newton", "jfnk") and "picard".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newton-krylov", "newtonkrylov", "newton", "jfnk", "":
		return NewtonKrylov, nil
	case "picard":
		return Picard, nil
	}

	return 0, fmt.Errorf("method %q: %w", s, ErrInvalidOption)
}

// settings collects solver configuration; New stores defaults and Solve
// applies per-call overrides on a copy.
type settings struct {
	method  Method
	root    rootfind.Options
	guess   *matrix.Array
	verbose bool
	logger  logrus.FieldLogger
}

func defaultSettings() settings {
	return settings{
		method: NewtonKrylov,
		root:   rootfind.DefaultOptions(),
		logger: logrus.StandardLogger(),
	}
}

// Option configures New or a single Solve call.
type Option func(*settings)

// WithInitialGuess starts the iteration from Ĉ(k) = guess (Fourier space).
// The default guess is Ĉ = 0.
func WithInitialGuess(guess *matrix.Array) Option {
	return func(s *settings) { s.guess = guess }
}

// WithTolerance sets the max-norm convergence threshold (default 1e-7).
func WithTolerance(tol float64) Option {
	return func(s *settings) { s.root.Tolerance = tol }
}

// WithMaxIterations bounds the outer iterations (default 100).
func WithMaxIterations(n int) Option {
	return func(s *settings) { s.root.MaxIterations = n }
}

// WithMethod selects the root finder.
func WithMethod(m Method) Option {
	return func(s *settings) { s.method = m }
}

// WithKrylov sets the GMRES subspace size and restart count.
func WithKrylov(size, restarts int) Option {
	return func(s *settings) {
		s.root.KrylovSize = size
		s.root.KrylovRestarts = restarts
	}
}

// WithDamping sets the initial Picard mixing factor.
func WithDamping(lambda float64) Option {
	return func(s *settings) {
		s.root.Damping = lambda
		if lambda > s.root.MaxDamping {
			s.root.MaxDamping = lambda
		}
		if lambda < s.root.MinDamping {
			s.root.MinDamping = lambda
		}
	}
}

// WithVerbose logs every accepted iterate at Info instead of Debug.
func WithVerbose(v bool) Option {
	return func(s *settings) { s.verbose = v }
}

// WithLogger replaces the default logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func (s settings) validate() error {
	if !(s.root.Tolerance > 0) {
		return fmt.Errorf("tolerance %g: %w", s.root.Tolerance, ErrInvalidOption)
	}
	if s.root.MaxIterations < 1 {
		return fmt.Errorf("max iterations %d: %w", s.root.MaxIterations, ErrInvalidOption)
	}
	if s.root.KrylovSize < 1 || s.root.KrylovRestarts < 1 {
		return fmt.Errorf("krylov %d×%d: %w", s.root.KrylovSize, s.root.KrylovRestarts, ErrInvalidOption)
	}
	if !(s.root.Damping > 0) {
		return fmt.Errorf("damping %g: %w", s.root.Damping, ErrInvalidOption)
	}
	if s.method != NewtonKrylov && s.method != Picard {
		return fmt.Errorf("%s: %w", s.method, ErrInvalidOption)
	}

	return nil
}
