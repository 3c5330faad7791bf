// SPDX-License-Identifier: MIT
package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prism/closure"
	"github.com/katalvlaran/prism/domain"
	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/omega"
	"github.com/katalvlaran/prism/potential"
	"github.com/katalvlaran/prism/solver"
)

// DefaultDiameter is the site diameter of a type until SetDiameter.
const DefaultDiameter = 1.0

// System describes a PRISM problem prior to assembly.
type System struct {
	types []string
	index map[string]int
	kT    float64

	domain     *domain.Domain
	density    []float64
	hasDensity []bool
	diameter   []float64

	Closure   *PairTable[closure.Closure]
	Potential *PairTable[potential.Potential]
	Omega     *PairTable[omega.Omega]

	logger logrus.FieldLogger
}

// New declares the site types (distinct, non-blank) and kT > 0.
func New(types []string, kT float64) (*System, error) {
	index, err := indexTypes(types)
	if err != nil {
		return nil, err
	}
	if !(kT > 0) || math.IsInf(kT, 0) {
		return nil, fmt.Errorf("kT %g: %w", kT, ErrBadValue)
	}
	s := &System{
		types:      append([]string(nil), types...),
		index:      index,
		kT:         kT,
		density:    make([]float64, len(types)),
		hasDensity: make([]bool, len(types)),
		diameter:   make([]float64, len(types)),
		logger:     logrus.StandardLogger(),
	}
	for i := range s.diameter {
		s.diameter[i] = DefaultDiameter
	}
	s.Closure, _ = NewPairTable[closure.Closure](types)
	s.Potential, _ = NewPairTable[potential.Potential](types)
	s.Omega, _ = NewPairTable[omega.Omega](types)

	return s, nil
}

// Types returns the site types in declaration order.
func (s *System) Types() []string { return append([]string(nil), s.types...) }

// Rank returns the number of site types.
func (s *System) Rank() int { return len(s.types) }

// KT returns the thermal energy.
func (s *System) KT() float64 { return s.kT }

// SetLogger replaces the logrus standard logger used by Assemble.
func (s *System) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		s.logger = l
	}
}

// SetDomain sets the solution grid.
func (s *System) SetDomain(d *domain.Domain) { s.domain = d }

// Domain returns the solution grid, nil when unset.
func (s *System) Domain() *domain.Domain { return s.domain }

func (s *System) typeIndex(t string) (int, error) {
	i, ok := s.index[t]
	if !ok {
		return 0, fmt.Errorf("%q: %w", t, ErrUnknownType)
	}

	return i, nil
}

// SetDensity sets the number density of type t (> 0).
func (s *System) SetDensity(t string, rho float64) error {
	i, err := s.typeIndex(t)
	if err != nil {
		return err
	}
	if !(rho > 0) || math.IsInf(rho, 0) {
		return fmt.Errorf("density of %s = %g: %w", t, rho, ErrBadValue)
	}
	s.density[i] = rho
	s.hasDensity[i] = true

	return nil
}

// Density returns the number density of type t.
func (s *System) Density(t string) (float64, error) {
	i, err := s.typeIndex(t)
	if err != nil {
		return 0, err
	}
	if !s.hasDensity[i] {
		return 0, fmt.Errorf("density of %s unset: %w", t, ErrIncomplete)
	}

	return s.density[i], nil
}

// SetDiameter sets the site diameter of type t (> 0).
func (s *System) SetDiameter(t string, d float64) error {
	i, err := s.typeIndex(t)
	if err != nil {
		return err
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("diameter of %s = %g: %w", t, d, ErrBadValue)
	}
	s.diameter[i] = d

	return nil
}

// Diameter returns the site diameter of type t.
func (s *System) Diameter(t string) (float64, error) {
	i, err := s.typeIndex(t)
	if err != nil {
		return 0, err
	}

	return s.diameter[i], nil
}

// ContactDistance returns σ_ab = (d_a + d_b) / 2.
func (s *System) ContactDistance(a, b string) (float64, error) {
	da, err := s.Diameter(a)
	if err != nil {
		return 0, err
	}
	db, err := s.Diameter(b)
	if err != nil {
		return 0, err
	}

	return 0.5 * (da + db), nil
}

func (s *System) checkDensities() error {
	var missing []string
	for i, ok := range s.hasDensity {
		if !ok {
			missing = append(missing, s.types[i])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("density unset for %s: %w", strings.Join(missing, ", "), ErrIncomplete)
	}

	return nil
}

// SiteDensity returns ρ^site with ρ_α on the diagonal and ρ_α + ρ_β off it.
func (s *System) SiteDensity() (*matrix.Dense, error) {
	if err := s.checkDensities(); err != nil {
		return nil, err
	}
	n := len(s.types)
	m, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := s.density[i] + s.density[j]
			if i == j {
				v = s.density[i]
			}
			_ = m.Set(i, j, v)
		}
	}

	return m, nil
}

// PairDensity returns ρ^pair with entries ρ_α·ρ_β.
func (s *System) PairDensity() (*matrix.Dense, error) {
	if err := s.checkDensities(); err != nil {
		return nil, err
	}
	n := len(s.types)
	m, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, s.density[i]*s.density[j])
		}
	}

	return m, nil
}

// TotalDensity returns Σ ρ_α.
func (s *System) TotalDensity() (float64, error) {
	if err := s.checkDensities(); err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range s.density {
		total += v
	}

	return total, nil
}

// Solver assembles the system and returns an Assembled PRISM solver. Snap
// warnings are logged, not returned; use Assemble to inspect them.
func (s *System) Solver(opts ...solver.Option) (*solver.PRISM, error) {
	a, err := s.Assemble()
	if err != nil {
		return nil, err
	}
	opts = append([]solver.Option{solver.WithLogger(s.logger)}, opts...)

	return solver.New(a.Inputs, opts...)
}
