// SPDX-License-Identifier: MIT
package system

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/prism/closure"
	"github.com/katalvlaran/prism/matrix"
	"github.com/katalvlaran/prism/potential"
	"github.com/katalvlaran/prism/solver"
)

// offGridTolerance is the relative snap distance (in units of dr) below which
// a contact distance counts as on-grid.
const offGridTolerance = 1e-9

// SnapWarning records a contact distance that lies outside the represented
// grid, so that snapping moved it by more than half a grid step.
type SnapWarning struct {
	Pair     Pair
	Sigma    float64
	Snapped  float64
	Distance float64
}

func (w SnapWarning) String() string {
	return fmt.Sprintf("%s: sigma %g snapped to %g (moved %g)", w.Pair, w.Sigma, w.Snapped, w.Distance)
}

// Assembly is the evaluated form of a System.
type Assembly struct {
	Inputs solver.Inputs
	// Potentials holds the potentials actually evaluated, with σ resolved and
	// snapped, indexed by matrix.PairIndex.
	Potentials []potential.Potential
	Warnings   []SnapWarning
}

// Assemble validates the system and evaluates Ω and U on the grid.
//
// Stage 1 (Validate): domain set, every density set, every pair has a
// closure, potential and omega; all missing parts are reported together.
// Stage 2 (Resolve): potentials without σ take σ = (d_α + d_β)/2; every σ is
// snapped to the nearest real-space grid point. Moving by more than 1e-9·dr
// logs at Info; by more than dr/2 logs at Warn and adds a SnapWarning.
// Snapping never fails the assembly.
// Stage 3 (Evaluate): ω̂ on the k grid, U on the r grid, densities.
//
// Complexity: O(pairs · cost(evaluate)).
func (s *System) Assemble() (*Assembly, error) {
	if err := s.checkComplete(); err != nil {
		return nil, err
	}
	dom := s.domain
	n := len(s.types)
	m := dom.Length()
	r, k := dom.R(), dom.K()

	omegaArr, _ := matrix.NewArray(m, n, matrix.Fourier)
	potArr, _ := matrix.NewArray(m, n, matrix.Real)
	closures := make([]closure.Closure, matrix.PairCount(n))
	pots := make([]potential.Potential, matrix.PairCount(n))
	var warnings []SnapWarning

	for _, pr := range s.Closure.Pairs() {
		p := matrix.PairIndex(pr.I, pr.J, n)
		closures[p], _ = s.Closure.At(pr.I, pr.J)

		om, _ := s.Omega.At(pr.I, pr.J)
		w, err := om.Calculate(k)
		if err != nil {
			return nil, fmt.Errorf("system: omega %s: %w", pr, err)
		}
		if err := omegaArr.SetChannel(pr.I, pr.J, w); err != nil {
			return nil, fmt.Errorf("system: omega %s: %w", pr, err)
		}

		pot, _ := s.Potential.At(pr.I, pr.J)
		pot, warn := s.resolveContact(pr, pot)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		pots[p] = pot
		u, err := pot.Calculate(r)
		if err != nil {
			return nil, fmt.Errorf("system: potential %s: %w", pr, err)
		}
		if err := potArr.SetChannel(pr.I, pr.J, u); err != nil {
			return nil, fmt.Errorf("system: potential %s: %w", pr, err)
		}
	}

	site, err := s.SiteDensity()
	if err != nil {
		return nil, err
	}
	pair, err := s.PairDensity()
	if err != nil {
		return nil, err
	}

	return &Assembly{
		Inputs: solver.Inputs{
			Domain:      dom,
			Types:       s.Types(),
			Omega:       omegaArr,
			Potential:   potArr,
			Closures:    closures,
			SiteDensity: site,
			PairDensity: pair,
			KT:          s.kT,
		},
		Potentials: pots,
		Warnings:   warnings,
	}, nil
}

func (s *System) checkComplete() error {
	var missing []string
	if s.domain == nil {
		missing = append(missing, "domain")
	}
	var noDensity []string
	for i, ok := range s.hasDensity {
		if !ok {
			noDensity = append(noDensity, s.types[i])
		}
	}
	if len(noDensity) > 0 {
		missing = append(missing, "density unset for "+strings.Join(noDensity, ", "))
	}
	for name, unset := range map[string][]Pair{
		"closure":   s.Closure.Unset(),
		"potential": s.Potential.Unset(),
		"omega":     s.Omega.Unset(),
	} {
		if len(unset) == 0 {
			continue
		}
		names := make([]string, len(unset))
		for i, p := range unset {
			names[i] = p.String()
		}
		missing = append(missing, fmt.Sprintf("%s unset for %s", name, strings.Join(names, ", ")))
	}
	if len(missing) == 0 {
		return nil
	}
	// map iteration order is random; keep messages stable
	sort.Strings(missing)

	return fmt.Errorf("%s: %w", strings.Join(missing, "; "), ErrIncomplete)
}

func (s *System) resolveContact(pr Pair, pot potential.Potential) (potential.Potential, *SnapWarning) {
	sigma, ok := pot.Contact()
	if !ok {
		sigma = 0.5 * (s.diameter[pr.I] + s.diameter[pr.J])
	}
	dr := s.domain.Dr()
	snapped, idx, dist := s.domain.SnapToGrid(sigma)

	var warn *SnapWarning
	if dist > offGridTolerance*dr {
		entry := s.logger.WithFields(logrus.Fields{
			"pair":    pr.String(),
			"sigma":   sigma,
			"snapped": snapped,
			"index":   idx,
		})
		if dist > 0.5*dr {
			entry.Warn("contact distance outside the grid")
			warn = &SnapWarning{Pair: pr, Sigma: sigma, Snapped: snapped, Distance: dist}
		} else {
			entry.Info("contact distance snapped to grid")
		}
	}

	return pot.WithContact(snapped), warn
}
