// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/prism/closure"
	"github.com/katalvlaran/prism/domain"
	"github.com/katalvlaran/prism/omega"
	"github.com/katalvlaran/prism/potential"
	"github.com/katalvlaran/prism/solver"
	"github.com/katalvlaran/prism/system"
)

// System builds a fully populated system.System.
// Stage 1: validation, types, kT and the domain.
// Stage 2: densities and diameters.
// Stage 3: closures, potentials and omegas; explicit pairs first, then the
// default entry fills whatever is left.
// Completeness is not checked here; Assemble reports missing parts.
func (c *Config) System() (*system.System, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	sys, err := system.New(c.Types, c.KT)
	if err != nil {
		return nil, err
	}
	dom, err := domain.New(c.Dr, c.Length)
	if err != nil {
		return nil, err
	}
	sys.SetDomain(dom)

	for _, t := range sortedKeys(c.Density) {
		if err := sys.SetDensity(t, c.Density[t]); err != nil {
			return nil, err
		}
	}
	for _, t := range sortedKeys(c.Diameter) {
		if err := sys.SetDiameter(t, c.Diameter[t]); err != nil {
			return nil, err
		}
	}

	if err := c.fillClosures(sys); err != nil {
		return nil, err
	}
	if err := c.fillPotentials(sys); err != nil {
		return nil, err
	}
	if err := c.fillOmegas(sys); err != nil {
		return nil, err
	}

	return sys, nil
}

func (c *Config) fillClosures(sys *system.System) error {
	for _, key := range sortedKeys(c.Closure) {
		cl, err := closure.ByName(c.Closure[key])
		if err != nil {
			return fmt.Errorf("[closure] %s: %w", key, err)
		}
		if key == DefaultKey {
			continue
		}
		a, b, err := splitPair(key)
		if err != nil {
			return err
		}
		if err := sys.Closure.Set(a, b, cl); err != nil {
			return err
		}
	}
	if name, ok := c.Closure[DefaultKey]; ok {
		cl, _ := closure.ByName(name)
		sys.Closure.FillUnset(cl)
	}

	return nil
}

func (c *Config) fillPotentials(sys *system.System) error {
	for _, key := range sortedKeys(c.Potential) {
		if key == DefaultKey {
			continue
		}
		a, b, err := splitPair(key)
		if err != nil {
			return fmt.Errorf("[potential.%s]: %w", key, err)
		}
		pot, err := NewPotential(c.Potential[key])
		if err != nil {
			return fmt.Errorf("[potential.%s]: %w", key, err)
		}
		if err := sys.Potential.Set(a, b, pot); err != nil {
			return err
		}
	}
	if entry, ok := c.Potential[DefaultKey]; ok {
		pot, err := NewPotential(entry)
		if err != nil {
			return fmt.Errorf("[potential.default]: %w", err)
		}
		sys.Potential.FillUnset(pot)
	}

	return nil
}

func (c *Config) fillOmegas(sys *system.System) error {
	for _, key := range sortedKeys(c.Omega) {
		if key == DefaultKey {
			continue
		}
		a, b, err := splitPair(key)
		if err != nil {
			return fmt.Errorf("[omega.%s]: %w", key, err)
		}
		om, err := NewOmega(c.Omega[key], a, b)
		if err != nil {
			return fmt.Errorf("[omega.%s]: %w", key, err)
		}
		if err := sys.Omega.Set(a, b, om); err != nil {
			return err
		}
	}
	entry, ok := c.Omega[DefaultKey]
	if !ok {
		return nil
	}
	// copolymer omegas depend on the pair labels, so build one per pair
	for _, pr := range sys.Omega.Unset() {
		om, err := NewOmega(entry, pr.A, pr.B)
		if err != nil {
			return fmt.Errorf("[omega.default] %s: %w", pr, err)
		}
		if err := sys.Omega.Set(pr.A, pr.B, om); err != nil {
			return err
		}
	}

	return nil
}

// SolverOptions translates the [solver] section. Unset fields are omitted so
// the solver defaults apply.
func (c *Config) SolverOptions() ([]solver.Option, error) {
	s := c.Solver
	var opts []solver.Option
	if s.Method != "" {
		m, err := solver.ParseMethod(s.Method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, solver.WithMethod(m))
	}
	if s.Tolerance != 0 {
		opts = append(opts, solver.WithTolerance(s.Tolerance))
	}
	if s.MaxIterations != 0 {
		opts = append(opts, solver.WithMaxIterations(s.MaxIterations))
	}
	if s.KrylovSize != 0 || s.KrylovRestarts != 0 {
		size, restarts := s.KrylovSize, s.KrylovRestarts
		if size == 0 {
			size = defaultKrylovSize
		}
		if restarts == 0 {
			restarts = defaultKrylovRestarts
		}
		opts = append(opts, solver.WithKrylov(size, restarts))
	}
	if s.Damping != 0 {
		opts = append(opts, solver.WithDamping(s.Damping))
	}
	if s.Verbose {
		opts = append(opts, solver.WithVerbose(true))
	}

	return opts, nil
}

const (
	defaultKrylovSize     = 40
	defaultKrylovRestarts = 3
)

// NewPotential builds a potential from its entry. Recognised types (case and
// separators ignored): HardSphere, SquareWell, Exponential, LennardJones,
// WCA, HardCoreLJ, Yukawa. Every type accepts sigma and high_value;
// LennardJones also takes cutoff and shift.
func NewPotential(entry Provider) (potential.Potential, error) {
	p := newParamReader(entry)
	var opts []potential.Option
	if p.has("sigma") {
		opts = append(opts, potential.WithSigma(p.float("sigma")))
	}
	if p.has("high_value") {
		opts = append(opts, potential.WithHighValue(p.float("high_value")))
	}

	var (
		pot potential.Potential
		err error
	)
	switch normalize(entry.Type) {
	case "hardsphere", "hs":
		if err = p.done(); err == nil {
			pot, err = potential.NewHardSphere(opts...)
		}
	case "squarewell", "sw":
		eps, alpha := p.float("epsilon"), p.float("alpha")
		if err = p.done(); err == nil {
			pot, err = potential.NewSquareWell(eps, alpha, opts...)
		}
	case "exponential", "exp":
		eps, alpha := p.float("epsilon"), p.float("alpha")
		if err = p.done(); err == nil {
			pot, err = potential.NewExponential(eps, alpha, opts...)
		}
	case "yukawa":
		eps, kappa := p.float("epsilon"), p.float("kappa")
		if err = p.done(); err == nil {
			pot, err = potential.NewYukawa(eps, kappa, opts...)
		}
	case "lennardjones", "lj":
		eps := p.float("epsilon")
		if p.has("cutoff") {
			opts = append(opts, potential.WithCutoff(p.float("cutoff")))
		}
		if p.has("shift") && p.flag("shift") {
			opts = append(opts, potential.WithShift())
		}
		if err = p.done(); err == nil {
			pot, err = potential.NewLennardJones(eps, opts...)
		}
	case "wca", "weekschandlerandersen":
		eps := p.float("epsilon")
		if err = p.done(); err == nil {
			pot, err = potential.NewWeeksChandlerAndersen(eps, opts...)
		}
	case "hardcorelj", "hardcorelennardjones":
		eps := p.float("epsilon")
		if err = p.done(); err == nil {
			pot, err = potential.NewHardCoreLennardJones(eps, opts...)
		}
	default:
		return nil, invalidf("unknown potential type %q", entry.Type)
	}
	if err != nil {
		return nil, err
	}

	return pot, nil
}

// NewOmega builds the intramolecular correlation of the pair (a, b).
// Recognised types: SingleSite, NoIntra, Gaussian and GaussianRing (sigma,
// length), FreelyJointedChain (length, l) and FreelyJointedCopolymer
// (sequence, l). A sequence is a comma-separated label list, or a plain
// string of one-letter labels.
func NewOmega(entry Provider, a, b string) (omega.Omega, error) {
	p := newParamReader(entry)
	var (
		om  omega.Omega
		err error
	)
	switch normalize(entry.Type) {
	case "singlesite":
		if err = p.done(); err == nil {
			om = omega.SingleSite{}
		}
	case "nointra", "none":
		if err = p.done(); err == nil {
			om = omega.NoIntra{}
		}
	case "gaussian":
		sigma, n := p.float("sigma"), p.integer("length")
		if err = p.done(); err == nil {
			om, err = omega.NewGaussian(sigma, n)
		}
	case "gaussianring":
		sigma, n := p.float("sigma"), p.integer("length")
		if err = p.done(); err == nil {
			om, err = omega.NewGaussianRing(sigma, n)
		}
	case "freelyjointedchain", "fjc":
		n, l := p.integer("length"), p.float("l")
		if err = p.done(); err == nil {
			om, err = omega.NewFreelyJointedChain(n, l)
		}
	case "freelyjointedcopolymer", "fjcopolymer":
		seq, l := parseSequence(p.str("sequence")), p.float("l")
		if err = p.done(); err == nil {
			om, err = omega.NewFreelyJointedCopolymer(seq, l, a, b)
		}
	default:
		return nil, invalidf("unknown omega type %q", entry.Type)
	}
	if err != nil {
		return nil, err
	}

	return om, nil
}

func parseSequence(raw string) []string {
	if strings.Contains(raw, ",") {
		return splitList(raw)
	}
	var out []string
	for _, r := range strings.TrimSpace(raw) {
		out = append(out, string(r))
	}

	return out
}

// paramReader consumes provider parameters, records the first error and reports
// keys nobody asked for.
type paramReader struct {
	entry Provider
	used  map[string]bool
	err   error
}

func newParamReader(entry Provider) *paramReader {
	return &paramReader{entry: entry, used: make(map[string]bool)}
}

func (p *paramReader) has(key string) bool {
	_, ok := p.entry.Params[key]
	return ok
}

func (p *paramReader) str(key string) string {
	p.used[key] = true
	v, ok := p.entry.Params[key]
	if !ok && p.err == nil {
		p.err = invalidf("%s: missing %s", p.entry.Type, key)
	}

	return v
}

func (p *paramReader) float(key string) float64 {
	raw := p.str(key)
	if p.err != nil {
		return 0
	}
	v, err := parseFloat(p.entry.Type, key, raw)
	if err != nil {
		p.err = err
	}

	return v
}

func (p *paramReader) integer(key string) int {
	raw := p.str(key)
	if p.err != nil {
		return 0
	}
	v, err := parseInt(p.entry.Type, key, raw)
	if err != nil {
		p.err = err
	}

	return v
}

func (p *paramReader) flag(key string) bool {
	raw := p.str(key)
	if p.err != nil {
		return false
	}
	v, err := parseBool(p.entry.Type, key, raw)
	if err != nil {
		p.err = err
	}

	return v
}

func (p *paramReader) done() error {
	if p.err != nil {
		return p.err
	}
	var extra []string
	for k := range p.entry.Params {
		if !p.used[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return invalidf("%s: unknown parameters %s", p.entry.Type, strings.Join(extra, ", "))
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
