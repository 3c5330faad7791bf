// SPDX-License-Identifier: MIT
package config

import (
	"sort"
	"strings"
)

// sections is the format-neutral form of a file: section → key → raw value.
type sections map[string]map[string]string

const (
	potentialPrefix = "potential."
	omegaPrefix     = "omega."
)

// decode fills a Config from parsed sections.
// Stage 1: scalar sections ([system], [domain], [solver]).
// Stage 2: per-type maps ([density], [diameter], [closure]).
// Stage 3: provider specs ([potential.*], [omega.*]).
func decode(secs sections) (*Config, error) {
	c := newConfig()
	names := make([]string, 0, len(secs))
	for name := range secs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		keys := secs[name]
		var err error
		switch {
		case name == "system":
			err = c.decodeSystem(keys)
		case name == "domain":
			err = c.decodeDomain(keys)
		case name == "solver":
			err = c.decodeSolver(keys)
		case name == "density":
			err = decodeFloats(name, keys, c.Density)
		case name == "diameter":
			err = decodeFloats(name, keys, c.Diameter)
		case name == "closure":
			for k, v := range keys {
				c.Closure[k] = strings.TrimSpace(v)
			}
		case strings.HasPrefix(name, potentialPrefix):
			err = decodeProvider(name, strings.TrimPrefix(name, potentialPrefix), keys, c.Potential)
		case strings.HasPrefix(name, omegaPrefix):
			err = decodeProvider(name, strings.TrimPrefix(name, omegaPrefix), keys, c.Omega)
		default:
			err = invalidf("unknown section [%s]", name)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) decodeSystem(keys map[string]string) error {
	for k, v := range keys {
		switch k {
		case "types":
			c.Types = splitList(v)
		case "kT", "kt":
			kT, err := parseFloat("system", k, v)
			if err != nil {
				return err
			}
			c.KT = kT
		default:
			return invalidf("[system] unknown key %q", k)
		}
	}

	return nil
}

func (c *Config) decodeDomain(keys map[string]string) error {
	for k, v := range keys {
		var err error
		switch k {
		case "dr":
			c.Dr, err = parseFloat("domain", k, v)
		case "length":
			c.Length, err = parseInt("domain", k, v)
		default:
			err = invalidf("[domain] unknown key %q", k)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) decodeSolver(keys map[string]string) error {
	s := &c.Solver
	for k, v := range keys {
		var err error
		switch k {
		case "method":
			s.Method = strings.TrimSpace(v)
		case "tolerance":
			s.Tolerance, err = parseFloat("solver", k, v)
		case "max_iterations":
			s.MaxIterations, err = parseInt("solver", k, v)
		case "krylov_size":
			s.KrylovSize, err = parseInt("solver", k, v)
		case "krylov_restarts":
			s.KrylovRestarts, err = parseInt("solver", k, v)
		case "damping":
			s.Damping, err = parseFloat("solver", k, v)
		case "verbose":
			s.Verbose, err = parseBool("solver", k, v)
		default:
			err = invalidf("[solver] unknown key %q", k)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func decodeFloats(section string, keys map[string]string, dst map[string]float64) error {
	for k, v := range keys {
		f, err := parseFloat(section, k, v)
		if err != nil {
			return err
		}
		dst[k] = f
	}

	return nil
}

func decodeProvider(section, key string, keys map[string]string, dst map[string]Provider) error {
	if key != DefaultKey {
		if _, _, err := splitPair(key); err != nil {
			return err
		}
	}
	entry := Provider{Params: make(map[string]string, len(keys))}
	for k, v := range keys {
		if k == "type" {
			entry.Type = strings.TrimSpace(v)
			continue
		}
		entry.Params[k] = v
	}
	if entry.Type == "" {
		return invalidf("[%s] missing type", section)
	}
	dst[key] = entry

	return nil
}
