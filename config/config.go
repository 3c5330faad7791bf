// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/prism"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .ini or .toml.
	ErrUnsupportedFormat = fmt.Errorf("config: unsupported format: %w", prism.ErrConfiguration)

	// ErrInvalid indicates a missing, malformed or unknown entry.
	ErrInvalid = fmt.Errorf("config: invalid entry: %w", prism.ErrConfiguration)
)

// DefaultKey names the entry applied to every unset pair.
const DefaultKey = "default"

// Provider is a typed provider entry: `type` plus its parameters as raw strings.
type Provider struct {
	Type   string
	Params map[string]string
}

// Solver holds the [solver] section. Zero values mean "solver default".
type Solver struct {
	Method         string
	Tolerance      float64
	MaxIterations  int
	KrylovSize     int
	KrylovRestarts int
	Damping        float64
	Verbose        bool
}

// Config is a parsed problem description.
type Config struct {
	Types  []string
	KT     float64
	Dr     float64
	Length int

	Density  map[string]float64
	Diameter map[string]float64

	// keyed by "A-B" or DefaultKey
	Closure   map[string]string
	Potential map[string]Provider
	Omega     map[string]Provider

	Solver Solver
}

func newConfig() *Config {
	return &Config{
		KT:        1.0,
		Density:   make(map[string]float64),
		Diameter:  make(map[string]float64),
		Closure:   make(map[string]string),
		Potential: make(map[string]Provider),
		Omega:     make(map[string]Provider),
	}
}

// Load reads path, choosing the parser by extension (.ini, .toml).
func Load(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg", ".conf":
		return LoadINI(path)
	case ".toml":
		return LoadTOML(path)
	}

	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}

// splitPair parses "A-B" into its two labels.
func splitPair(key string) (string, string, error) {
	a, b, ok := strings.Cut(key, "-")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" {
		return "", "", invalidf("pair key %q, want A-B", key)
	}

	return a, b, nil
}

func parseFloat(section, key, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalidf("[%s] %s = %q is not a number", section, key, raw)
	}

	return v, nil
}

func parseInt(section, key, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil {
		// TOML floats such as 10.0 are accepted when integral
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, invalidf("[%s] %s = %q is not an integer", section, key, raw)
		}
		v = int(f)
	}

	return v, nil
}

func parseBool(section, key, raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, invalidf("[%s] %s = %q is not a boolean", section, key, raw)
	}

	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}

// normalize lowercases a type name and drops separators.
func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
}

func (c *Config) validate() error {
	if len(c.Types) == 0 {
		return invalidf("[system] types is empty")
	}
	for _, t := range c.Types {
		if strings.Contains(t, "-") {
			return invalidf("[system] type %q contains '-', which separates pair keys", t)
		}
	}
	if !(c.Dr > 0) {
		return invalidf("[domain] dr must be positive")
	}
	if c.Length < 2 {
		return invalidf("[domain] length must be at least 2")
	}

	return nil
}
