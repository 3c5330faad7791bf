// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
)

// LoadTOML parses a TOML file.
func LoadTOML(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %v: %w", err, ErrInvalid)
	}

	return decodeTree(tree)
}

// ParseTOML parses TOML contents.
func ParseTOML(data []byte) (*Config, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("config: %v: %w", err, ErrInvalid)
	}

	return decodeTree(tree)
}

// decodeTree flattens nested tables one level: [potential.A-B] becomes the
// section "potential.A-B".
func decodeTree(tree *toml.Tree) (*Config, error) {
	secs := make(sections)
	for name, v := range tree.ToMap() {
		table, ok := v.(map[string]interface{})
		if !ok {
			return nil, invalidf("top-level key %q outside any table", name)
		}
		if name == "potential" || name == "omega" {
			for sub, sv := range table {
				st, ok := sv.(map[string]interface{})
				if !ok {
					return nil, invalidf("[%s] key %q must be a table", name, sub)
				}
				keys, err := flatten(name+"."+sub, st)
				if err != nil {
					return nil, err
				}
				secs[name+"."+sub] = keys
			}
			continue
		}
		keys, err := flatten(name, table)
		if err != nil {
			return nil, err
		}
		secs[name] = keys
	}

	return decode(secs)
}

func flatten(section string, table map[string]interface{}) (map[string]string, error) {
	keys := make(map[string]string, len(table))
	for k, v := range table {
		s, err := scalar(v)
		if err != nil {
			return nil, invalidf("[%s] %s: %v", section, k, err)
		}
		keys[k] = s
	}

	return keys, nil
}

// scalar renders a TOML value in the same textual form INI would carry.
func scalar(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case []string:
		return strings.Join(t, ","), nil
	case []interface{}:
		parts := make([]string, len(t))
		for i, e := range t {
			s, err := scalar(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}

	return "", fmt.Errorf("unsupported value %v (%T)", v, v)
}
