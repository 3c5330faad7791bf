// SPDX-License-Identifier: MIT
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadINI parses an INI source: a file name or the file contents as []byte.
func LoadINI(source interface{}) (*Config, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("config: %v: %w", err, ErrInvalid)
	}

	secs := make(sections)
	for _, sec := range file.Sections() {
		keys := sec.KeysHash()
		if sec.Name() == ini.DefaultSection {
			if len(keys) > 0 {
				return nil, invalidf("keys outside any section")
			}
			continue
		}
		// parent sections such as [potential] only group children
		if len(keys) == 0 && len(sec.ChildSections()) > 0 {
			continue
		}
		secs[sec.Name()] = keys
	}

	return decode(secs)
}
