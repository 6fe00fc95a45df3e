package config

import (
	"gopkg.in/yaml.v3"
)

// NoneSentinel is the literal that marks a string option as explicitly absent.
const NoneSentinel = "None"

// Setting is a string option that may be explicitly switched off with "None".
// The sentinel is recognized once, where the value is parsed, and never
// travels further as a string.
type Setting struct {
	Value  string
	Absent bool
}

// ParseSetting converts raw user input into a Setting.
func ParseSetting(s string) Setting {
	if s == NoneSentinel {
		return Setting{Absent: true}
	}
	return Setting{Value: s}
}

// String renders the setting the way a user would type it.
func (s Setting) String() string {
	if s.Absent {
		return NoneSentinel
	}
	return s.Value
}

// IsZero reports whether the setting was never given.
func (s Setting) IsZero() bool {
	return !s.Absent && s.Value == ""
}

// UnmarshalYAML decodes a scalar, treating "None" as absent.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = ParseSetting(raw)
	return nil
}
