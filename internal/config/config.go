// Package config implements nova's two-tier configuration: a global
// per-user INI file and a local per-directory one, merged with
// command-line overrides into a single effective configuration.
package config

import (
	"fmt"
	"sort"
)

// CoreSection is the section holding the keys nova itself reads.
const CoreSection = "core"

// Keys recognized in the core section.
const (
	KeyRemote     = "remote"
	KeyToken      = "token"
	KeyCollection = "collection"
	KeyName       = "name"
)

// KeyError reports a key (or a whole section) missing from a
// configuration.
type KeyError struct {
	Section string
	Key     string
}

func (e *KeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("configuration section %q not found", e.Section)
	}
	return fmt.Sprintf("configuration key %q not found in section %q", e.Key, e.Section)
}

// Config maps section names to key/value pairs. Sections and keys are
// case-sensitive. A core section always exists.
type Config struct {
	sections map[string]map[string]string
}

// New returns an empty Config with an empty core section.
func New() *Config {
	return &Config{
		sections: map[string]map[string]string{
			CoreSection: {},
		},
	}
}

// Get returns the value for key in section, or a *KeyError if the
// section or key is absent.
func (c *Config) Get(section, key string) (string, error) {
	sec, ok := c.sections[section]
	if !ok {
		return "", &KeyError{Section: section}
	}
	v, ok := sec[key]
	if !ok {
		return "", &KeyError{Section: section, Key: key}
	}
	return v, nil
}

// Set stores value under section/key, creating the section if needed.
func (c *Config) Set(section, key, value string) {
	sec, ok := c.sections[section]
	if !ok {
		sec = map[string]string{}
		c.sections[section] = sec
	}
	sec[key] = value
}

// Core returns the core section map.
func (c *Config) Core() map[string]string {
	return c.sections[CoreSection]
}

// Sections returns section names in sorted order.
func (c *Config) Sections() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the keys of a section in sorted order. A missing
// section yields nil.
func (c *Config) Keys(section string) []string {
	sec, ok := c.sections[section]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(sec))
	for k := range sec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
