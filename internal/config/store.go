package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// Load reads an INI config file. A missing file is not an error and
// yields an empty Config; the result always has a core section.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := New()
	for _, sec := range file.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			// Keys outside any [section] header are not part of the format.
			continue
		}
		for _, key := range sec.Keys() {
			cfg.Set(name, key.Name(), key.Value())
		}
	}
	return cfg, nil
}

// Write serializes cfg to path as INI, creating parent directories as
// needed and truncating any existing file. The file is written 0600
// since it may hold the token. Empty sections are not written.
func Write(fs afero.Fs, cfg *Config, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir for %s: %w", path, err)
	}

	file := ini.Empty()
	for _, name := range cfg.Sections() {
		keys := cfg.Keys(name)
		if len(keys) == 0 {
			continue
		}
		sec, err := file.NewSection(name)
		if err != nil {
			return fmt.Errorf("serialize config section %q: %w", name, err)
		}
		for _, k := range keys {
			v, _ := cfg.Get(name, k)
			if _, err := sec.NewKey(k, v); err != nil {
				return fmt.Errorf("serialize config key %q: %w", k, err)
			}
		}
	}

	out, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	if _, err := file.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", path, err)
	}
	return nil
}
