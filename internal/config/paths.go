package config

import (
	"os"
	"path/filepath"
)

// LocalDir is the hidden directory holding per-directory state.
const LocalDir = ".nova"

// LocalConfigName is the config file name inside LocalDir.
const LocalConfigName = "config"

// LocalConfigPath is the local config file path relative to an
// initialized directory, with forward slashes. The archiver excludes
// this prefix from every packed stream.
const LocalConfigPath = LocalDir + "/" + LocalConfigName

// GlobalDir returns the per-user configuration directory.
// NOVA_CONFIG_DIR overrides the default of ~/.config/nova.
func GlobalDir() (string, error) {
	if dir := os.Getenv("NOVA_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nova"), nil
}

// GlobalPath returns the global config file path.
func GlobalPath() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LocalConfigName), nil
}

// LocalPath returns the local config file path for dir.
func LocalPath(dir string) string {
	return filepath.Join(dir, LocalDir, LocalConfigName)
}
