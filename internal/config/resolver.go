package config

import "github.com/spf13/afero"

// Effective is the merged configuration for one command invocation.
// It is resolved once, validated, and then passed by value; commands
// never mutate it.
type Effective struct {
	Remote     string
	Token      string
	Collection string
	Name       string
}

// overrideKeys are the core keys command-line flags may override.
var overrideKeys = []string{KeyRemote, KeyToken, KeyCollection, KeyName}

// Resolver merges the global file, the local file of a working
// directory, and command-line overrides.
type Resolver struct {
	fs      afero.Fs
	workDir string
}

// NewResolver returns a Resolver for the given filesystem and working
// directory.
func NewResolver(fs afero.Fs, workDir string) *Resolver {
	return &Resolver{fs: fs, workDir: workDir}
}

// Resolve loads both config tiers, merges their core sections with
// overrides (global, then local, then overrides, later wins per key)
// and validates that remote and token are set. Absence of either file
// is not an error; a missing required key after the merge is.
func (r *Resolver) Resolve(overrides map[string]string) (Effective, error) {
	globalPath, err := GlobalPath()
	if err != nil {
		return Effective{}, err
	}
	global, err := Load(r.fs, globalPath)
	if err != nil {
		return Effective{}, err
	}
	local, err := Load(r.fs, LocalPath(r.workDir))
	if err != nil {
		return Effective{}, err
	}

	core := mergeCore(global.Core(), local.Core(), overrides)

	if core[KeyRemote] == "" {
		return Effective{}, &KeyError{Section: CoreSection, Key: KeyRemote}
	}
	if core[KeyToken] == "" {
		return Effective{}, &KeyError{Section: CoreSection, Key: KeyToken}
	}

	return Effective{
		Remote:     core[KeyRemote],
		Token:      core[KeyToken],
		Collection: core[KeyCollection],
		Name:       core[KeyName],
	}, nil
}

// mergeCore overlays local on global, then applies recognized
// override keys that carry a value.
func mergeCore(global, local, overrides map[string]string) map[string]string {
	core := map[string]string{}
	for k, v := range global {
		core[k] = v
	}
	for k, v := range local {
		core[k] = v
	}
	for _, k := range overrideKeys {
		if v, ok := overrides[k]; ok && v != "" {
			core[k] = v
		}
	}
	return core
}
