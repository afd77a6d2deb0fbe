package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FormatConfig holds the [format] section of kakapo.toml.
type FormatConfig struct {
	MaxLineLength int `toml:"max_line_length"`
	IndentWidth   int `toml:"indent_width"`
}

// Manifest describes a project's kakapo.toml.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Format FormatConfig `toml:"format"`
}

// LoadManifest parses a kakapo.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &m, nil
}

// LoadManifestFor finds the manifest governing startDir and parses it.
// Returns (nil, false, nil) when no manifest exists anywhere above startDir.
func LoadManifestFor(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindKakapoToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}
