// Package config loads the optional project config file for tagcheck.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/nurokhq/tagcheck/model"
)

// DefaultPath is the config file looked up when --config-path is not given.
const DefaultPath = ".tagcheck.toml"

// File is the on-disk config schema.
type File struct {
	Manifest   string `toml:"manifest"`
	ModuleFile string `toml:"module_file"`
	Docs       string `toml:"docs"`
}

type service struct {
	path     string
	explicit bool
}

// Service is the interface for the config file service.
type Service interface {
	Apply(flags model.Flags) (model.Flags, error)
}

// NewService creates a config service for the given path. An empty path
// falls back to [DefaultPath], which is allowed to be absent.
func NewService(path string) Service {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	return &service{path: path, explicit: explicit}
}

// Apply overlays config file values onto the parsed flags. Precedence is
// explicit flags, then config file, then built-in defaults. A missing
// default config file is not an error; a missing explicit one is.
func (s *service) Apply(flags model.Flags) (model.Flags, error) {
	var file File
	_, err := toml.DecodeFile(s.path, &file)
	if errors.Is(err, fs.ErrNotExist) {
		if s.explicit {
			return flags, fmt.Errorf("config file not found: %s", s.path)
		}
		return flags, nil
	}
	if err != nil {
		return flags, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}

	if file.Manifest != "" && !flags.ManifestSet {
		flags.Manifest = file.Manifest
	}
	if file.ModuleFile != "" && !flags.ModuleFileSet {
		flags.ModuleFile = file.ModuleFile
	}
	if file.Docs != "" && !flags.DocsSet {
		flags.Docs = file.Docs
	}

	return flags, nil
}
