// Package docs soft-checks that the documentation mentions the release version.
package docs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nurokhq/tagcheck/model"
)

type service struct {
	path string
}

// Service is the interface for the advisory documentation check.
type Service interface {
	Check(version string) (model.DocsCheck, error)
}

// NewService creates a docs service for the given file path.
func NewService(path string) Service {
	return &service{path: path}
}

// Check looks for the version string anywhere in the documentation file,
// accepting both the bare form and the v-prefixed form. The file is
// optional; absence is reported, not an error. This is a substring check
// only and never affects the run outcome.
func (s *service) Check(version string) (model.DocsCheck, error) {
	result := model.DocsCheck{Path: s.path}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("failed to read docs file %s: %w", s.path, err)
	}

	result.Present = true
	result.Mentioned = bytes.Contains(data, []byte(version)) ||
		bytes.Contains(data, []byte("v"+version))

	return result, nil
}
