// Package modulefile extracts the __version__ attribute from the module file.
package modulefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

// Matches __version__ = "x.y.z" or __version__ = 'x.y.z'.
var versionPattern = regexp.MustCompile(`__version__\s*=\s*["']([^"']+)["']`)

var (
	// ErrNotFound indicates the module file does not exist.
	ErrNotFound = errors.New("module file not found")
	// ErrNoVersion indicates the module file contains no __version__ assignment.
	ErrNoVersion = errors.New("could not find __version__ in module file")
)

type service struct {
	path string
}

// Service is the interface for module version extraction.
type Service interface {
	Path() string
	ExtractVersion() (string, error)
}

// NewService creates a modulefile service for the given file path.
func NewService(path string) Service {
	return &service{path: path}
}

func (s *service) Path() string {
	return s.path
}

// ExtractVersion reads the module file and returns the first __version__
// value. Missing file or missing assignment fails the run immediately.
func (s *service) ExtractVersion() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read module file %s: %w", s.path, err)
	}

	m := versionPattern.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrNoVersion, s.path)
	}

	return string(m[1]), nil
}
