// Package manifest extracts the declared version from the packaging manifest.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

// Matches version = "x.y.z" or version = 'x.y.z'.
var versionPattern = regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`)

var (
	// ErrNotFound indicates the manifest file does not exist.
	ErrNotFound = errors.New("manifest file not found")
	// ErrNoVersion indicates the manifest contains no version assignment.
	ErrNoVersion = errors.New("could not find version in manifest")
)

type service struct {
	path string
}

// Service is the interface for manifest version extraction.
type Service interface {
	Path() string
	ExtractVersion() (string, error)
}

// NewService creates a manifest service for the given file path.
func NewService(path string) Service {
	return &service{path: path}
}

func (s *service) Path() string {
	return s.path
}

// ExtractVersion reads the manifest and returns the first declared version.
// A missing file or missing version assignment is an error; both are meant
// to fail the run before any comparison is attempted.
func (s *service) ExtractVersion() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %s: %w", s.path, err)
	}

	m := versionPattern.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrNoVersion, s.path)
	}

	return string(m[1]), nil
}
