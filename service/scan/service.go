// Package scan walks the repository looking for stale version strings.
package scan

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nurokhq/tagcheck/model"
)

// Version-like tokens, e.g. 1.2.0 or v1.2.0.
var versionLikePattern = regexp.MustCompile(`\bv?\d+\.\d+\.\d+([0-9A-Za-z.+-]*)\b`)

// Directories that never contain release metadata worth scanning.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	".venv":        true,
	"__pycache__":  true,
}

// Text file extensions considered by the scan.
var scanExts = map[string]bool{
	".md":   true,
	".rst":  true,
	".txt":  true,
	".py":   true,
	".toml": true,
	".cfg":  true,
	".ini":  true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

const maxWorkers = 8

type service struct {
	root string
}

// Service is the interface for the stale-version scan.
type Service interface {
	Scan(target string) (*model.ScanReport, error)
}

// NewService creates a scan service rooted at the given directory.
func NewService(root string) Service {
	if root == "" {
		root = "."
	}
	return &service{root: root}
}

// Scan walks the tree under the root and reports every version-like string
// that is not the target version. Files are read concurrently; hits are
// ordered by path then line for stable output. The scan is advisory and a
// hit is not a failure.
func (s *service) Scan(target string) (*model.ScanReport, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if scanExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}

	var (
		mu   sync.Mutex
		hits []model.ScanHit
	)

	g := new(errgroup.Group)
	g.SetLimit(maxWorkers)

	for _, path := range paths {
		g.Go(func() error {
			fileHits, err := scanFile(path, target)
			if err != nil {
				return err
			}
			if len(fileHits) > 0 {
				mu.Lock()
				hits = append(hits, fileHits...)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Path != hits[j].Path {
			return hits[i].Path < hits[j].Path
		}
		return hits[i].Line < hits[j].Line
	})

	return &model.ScanReport{
		Root:         s.root,
		Target:       target,
		FilesScanned: len(paths),
		Hits:         hits,
	}, nil
}

func scanFile(path, target string) ([]model.ScanHit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var hits []model.ScanHit

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		for _, match := range versionLikePattern.FindAllString(scanner.Text(), -1) {
			bare := strings.TrimPrefix(match, "v")
			if bare == target {
				continue
			}
			hits = append(hits, model.ScanHit{Path: path, Line: line, Match: match})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return hits, nil
}
