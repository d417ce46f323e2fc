package verify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nurokhq/tagcheck/model"
	"github.com/nurokhq/tagcheck/service/docs"
	"github.com/nurokhq/tagcheck/service/manifest"
	"github.com/nurokhq/tagcheck/service/modulefile"
	"github.com/nurokhq/tagcheck/service/output"
)

func TestExtractTagVersion(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"v1.2.0", "1.2.0"},
		{"1.2.0", "1.2.0"},
		{"v0.1.0rc1", "0.1.0rc1"},
		{"vv1.0.0", "v1.0.0"},
		{"v", ""},
		{"", ""},
		{"release-1.0", "release-1.0"},
	}

	for _, tt := range tests {
		if got := ExtractTagVersion(tt.tag); got != tt.want {
			t.Fatalf("ExtractTagVersion(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestCompareAllMatch(t *testing.T) {
	comparisons := Compare("1.2.0", "1.2.0", "1.2.0")
	if len(comparisons) != 3 {
		t.Fatalf("expected 3 comparisons, got %d", len(comparisons))
	}
	for _, c := range comparisons {
		if !c.Passed {
			t.Fatalf("expected %s to pass: %+v", c.Name, c)
		}
	}
}

func TestCompareSingleOutlier(t *testing.T) {
	tests := []struct {
		name       string
		tag        string
		manifest   string
		module     string
		wantFailed []string
	}{
		{
			name:       "tag differs",
			tag:        "1.3.0",
			manifest:   "1.2.0",
			module:     "1.2.0",
			wantFailed: []string{"tag vs manifest", "tag vs module"},
		},
		{
			name:       "manifest differs",
			tag:        "1.2.0",
			manifest:   "1.3.0",
			module:     "1.2.0",
			wantFailed: []string{"tag vs manifest", "manifest vs module"},
		},
		{
			name:       "module differs",
			tag:        "1.2.0",
			manifest:   "1.2.0",
			module:     "1.3.0",
			wantFailed: []string{"tag vs module", "manifest vs module"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var failed []string
			for _, c := range Compare(tt.tag, tt.manifest, tt.module) {
				if !c.Passed {
					failed = append(failed, c.Name)
				}
			}
			if len(failed) != len(tt.wantFailed) {
				t.Fatalf("failed = %v, want %v", failed, tt.wantFailed)
			}
			for i := range failed {
				if failed[i] != tt.wantFailed[i] {
					t.Fatalf("failed = %v, want %v", failed, tt.wantFailed)
				}
			}
		})
	}
}

func TestCompareNoNormalization(t *testing.T) {
	comparisons := Compare("1.0", "1.0.0", "1.0")
	if comparisons[0].Passed {
		t.Fatal("1.0 and 1.0.0 must be treated as different versions")
	}
}

type projectFiles struct {
	manifest string
	module   string
	docs     string
}

func newTestVerifier(t *testing.T, files projectFiles) Service {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		return path
	}

	manifestPath := filepath.Join(dir, "pyproject.toml")
	if files.manifest != "" {
		manifestPath = write("pyproject.toml", files.manifest)
	}
	modulePath := filepath.Join(dir, "__init__.py")
	if files.module != "" {
		modulePath = write("__init__.py", files.module)
	}
	docsPath := filepath.Join(dir, "README.md")
	if files.docs != "" {
		docsPath = write("README.md", files.docs)
	}

	return NewService(
		manifest.NewService(manifestPath),
		modulefile.NewService(modulePath),
		docs.NewService(docsPath),
		nil,
		output.NewService("table"),
		nil,
		model.VersionInfo{Version: "test"},
	)
}

func TestVerifyAllVersionsMatch(t *testing.T) {
	svc := newTestVerifier(t, projectFiles{
		manifest: "version = \"1.2.0\"\n",
		module:   "__version__ = \"1.2.0\"\n",
		docs:     "Release 1.2.0\n",
	})

	if err := svc.Verify(model.Flags{Tag: "v1.2.0"}); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
}

func TestVerifyMismatchCollectsAllComparisons(t *testing.T) {
	svc := newTestVerifier(t, projectFiles{
		manifest: "version = \"1.2.0\"\n",
		module:   "__version__ = \"1.3.0\"\n",
	})

	err := svc.Verify(model.Flags{Tag: "v1.2.0"})
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestVerifyMissingManifestFailsFast(t *testing.T) {
	svc := newTestVerifier(t, projectFiles{
		module: "__version__ = \"1.2.0\"\n",
	})

	err := svc.Verify(model.Flags{Tag: "v1.2.0"})
	if !errors.Is(err, manifest.ErrNotFound) {
		t.Fatalf("expected manifest.ErrNotFound, got %v", err)
	}
	if errors.Is(err, ErrMismatch) {
		t.Fatalf("extraction failure must not be reported as a mismatch: %v", err)
	}
}

func TestVerifyMissingModulePatternFailsFast(t *testing.T) {
	svc := newTestVerifier(t, projectFiles{
		manifest: "version = \"1.2.0\"\n",
		module:   "# no version here\n",
	})

	err := svc.Verify(model.Flags{Tag: "v1.2.0"})
	if !errors.Is(err, modulefile.ErrNoVersion) {
		t.Fatalf("expected modulefile.ErrNoVersion, got %v", err)
	}
}

func TestVerifyDocsCheckIsAdvisory(t *testing.T) {
	// Docs mention a stale version, but the mandatory checks agree.
	svc := newTestVerifier(t, projectFiles{
		manifest: "version = \"1.2.0\"\n",
		module:   "__version__ = \"1.2.0\"\n",
		docs:     "Release 1.1.0\n",
	})

	if err := svc.Verify(model.Flags{Tag: "v1.2.0"}); err != nil {
		t.Fatalf("docs check must not affect the outcome: %v", err)
	}
}

func TestVerifyVersionFlag(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, output.NewService("table"), nil,
		model.VersionInfo{Version: "1.0.0", Commit: "abc", Date: "today"})

	if err := svc.Verify(model.Flags{Version: true}); err != nil {
		t.Fatalf("version workflow failed: %v", err)
	}
}
