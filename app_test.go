package main

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func resetCommandLine(t *testing.T, args []string) func() {
	t.Helper()
	oldCommandLine := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = append([]string{"tagcheck"}, args...)
	return func() {
		pflag.CommandLine = oldCommandLine
		os.Args = oldArgs
	}
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	os.Stdout = oldStdout
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return string(out), runErr
}

func TestRunNoArgumentsPrintsUsage(t *testing.T) {
	cleanup := resetCommandLine(t, nil)
	defer cleanup()

	out, err := captureStdout(t, run)
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 usage lines on stdout, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Usage: tagcheck") {
		t.Fatalf("unexpected first usage line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Example: tagcheck") {
		t.Fatalf("unexpected second usage line: %q", lines[1])
	}
}

func TestRunTooManyArgumentsPrintsUsage(t *testing.T) {
	cleanup := resetCommandLine(t, []string{"v1.0.0", "v2.0.0"})
	defer cleanup()

	out, err := captureStdout(t, run)
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage, got %v", err)
	}
	if !strings.Contains(out, "Usage: tagcheck <tag_name>") {
		t.Fatalf("usage text missing from stdout: %q", out)
	}
}
