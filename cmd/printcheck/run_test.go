package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/printcheck/internal/config"
	"github.com/nao1215/printcheck/internal/locate"
	"github.com/nao1215/printcheck/internal/prompt"
	"github.com/nao1215/printcheck/internal/report"
	"github.com/nao1215/printcheck/internal/testsupport"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// stlTree creates a directory with two renderable cubes and one broken file.
func stlTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	testsupport.WriteCube(t, root, "A/part[a].stl", 10)
	testsupport.WriteCube(t, root, "A/part[c].stl", 10)
	testsupport.WriteCorrupt(t, root, "B/base.stl")
	return root
}

type stubDriver struct {
	answer string
	err    error
	asked  string
}

func (d *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = cfg.Message
	return d.answer, d.err
}

// TestRunRootCmd tests complete command runs.
func TestRunRootCmd(t *testing.T) {
	t.Run("writes checklist and log into the base directory", func(t *testing.T) {
		root := stlTree(t)
		base := t.TempDir()

		stdout, _, err := execute(t, root, "-B", base, "-s", "32", "--no-progress")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(stdout, "Processing 3 STL files...\n") {
			t.Errorf("expected processing line first, got %q", stdout)
		}
		if !strings.Contains(stdout, "1 STL previews could not be created. See ") {
			t.Errorf("expected failure summary, got %q", stdout)
		}
		if _, err := os.Stat(filepath.Join(base, config.DefaultOutputFile)); err != nil {
			t.Errorf("expected checklist: %v", err)
		}

		logs, err := os.ReadDir(filepath.Join(base, config.DefaultLogDir))
		if err != nil {
			t.Fatalf("failed to read log dir: %v", err)
		}
		if len(logs) != 1 || !strings.HasPrefix(logs[0].Name(), "PRINTCHECK_log_") {
			t.Errorf("expected one run log, got %v", logs)
		}
	})

	t.Run("prints a JSON report after the summary line", func(t *testing.T) {
		root := stlTree(t)
		base := t.TempDir()

		stdout, _, err := execute(t, root, "-B", base, "-s", "32", "--no-progress", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		start := strings.Index(stdout, "{")
		if start < 0 {
			t.Fatalf("expected JSON in output, got %q", stdout)
		}
		var summary report.Summary
		if err := json.Unmarshal([]byte(stdout[start:]), &summary); err != nil {
			t.Fatalf("failed to decode JSON: %v", err)
		}
		if summary.Total != 3 || summary.Rendered != 2 {
			t.Errorf("expected 3 files with 2 previews, got %d and %d", summary.Total, summary.Rendered)
		}
		if diff := cmp.Diff([]string{"B/base.stl"}, summary.Failed); diff != "" {
			t.Errorf("failed files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid directory exits with message", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")

		_, _, err := execute(t, missing, "-B", t.TempDir())
		if !errors.Is(err, locate.ErrNotDirectory) {
			t.Fatalf("expected ErrNotDirectory, got %v", err)
		}
		want := "The specified path '" + missing + "' is not a valid directory. Exiting."
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("conflicting report formats are rejected", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "--json", "-m")
		if !errors.Is(err, config.ErrConflictingSummaryFormats) {
			t.Errorf("expected ErrConflictingSummaryFormats, got %v", err)
		}
	})

	t.Run("explicit config file must exist", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "-c", filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("asks for the directory when none is given", func(t *testing.T) {
		root := stlTree(t)
		base := t.TempDir()

		driver := &stubDriver{answer: "  '" + root + "'  "}
		orig := newPromptDriver
		newPromptDriver = func() prompt.Driver { return driver }
		t.Cleanup(func() { newPromptDriver = orig })

		stdout, _, err := execute(t, "-B", base, "-s", "32", "--no-progress")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if driver.asked != prompt.DirectoryMessage {
			t.Errorf("expected prompt %q, got %q", prompt.DirectoryMessage, driver.asked)
		}
		if !strings.Contains(stdout, "Processing 3 STL files...") {
			t.Errorf("expected run output, got %q", stdout)
		}
	})

	t.Run("aborted prompt stops the run", func(t *testing.T) {
		orig := newPromptDriver
		newPromptDriver = func() prompt.Driver { return &stubDriver{err: prompt.ErrAborted} }
		t.Cleanup(func() { newPromptDriver = orig })

		_, _, err := execute(t, "-B", t.TempDir())
		if !errors.Is(err, prompt.ErrAborted) {
			t.Errorf("expected ErrAborted, got %v", err)
		}
	})
}

// TestBuildConfig tests flag and config file precedence.
func TestBuildConfig(t *testing.T) {
	t.Run("config file values apply and flags override them", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "printcheck.yaml")
		data := []byte("size: 64\njobs: 3\nextension: .STL\n")
		if err := os.WriteFile(path, data, 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", path, "-j", "2", "-v"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, "stls")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Size != 64 {
			t.Errorf("expected size 64 from file, got %d", cfg.Size)
		}
		if cfg.Jobs != 2 {
			t.Errorf("expected jobs 2 from flag, got %d", cfg.Jobs)
		}
		if cfg.Extension != ".STL" {
			t.Errorf("expected extension .STL, got %q", cfg.Extension)
		}
		if !cfg.Verbose || !cfg.ShowProgress {
			t.Errorf("expected verbose with progress, got %+v", cfg)
		}
	})

	t.Run("invalid flag value is a configuration error", func(t *testing.T) {
		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-j", "0"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		_, err := buildConfig(cmd, "stls")
		if !errors.Is(err, config.ErrInvalidJobs) {
			t.Errorf("expected ErrInvalidJobs, got %v", err)
		}
	})
}
