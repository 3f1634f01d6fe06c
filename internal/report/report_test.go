package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/printcheck/internal/model"
)

func testRun(t *testing.T) (*model.Run, *Failures) {
	t.Helper()

	root := filepath.Join("scan", "root")
	run := model.NewRun(root)
	run.StartedAt = time.Date(2024, 10, 27, 12, 0, 0, 0, time.UTC)
	run.Files = []model.ModelFile{
		model.NewModelFile(root, filepath.Join(root, "A", "part[a].stl")),
		model.NewModelFile(root, filepath.Join(root, "A", "part[c].stl")),
		model.NewModelFile(root, filepath.Join(root, "B", "base.stl")),
	}
	run.Results = []model.RenderResult{
		model.Rendered("/tmp/0.png", 200, 200, model.TintRed),
		model.Rendered("/tmp/1.png", 200, 200, model.TintWhite),
		model.Failed(errors.New("bad mesh")),
	}
	run.OutputPath = "STL_Checklist_Structured.xlsx"
	run.OutputSize = 12345

	failures := NewFailures()
	failures.Add(run.Files[2])
	return run, failures
}

// TestFailures tests failure bookkeeping and the summary line.
func TestFailures(t *testing.T) {
	t.Parallel()

	t.Run("no failures reports success", func(t *testing.T) {
		t.Parallel()

		f := NewFailures()
		if got := f.Summary(); got != "All STL previews were created successfully." {
			t.Errorf("unexpected summary: %q", got)
		}
		if f.Names() != nil {
			t.Errorf("expected no names, got %v", f.Names())
		}
	})

	t.Run("failures are counted and kept in order", func(t *testing.T) {
		t.Parallel()

		f := NewFailures()
		f.AddName("B/base.stl")
		f.Add(model.NewModelFile("/r", "/r/A/x.stl"))

		if got := f.Summary(); got != "2 STL previews could not be created." {
			t.Errorf("unexpected summary: %q", got)
		}
		if diff := cmp.Diff([]string{"B/base.stl", "A/x.stl"}, f.Names()); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("summary points to log file", func(t *testing.T) {
		t.Parallel()

		f := NewFailures()
		f.AddName("B/base.stl")
		want := "1 STL previews could not be created. See logs/PRINTCHECK_log_20241027_120000.txt for details."
		if got := f.SummaryWithLog("logs/PRINTCHECK_log_20241027_120000.txt"); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if got := f.SummaryWithLog(""); got != f.Summary() {
			t.Errorf("expected plain summary without log, got %q", got)
		}
	})

	t.Run("concurrent adds are all recorded", func(t *testing.T) {
		t.Parallel()

		f := NewFailures()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				f.AddName("x.stl")
			}()
		}
		wg.Wait()
		if f.Len() != 50 {
			t.Errorf("expected 50 failures, got %d", f.Len())
		}
	})
}

// TestNewSummary tests building a summary from a run.
func TestNewSummary(t *testing.T) {
	t.Parallel()

	run, failures := testRun(t)
	s := NewSummary(run, failures, "logs/x.txt", run.StartedAt.Add(1500*time.Millisecond))

	if s.Total != 3 || s.Rendered != 2 || s.FailedCount() != 1 {
		t.Errorf("unexpected counts: total=%d rendered=%d failed=%d", s.Total, s.Rendered, s.FailedCount())
	}
	if diff := cmp.Diff([]string{"A", "B"}, s.Folders); diff != "" {
		t.Errorf("folders mismatch (-want +got):\n%s", diff)
	}
	if s.HumanDuration() != "1.5s" {
		t.Errorf("unexpected duration: %s", s.HumanDuration())
	}
	if s.HumanOutputSize() != "12 kB" {
		t.Errorf("unexpected size: %s", s.HumanOutputSize())
	}
	if !strings.HasSuffix(s.Message, "See logs/x.txt for details.") {
		t.Errorf("unexpected message: %q", s.Message)
	}

	want := []FileStatus{
		{Name: "part[a].stl", Folder: "A", Preview: true, Tint: model.TintRed},
		{Name: "part[c].stl", Folder: "A", Preview: true, Tint: model.TintWhite},
		{Name: "base.stl", Folder: "B", Error: "bad mesh"},
	}
	if diff := cmp.Diff(want, s.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

// TestWriters tests the summary output formats.
func TestWriters(t *testing.T) {
	t.Parallel()

	t.Run("simple writer prints the summary line", func(t *testing.T) {
		t.Parallel()

		run, failures := testRun(t)
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(NewSummary(run, failures, "logs/x.txt", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "1 STL previews could not be created. See logs/x.txt for details.\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("verbose simple writer lists failures", func(t *testing.T) {
		t.Parallel()

		run, failures := testRun(t)
		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		if _, err := w.Write(NewSummary(run, failures, "", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "- B/base.stl") {
			t.Errorf("expected failed file, got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "12 kB") {
			t.Errorf("expected output size, got %q", buf.String())
		}
	})

	t.Run("markdown writer includes tables and warning", func(t *testing.T) {
		t.Parallel()

		run, failures := testRun(t)
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(NewSummary(run, failures, "logs/x.txt", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"# PRINTCHECK Report", "## Previews", "mermaid", "## Missing Previews", "B/base.stl", "[!WARNING]"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("markdown writer reports success with tip", func(t *testing.T) {
		t.Parallel()

		run, _ := testRun(t)
		run.Results[2] = model.Rendered("/tmp/2.png", 200, 200, model.TintDefault)
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(NewSummary(run, NewFailures(), "", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Errorf("expected tip alert, got %q", buf.String())
		}
		if strings.Contains(buf.String(), "Missing Previews") {
			t.Error("expected no missing previews section")
		}
	})

	t.Run("json writer outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		run, failures := testRun(t)
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(NewSummary(run, failures, "logs/x.txt", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Total  int      `json:"total"`
			Failed []string `json:"failed"`
			Files  []struct {
				Tint string `json:"tint"`
			} `json:"files"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Total != 3 || len(decoded.Failed) != 1 || decoded.Files[0].Tint != "red" {
			t.Errorf("unexpected decoded summary: %+v", decoded)
		}
	})

	t.Run("json writer output decodes back into a summary", func(t *testing.T) {
		t.Parallel()

		run, failures := testRun(t)
		want := NewSummary(run, failures, "logs/x.txt", time.Now())
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(want); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got Summary
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode summary: %v", err)
		}
		if diff := cmp.Diff(want.Files, got.Files); diff != "" {
			t.Errorf("files mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want.Failed, got.Failed); diff != "" {
			t.Errorf("failed mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("multi writer writes to all writers", func(t *testing.T) {
		t.Parallel()

		run, failures := testRun(t)
		var a, b bytes.Buffer
		w := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))
		n, err := w.Write(NewSummary(run, failures, "", time.Now()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != a.Len()+b.Len() || a.Len() == 0 || b.Len() == 0 {
			t.Errorf("expected both writers used, n=%d a=%d b=%d", n, a.Len(), b.Len())
		}
	})
}
