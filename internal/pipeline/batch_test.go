package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/printcheck/internal/model"
)

// fakeRenderer renders by calling fn, tracking concurrency.
type fakeRenderer struct {
	fn      func(file model.ModelFile, out string) model.RenderResult
	active  atomic.Int32
	maxSeen atomic.Int32
	calls   atomic.Int32
}

func (f *fakeRenderer) Render(file model.ModelFile, out string) model.RenderResult {
	f.calls.Add(1)
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		m := f.maxSeen.Load()
		if n <= m || f.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	if f.fn != nil {
		return f.fn(file, out)
	}
	return model.Rendered(out, 200, 200, model.TintDefault)
}

func testFiles(root string, n int) []model.ModelFile {
	files := make([]model.ModelFile, n)
	for i := range files {
		files[i] = model.NewModelFile(root, filepath.Join(root, fmt.Sprintf("f%02d.stl", i)))
	}
	return files
}

// TestBatchRendererNew tests the BatchRenderer constructor.
func TestBatchRendererNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to sequential", func(t *testing.T) {
		t.Parallel()

		b := NewBatchRenderer(&fakeRenderer{})
		if b.concurrency != 1 {
			t.Errorf("expected concurrency 1, got %d", b.concurrency)
		}
		if b.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		b := NewBatchRenderer(&fakeRenderer{}, WithConcurrency(0))
		if b.concurrency != 1 {
			t.Errorf("expected concurrency 1, got %d", b.concurrency)
		}
	})
}

// TestBatchRendererRenderAll tests batch rendering.
func TestBatchRendererRenderAll(t *testing.T) {
	t.Parallel()

	t.Run("results follow file order with parallel jobs", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		files := testFiles(root, 20)
		r := &fakeRenderer{fn: func(file model.ModelFile, out string) model.RenderResult {
			// Later files finish first.
			var i int
			_, _ = fmt.Sscanf(file.Name(), "f%d.stl", &i) //nolint:errcheck // test names are well formed
			time.Sleep(time.Duration(20-i) * time.Millisecond)
			return model.Rendered(out, 200, 200, model.TintDefault)
		}}

		b := NewBatchRenderer(r, WithConcurrency(4))
		results, err := b.RenderAll(context.Background(), files, root, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, res := range results {
			if want := PreviewPath(root, i, files[i]); res.ImagePath != want {
				t.Errorf("result %d: got %q, want %q", i, res.ImagePath, want)
			}
		}
		if r.maxSeen.Load() > 4 {
			t.Errorf("expected at most 4 concurrent renders, saw %d", r.maxSeen.Load())
		}
	})

	t.Run("sequential never overlaps", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		r := &fakeRenderer{}
		b := NewBatchRenderer(r)
		if _, err := b.RenderAll(context.Background(), testFiles(root, 5), root, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.maxSeen.Load() != 1 {
			t.Errorf("expected 1 concurrent render, saw %d", r.maxSeen.Load())
		}
	})

	t.Run("failed results do not stop the batch", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		files := testFiles(root, 3)
		r := &fakeRenderer{fn: func(file model.ModelFile, out string) model.RenderResult {
			if file.Name() == "f01.stl" {
				return model.Failed(errors.New("bad mesh"))
			}
			return model.Rendered(out, 200, 200, model.TintDefault)
		}}

		results, err := NewBatchRenderer(r, WithConcurrency(2)).RenderAll(context.Background(), files, root, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !results[0].OK() || results[1].OK() || !results[2].OK() {
			t.Errorf("unexpected results: %+v", results)
		}
	})

	t.Run("callback sees every file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		var mu sync.Mutex
		seen := make(map[int]bool)
		_, err := NewBatchRenderer(&fakeRenderer{}, WithConcurrency(3)).RenderAll(
			context.Background(), testFiles(root, 7), root,
			func(i int, _ model.RenderResult) {
				mu.Lock()
				seen[i] = true
				mu.Unlock()
			},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seen) != 7 {
			t.Errorf("expected 7 callbacks, got %d", len(seen))
		}
	})

	t.Run("cancellation stops pending files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		r := &fakeRenderer{fn: func(_ model.ModelFile, out string) model.RenderResult {
			cancel()
			return model.Rendered(out, 200, 200, model.TintDefault)
		}}

		results, err := NewBatchRenderer(r).RenderAll(ctx, testFiles(root, 10), root, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if len(results) != 10 {
			t.Fatalf("expected 10 results, got %d", len(results))
		}
		if r.calls.Load() >= 10 {
			t.Errorf("expected pending files to be skipped, got %d calls", r.calls.Load())
		}
		if results[9].OK() {
			t.Error("expected skipped file to have a failed result")
		}
	})
}
