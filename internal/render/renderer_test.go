package render

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/fauxgl"

	"github.com/nao1215/printcheck/internal/model"
	"github.com/nao1215/printcheck/internal/testsupport"
)

// TestRenderer tests rendering STL files to preview images.
func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("renders marked cube in red at preview size", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path := testsupport.WriteCube(t, root, "A/part[a].stl", 10)
		out := filepath.Join(t.TempDir(), "part.png")

		r := New()
		result := r.Render(model.NewModelFile(root, path), out)
		if !result.OK() {
			t.Fatalf("expected success, got %v", result.Err)
		}
		if result.Tint != model.TintRed {
			t.Errorf("expected red tint, got %v", result.Tint)
		}
		if result.Width != DefaultSize || result.Height != DefaultSize {
			t.Errorf("expected %dx%d, got %dx%d", DefaultSize, DefaultSize, result.Width, result.Height)
		}
		if result.Triangles != 12 {
			t.Errorf("expected 12 triangles, got %d", result.Triangles)
		}

		f, err := os.Open(out)
		if err != nil {
			t.Fatalf("preview not written: %v", err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("preview is not a PNG: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != DefaultSize || b.Dy() != DefaultSize {
			t.Fatalf("expected %dx%d image, got %dx%d", DefaultSize, DefaultSize, b.Dx(), b.Dy())
		}

		cr, cg, cb, _ := img.At(b.Dx()/2, b.Dy()/2).RGBA()
		if cr <= cg || cr <= cb {
			t.Errorf("expected red centre pixel, got r=%d g=%d b=%d", cr, cg, cb)
		}

		br, bg, bb, _ := img.At(0, 0).RGBA()
		if br != bg || bg != bb {
			t.Errorf("expected grey corner pixel, got r=%d g=%d b=%d", br, bg, bb)
		}
	})

	t.Run("honours size option", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path := testsupport.WriteCube(t, root, "base.stl", 3)
		out := filepath.Join(t.TempDir(), "base.png")

		r := New(WithSize(64), WithSupersample(2))
		result := r.Render(model.NewModelFile(root, path), out)
		if !result.OK() {
			t.Fatalf("expected success, got %v", result.Err)
		}
		if result.Width != 64 || result.Tint != model.TintDefault {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("corrupt file yields failed result", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path := testsupport.WriteCorrupt(t, root, "B/base.stl")
		out := filepath.Join(t.TempDir(), "base.png")

		result := New().Render(model.NewModelFile(root, path), out)
		if result.OK() {
			t.Fatal("expected failure for corrupt file")
		}
		if result.ImagePath != "" {
			t.Errorf("expected no image path, got %q", result.ImagePath)
		}
		if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected no preview written, stat error: %v", err)
		}
	})

	t.Run("missing file yields failed result", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		result := New().Render(model.NewModelFile(root, filepath.Join(root, "gone.stl")), filepath.Join(root, "gone.png"))
		if result.OK() {
			t.Fatal("expected failure for missing file")
		}
	})

	t.Run("empty mesh returns ErrEmptyMesh", func(t *testing.T) {
		t.Parallel()

		_, _, err := New().Draw(fauxgl.NewTriangleMesh(nil), model.TintDefault)
		if !errors.Is(err, ErrEmptyMesh) {
			t.Errorf("expected ErrEmptyMesh, got %v", err)
		}
	})
}

// TestDecimate tests the triangle-count threshold.
func TestDecimate(t *testing.T) {
	t.Parallel()

	mesh := cubeMesh(1, fauxgl.V(0, 0, 0))

	t.Run("mesh below threshold is unchanged", func(t *testing.T) {
		t.Parallel()
		if got := decimate(mesh, 100, 0.25); got != mesh {
			t.Error("expected same mesh")
		}
	})

	t.Run("zero threshold disables decimation", func(t *testing.T) {
		t.Parallel()
		if got := decimate(mesh, 0, 0.25); got != mesh {
			t.Error("expected same mesh")
		}
	})

	t.Run("invalid factor is ignored", func(t *testing.T) {
		t.Parallel()
		if got := decimate(mesh, 1, 1.5); got != mesh {
			t.Error("expected same mesh")
		}
	})
}
