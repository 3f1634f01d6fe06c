package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/printcheck/internal/model"
)

// Renderer turns one model file into a preview image at out.
type Renderer interface {
	Render(file model.ModelFile, out string) model.RenderResult
}

// BatchRenderer renders many files with bounded concurrency.
type BatchRenderer struct {
	renderer    Renderer
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchRenderer.
type BatchOption func(*BatchRenderer)

// WithBatchLogger sets a custom logger for batch rendering.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchRenderer) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of files rendered at once.
// Default is 1.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchRenderer) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchRenderer creates a BatchRenderer.
func NewBatchRenderer(renderer Renderer, opts ...BatchOption) *BatchRenderer {
	b := &BatchRenderer{
		renderer:    renderer,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// PreviewPath returns the scratch path of the preview of the i-th file.
// The index prefix keeps equal names from different folders apart.
func PreviewPath(scratch string, i int, file model.ModelFile) string {
	return filepath.Join(scratch, fmt.Sprintf("%04d_%s.png", i, file.Name()))
}

// RenderAll renders files into scratch and returns one result per file, in
// file order regardless of completion order. done, if not nil, is called
// after each file from the rendering goroutine. Files not started before ctx
// is cancelled keep a failed result and ctx's error is returned.
func (b *BatchRenderer) RenderAll(
	ctx context.Context,
	files []model.ModelFile,
	scratch string,
	done func(i int, result model.RenderResult),
) ([]model.RenderResult, error) {
	b.logger.Debug("starting batch rendering",
		"files", len(files),
		"concurrency", b.concurrency,
	)
	start := time.Now()

	results := make([]model.RenderResult, len(files))
	for i := range results {
		results[i] = model.Failed(context.Canceled)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			b.logger.Debug("rendering file",
				"file", file.QualifiedName(),
				"index", i+1,
				"total", len(files),
			)

			// Each goroutine writes only its own index.
			results[i] = b.renderer.Render(file, PreviewPath(scratch, i, file))
			if done != nil {
				done(i, results[i])
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	b.logger.Debug("batch rendering complete",
		"files", len(files),
		"elapsed", time.Since(start),
	)
	return results, err
}
