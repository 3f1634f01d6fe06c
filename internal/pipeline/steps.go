package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/nao1215/printcheck/internal/checklist"
	"github.com/nao1215/printcheck/internal/locate"
	"github.com/nao1215/printcheck/internal/model"
)

// LocateStep finds the model files under the run root and sorts them by
// (folder, name).
type LocateStep struct {
	extension string
	logger    *slog.Logger
}

// NewLocateStep creates a LocateStep matching extension.
func NewLocateStep(extension string, logger *slog.Logger) *LocateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocateStep{extension: extension, logger: logger}
}

// Name returns the step name.
func (s *LocateStep) Name() string {
	return "locate"
}

// Do discovers the files.
func (s *LocateStep) Do(_ context.Context, job *Job) error {
	files, err := locate.Find(job.Run.Root,
		locate.WithExtension(s.extension),
		locate.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}
	locate.Sort(files)
	job.Run.Files = files

	s.logger.Info("found STL files",
		"count", len(files),
		"dir", job.Run.Root,
	)
	return nil
}

// RenderStep renders a preview for every located file.
type RenderStep struct {
	batch    *BatchRenderer
	progress Progress
	logger   *slog.Logger
}

// NewRenderStep creates a RenderStep. A nil progress shows nothing.
func NewRenderStep(batch *BatchRenderer, progress Progress, logger *slog.Logger) *RenderStep {
	if progress == nil {
		progress = nopProgress{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RenderStep{batch: batch, progress: progress, logger: logger}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders all files and records the failures in file order.
func (s *RenderStep) Do(ctx context.Context, job *Job) error {
	files := job.Run.Files

	s.progress.Start(len(files))
	results, err := s.batch.RenderAll(ctx, files, job.Run.ScratchDir, func(int, model.RenderResult) {
		s.progress.Step()
	})
	s.progress.Finish()

	job.Run.Results = results
	if err != nil {
		job.Run.Cancelled = true
		return fmt.Errorf("rendering interrupted: %w", err)
	}

	for i, res := range results {
		if res.OK() {
			continue
		}
		job.Failures.Add(files[i])
		s.logger.Warn("error creating preview",
			"file", files[i].Path,
			"error", res.Error(),
		)
	}
	if n := job.Failures.Len(); n > 0 {
		s.logger.Info("STL previews failed to generate", "count", n)
	}
	return nil
}

// ChecklistStep builds the checklist document and saves it.
type ChecklistStep struct {
	output string
	logger *slog.Logger
}

// NewChecklistStep creates a ChecklistStep writing to output.
func NewChecklistStep(output string, logger *slog.Logger) *ChecklistStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChecklistStep{output: output, logger: logger}
}

// Name returns the step name.
func (s *ChecklistStep) Name() string {
	return "checklist"
}

// Do builds and saves the checklist.
func (s *ChecklistStep) Do(_ context.Context, job *Job) error {
	doc, err := checklist.Build(job.Run.Files, job.Run.Results, job.Failures.Names())
	if err != nil {
		return err
	}
	job.Document = doc

	path, err := filepath.Abs(s.output)
	if err != nil {
		path = s.output
	}
	if err := checklist.Save(doc, path); err != nil {
		return err
	}
	job.Run.OutputPath = path

	if info, err := os.Stat(path); err == nil {
		job.Run.OutputSize = info.Size()
	}

	s.logger.Info("checklist successfully saved",
		"path", path,
		"rows", doc.Len(),
		"size", humanize.Bytes(uint64(job.Run.OutputSize)),
	)
	return nil
}
