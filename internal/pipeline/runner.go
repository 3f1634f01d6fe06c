package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nao1215/printcheck/internal/config"
	"github.com/nao1215/printcheck/internal/locate"
	"github.com/nao1215/printcheck/internal/log"
	"github.com/nao1215/printcheck/internal/render"
	"github.com/nao1215/printcheck/internal/report"
)

// scratchPattern is the name pattern of temporary preview directories.
const scratchPattern = "printcheck-"

// Outcome is the result of a finished run.
type Outcome struct {
	Job     *Job
	LogPath string
	Summary *report.Summary
}

// Runner executes a complete checklist run for a configuration.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	runLog   *log.RunLog
	progress Progress
	renderer Renderer
	now      func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunLogger sets the logger and the run log it records into.
func WithRunLogger(logger *slog.Logger, runLog *log.RunLog) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
		r.runLog = runLog
	}
}

// WithProgress sets the progress display.
func WithProgress(p Progress) RunnerOption {
	return func(r *Runner) {
		r.progress = p
	}
}

// WithRenderer replaces the preview renderer.
func WithRenderer(renderer Renderer) RunnerOption {
	return func(r *Runner) {
		r.renderer = renderer
	}
}

// WithClock sets the time source used for the log file name.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a Runner for cfg.
func NewRunner(cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil || r.runLog == nil {
		r.logger, r.runLog = log.NewRunLogger(io.Discard, cfg.Verbose)
	}
	if r.progress == nil {
		r.progress = nopProgress{}
	}
	if r.renderer == nil {
		r.renderer = render.New(
			render.WithSize(cfg.Size),
			render.WithSupersample(cfg.Supersample),
			render.WithSimplify(cfg.SimplifyAbove, cfg.SimplifyFactor),
			render.WithPalette(render.NewPalette(cfg.Colors.MarkedA, cfg.Colors.MarkedC, cfg.Colors.Default)),
			render.WithLogger(r.logger),
		)
	}
	return r
}

// Pipeline returns the steps of a run.
func (r *Runner) Pipeline() *Pipeline {
	p := New(WithLogger(r.logger))
	p.AddSteps(
		NewLocateStep(r.cfg.Extension, r.logger),
		NewRenderStep(
			NewBatchRenderer(r.renderer,
				WithConcurrency(r.cfg.Jobs),
				WithBatchLogger(r.logger),
			),
			r.progress,
			r.logger,
		),
		NewChecklistStep(r.cfg.OutputPath(), r.logger),
	)
	return p
}

// Run validates the root directory, executes the pipeline, removes the
// scratch directory and writes the run log. The returned Outcome is non-nil
// whenever the run started, even if it failed or was cancelled.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	if err := locate.ValidateRoot(r.cfg.Root); err != nil {
		return nil, err
	}

	job := NewJob(r.cfg.Root)
	r.logger.Debug("starting run", "run", job.Run.ID, "dir", r.cfg.Root)

	scratch, cleanup, err := r.scratch()
	if err != nil {
		return nil, err
	}
	job.Run.ScratchDir = scratch

	runErr := func() error {
		defer cleanup()
		return r.Pipeline().Execute(ctx, job)
	}()

	finished := r.now()
	logPath, flushErr := r.runLog.Flush(r.cfg.LogPath(), finished)

	return &Outcome{
		Job:     job,
		LogPath: logPath,
		Summary: report.NewSummary(job.Run, job.Failures, logPath, finished),
	}, errors.Join(runErr, flushErr)
}

// scratch prepares the preview directory and returns its cleanup function.
func (r *Runner) scratch() (string, func(), error) {
	if dir := r.cfg.PreviewDir; dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", nil, fmt.Errorf("failed to create preview directory: %w", err)
		}
		r.logger.Info("using preview directory", "dir", dir)
		return dir, func() {
			r.logger.Info("previews kept", "dir", dir)
		}, nil
	}

	dir, err := os.MkdirTemp("", scratchPattern)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	r.logger.Info("using temporary directory for previews", "dir", dir)
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			r.logger.Warn("failed to delete temporary previews", "dir", dir, "error", err)
			return
		}
		r.logger.Info("temporary previews deleted", "dir", dir)
	}, nil
}
