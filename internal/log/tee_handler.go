package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// TeeHandler fans each record out to several slog handlers.
// A record is passed to every handler that is enabled for its level.
type TeeHandler struct {
	handlers []slog.Handler
}

// NewTeeHandler creates a TeeHandler over the given handlers.
// Nil handlers are skipped.
func NewTeeHandler(handlers ...slog.Handler) *TeeHandler {
	hs := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}
	return &TeeHandler{handlers: hs}
}

// Enabled reports whether any underlying handler handles the level.
func (h *TeeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes a clone of the record to each enabled handler.
// All handlers are called; their errors are joined.
func (h *TeeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, hh := range h.handlers {
		if !hh.Enabled(ctx, r.Level) {
			continue
		}
		if err := hh.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a new TeeHandler whose handlers carry the attributes.
func (h *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		hs[i] = hh.WithAttrs(attrs)
	}
	return &TeeHandler{handlers: hs}
}

// WithGroup returns a new TeeHandler whose handlers use the group.
func (h *TeeHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		hs[i] = hh.WithGroup(name)
	}
	return &TeeHandler{handlers: hs}
}

// NewLogger creates a console text logger.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(newConsoleHandler(w, verbose))
}

func newConsoleHandler(w io.Writer, verbose bool) slog.Handler {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewRunLogger creates the logger used for a checklist run.
// Records at Info and above are kept in the returned RunLog. The console
// receives warnings, or everything from Debug up when verbose is set.
// A nil console disables console output.
func NewRunLogger(console io.Writer, verbose bool) (*slog.Logger, *RunLog) {
	runLog := NewRunLog()
	runHandler := slog.NewTextHandler(runLog, &slog.HandlerOptions{Level: slog.LevelInfo})

	var consoleHandler slog.Handler
	if console != nil {
		consoleHandler = newConsoleHandler(console, verbose)
	}

	return slog.New(NewTeeHandler(runHandler, consoleHandler)), runLog
}
