package report

import (
	"fmt"
	"io"
	"strings"
)

// SimpleWriter prints the summary line, and with verbose output the run
// details below it.
type SimpleWriter struct {
	baseWriter

	// verbose adds the per-run details.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the run details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary.
func (w *SimpleWriter) Write(s *Summary) (int, error) {
	var sb strings.Builder

	if s.Cancelled {
		sb.WriteString("Run interrupted, checklist not written.\n")
	}
	sb.WriteString(s.Message)
	sb.WriteString("\n")

	if w.verbose {
		sb.WriteString(fmt.Sprintf("  Run:       %s\n", s.RunID))
		sb.WriteString(fmt.Sprintf("  Directory: %s\n", s.Root))
		sb.WriteString(fmt.Sprintf("  Files:     %d (%d folders)\n", s.Total, len(s.Folders)))
		sb.WriteString(fmt.Sprintf("  Previews:  %d\n", s.Rendered))
		if s.OutputPath != "" {
			sb.WriteString(fmt.Sprintf("  Checklist: %s (%s)\n", s.OutputPath, s.HumanOutputSize()))
		}
		sb.WriteString(fmt.Sprintf("  Duration:  %s\n", s.HumanDuration()))
		for _, name := range s.Failed {
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		}
	}

	return io.WriteString(w.output, sb.String())
}
