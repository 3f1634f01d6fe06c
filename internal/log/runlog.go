package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePrefix is the file name prefix of flushed run logs.
const LogFilePrefix = "PRINTCHECK_log_"

// timestampLayout formats the flush time as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// RunLog is an append-only, in-memory log of one run.
// It implements io.Writer so that an slog handler can write to it, and is
// written to disk once with Flush. It is safe for concurrent use.
type RunLog struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewRunLog creates an empty RunLog.
func NewRunLog() *RunLog {
	return &RunLog{}
}

// Write appends p to the log.
func (l *RunLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

// Lines returns the logged lines in order.
func (l *RunLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	text := strings.TrimRight(l.buf.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// FileName returns the log file name for a run flushed at now.
func FileName(now time.Time) string {
	return LogFilePrefix + now.Format(timestampLayout) + ".txt"
}

// Flush writes the log to dir/PRINTCHECK_log_<timestamp>.txt, creating dir
// if needed, and returns the file path.
func (l *RunLog) Flush(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName(now))

	l.mu.Lock()
	data := bytes.Clone(l.buf.Bytes())
	l.mu.Unlock()

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write log file: %w", err)
	}
	return path, nil
}
