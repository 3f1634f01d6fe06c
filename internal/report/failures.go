package report

import (
	"fmt"
	"sync"

	"github.com/nao1215/printcheck/internal/model"
)

// Failures is the ordered list of files whose preview could not be created.
// It is safe for concurrent use.
type Failures struct {
	mu    sync.Mutex
	names []string
}

// NewFailures creates an empty Failures list.
func NewFailures() *Failures {
	return &Failures{}
}

// Add records file as failed.
func (f *Failures) Add(file model.ModelFile) {
	f.AddName(file.QualifiedName())
}

// AddName records a folder-qualified file name as failed.
func (f *Failures) AddName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, name)
}

// Names returns the failed names in the order they were added.
func (f *Failures) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...)
}

// Len returns the number of failures.
func (f *Failures) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.names)
}

// Summary returns the human-readable outcome line.
func (f *Failures) Summary() string {
	if n := f.Len(); n > 0 {
		return fmt.Sprintf("%d STL previews could not be created.", n)
	}
	return "All STL previews were created successfully."
}

// SummaryWithLog returns Summary followed by a pointer to the log file.
func (f *Failures) SummaryWithLog(logPath string) string {
	if logPath == "" {
		return f.Summary()
	}
	return fmt.Sprintf("%s See %s for details.", f.Summary(), logPath)
}
