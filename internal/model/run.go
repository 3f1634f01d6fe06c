package model

import (
	"time"

	"github.com/google/uuid"
)

// Run holds the state of one checklist run.
// The pipeline steps fill it in order: discovery sets Files, rendering sets
// Results (index aligned with Files), the checklist step sets OutputPath.
type Run struct {
	// ID identifies the run in log output.
	ID string `json:"id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Root is the scan root directory.
	Root string `json:"root"`

	// ScratchDir is where preview images are written during the run.
	ScratchDir string `json:"scratch_dir"`

	// Files are the discovered model files in (folder, name) order.
	Files []ModelFile `json:"files"`

	// Results holds one RenderResult per entry of Files.
	Results []RenderResult `json:"results"`

	// OutputPath is the saved checklist spreadsheet.
	OutputPath string `json:"output_path,omitempty"`

	// OutputSize is the size of the saved spreadsheet in bytes.
	OutputSize int64 `json:"output_size,omitempty"`

	// Cancelled is set when the run was interrupted before all files were
	// rendered.
	Cancelled bool `json:"cancelled,omitempty"`
}

// NewRun creates a Run for the given scan root.
func NewRun(root string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Root:      root,
	}
}

// RenderedCount returns the number of files with a preview image.
func (r *Run) RenderedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Folders returns the distinct folders of Files in first-seen order.
func (r *Run) Folders() []string {
	seen := make(map[string]struct{})
	var folders []string
	for _, f := range r.Files {
		folder := f.Folder()
		if _, ok := seen[folder]; ok {
			continue
		}
		seen[folder] = struct{}{}
		folders = append(folders, folder)
	}
	return folders
}
