package pipeline

import (
	"github.com/nao1215/printcheck/internal/checklist"
	"github.com/nao1215/printcheck/internal/model"
	"github.com/nao1215/printcheck/internal/report"
)

// Job is the state passed through the pipeline steps.
type Job struct {
	// Run holds the discovered files and their render results.
	Run *model.Run

	// Failures lists the files without a preview, in file order.
	Failures *report.Failures

	// Document is the checklist built from the run.
	Document *checklist.Document

	// Steps are the names of the steps that completed.
	Steps []string
}

// NewJob creates a Job scanning root.
func NewJob(root string) *Job {
	return &Job{
		Run:      model.NewRun(root),
		Failures: report.NewFailures(),
	}
}
