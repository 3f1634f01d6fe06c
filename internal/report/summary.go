package report

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nao1215/printcheck/internal/model"
)

// FileStatus is the outcome of one model file.
type FileStatus struct {
	Name      string     `json:"name"`
	Folder    string     `json:"folder"`
	Preview   bool       `json:"preview"`
	Tint      model.Tint `json:"tint"`
	Triangles int        `json:"triangles,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Summary is the outcome of one run.
type Summary struct {
	RunID      string        `json:"run_id"`
	Root       string        `json:"root"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`
	Total      int           `json:"total"`
	Rendered   int           `json:"rendered"`
	Failed     []string      `json:"failed"`
	Folders    []string      `json:"folders"`
	Files      []FileStatus  `json:"files"`
	OutputPath string        `json:"output_path,omitempty"`
	OutputSize int64         `json:"output_size,omitempty"`
	LogPath    string        `json:"log_path,omitempty"`
	Cancelled  bool          `json:"cancelled,omitempty"`
	Message    string        `json:"message"`
}

// NewSummary builds the summary of run. finished is the time the run ended.
func NewSummary(run *model.Run, failures *Failures, logPath string, finished time.Time) *Summary {
	s := &Summary{
		RunID:      run.ID,
		Root:       run.Root,
		StartedAt:  run.StartedAt,
		Duration:   finished.Sub(run.StartedAt),
		Total:      len(run.Files),
		Rendered:   run.RenderedCount(),
		Failed:     failures.Names(),
		Folders:    run.Folders(),
		OutputPath: run.OutputPath,
		OutputSize: run.OutputSize,
		LogPath:    logPath,
		Cancelled:  run.Cancelled,
		Message:    failures.SummaryWithLog(logPath),
	}
	if s.Failed == nil {
		s.Failed = []string{}
	}

	s.Files = make([]FileStatus, len(run.Files))
	for i, f := range run.Files {
		st := FileStatus{Name: f.Name(), Folder: f.Folder()}
		if i < len(run.Results) {
			res := run.Results[i]
			st.Preview = res.OK()
			st.Tint = res.Tint
			st.Triangles = res.Triangles
			st.Error = res.Error()
		}
		s.Files[i] = st
	}
	return s
}

// FailedCount returns the number of files without a preview.
func (s *Summary) FailedCount() int {
	return len(s.Failed)
}

// HumanOutputSize returns the output size such as "12 kB".
func (s *Summary) HumanOutputSize() string {
	if s.OutputSize <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(s.OutputSize))
}

// HumanDuration returns the run duration rounded to milliseconds.
func (s *Summary) HumanDuration() string {
	return s.Duration.Round(time.Millisecond).String()
}
