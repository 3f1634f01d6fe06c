package pipeline

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress reports rendering progress to the user.
type Progress interface {
	// Start announces that total files are about to be rendered.
	Start(total int)
	// Step marks one file as done. It may be called concurrently.
	Step()
	// Finish ends the display.
	Finish()
}

// ConsoleProgress prints the file count and, optionally, a progress bar.
type ConsoleProgress struct {
	out    io.Writer
	barOut io.Writer
	bar    *progressbar.ProgressBar
}

// NewConsoleProgress creates a ConsoleProgress printing messages to out and
// the bar to barOut. A nil barOut disables the bar.
func NewConsoleProgress(out, barOut io.Writer) *ConsoleProgress {
	return &ConsoleProgress{out: out, barOut: barOut}
}

// Start prints "Processing N STL files..." and starts the bar.
func (p *ConsoleProgress) Start(total int) {
	fmt.Fprintf(p.out, "Processing %d STL files...\n", total)
	if p.barOut == nil || total == 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.barOut),
		progressbar.OptionSetDescription("Processing STL files"),
		progressbar.OptionSetItsString("file"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.barOut)
		}),
	)
}

// Step advances the bar by one file.
func (p *ConsoleProgress) Step() {
	if p.bar != nil {
		_ = p.bar.Add(1) //nolint:errcheck // display only
	}
}

// Finish completes the bar.
func (p *ConsoleProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish() //nolint:errcheck // display only
	}
}

type nopProgress struct{}

func (nopProgress) Start(int) {}
func (nopProgress) Step()     {}
func (nopProgress) Finish()   {}
