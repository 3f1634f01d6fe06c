package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs the run summary as Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(s *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, s)
	w.writeResult(md, s)
	w.writeFolders(md, s)
	w.writeFailures(md, s)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s *Summary) {
	md.H1("PRINTCHECK Report")
	md.PlainText("")

	rows := [][]string{
		{"Run", "`" + s.RunID + "`"},
		{"Directory", "`" + s.Root + "`"},
		{"Started", s.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Duration", s.HumanDuration()},
	}
	if s.OutputPath != "" {
		rows = append(rows, []string{"Checklist", "`" + s.OutputPath + "` (" + s.HumanOutputSize() + ")"})
	}
	if s.LogPath != "" {
		rows = append(rows, []string{"Log", "`" + s.LogPath + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeResult(md *markdown.Markdown, s *Summary) {
	md.H2("Previews")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Result", "Count"},
		Rows: [][]string{
			{"✅ Created", strconv.Itoa(s.Rendered)},
			{"❌ Missing", strconv.Itoa(s.FailedCount())},
			{"**Total**", "**" + strconv.Itoa(s.Total) + "**"},
		},
	})
	md.PlainText("")

	if s.Total > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Preview Results"),
			piechart.WithShowData(true),
		)
		if s.Rendered > 0 {
			chart.LabelAndIntValue("Created", uint64(s.Rendered))
		}
		if s.FailedCount() > 0 {
			chart.LabelAndIntValue("Missing", uint64(s.FailedCount()))
		}
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	switch {
	case s.Cancelled:
		md.Cautionf("Run interrupted after %d of %d previews. No checklist was written.", s.Rendered+s.FailedCount(), s.Total)
	case s.FailedCount() > 0:
		md.Warningf("%d STL previews could not be created.", s.FailedCount())
	case s.Total == 0:
		md.Note("No STL files were found.")
	default:
		md.Tip("All STL previews were created successfully.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFolders(md *markdown.Markdown, s *Summary) {
	if len(s.Files) == 0 {
		return
	}
	md.H2("Files")
	md.PlainText("")

	rows := make([][]string, len(s.Files))
	for i, f := range s.Files {
		status := "✅"
		if !f.Preview {
			status = "❌ " + f.Error
		}
		rows[i] = []string{f.Folder, "`" + f.Name + "`", f.Tint.String(), status}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Folder", "File", "Colour", "Preview"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, s *Summary) {
	if s.FailedCount() == 0 {
		return
	}
	md.H2("Missing Previews")
	md.PlainText("")
	md.BulletList(s.Failed...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by printcheck*")
}
