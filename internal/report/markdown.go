package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/Novice130/CPTS-Companion/internal/model"
)

// MarkdownWriter outputs the coverage report in Markdown format, suitable
// for pasting into issues or study notes.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as a Markdown document.
func (w *MarkdownWriter) Write(report *model.CoverageReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Mindmap Coverage Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Collection", "Count"},
		Rows: [][]string{
			{"Modules", strconv.Itoa(report.TotalModules)},
			{"Mindmaps", strconv.Itoa(report.TotalMindmaps)},
		},
	})
	md.PlainText("")

	if report.AllCovered() {
		md.Tip("All modules have at least one mindmap.")
		return len(md.String()), md.Build()
	}

	md.H2("Modules missing mindmaps")
	md.PlainText("")

	rows := make([][]string, len(report.Missing))
	for i, m := range report.Missing {
		rows[i] = []string{strconv.Itoa(m.ID), m.Title}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Title"},
		Rows:   rows,
	})
	md.PlainText("")

	md.Warningf("%d module(s) have no mindmap yet.", len(report.Missing))

	return len(md.String()), md.Build()
}
