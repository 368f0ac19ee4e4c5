package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Novice130/CPTS-Companion/internal/model"
)

// TextWriter outputs the plain-text coverage report.
//
// The shape is fixed: two count lines, a blank line, then either the
// missing-module list or the all-covered message. Scripts scrape this
// output, so it must stay byte-stable.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in plain text.
// The full report is built in memory and written once, so a failing
// destination never receives a partial report.
func (w *TextWriter) Write(report *model.CoverageReport) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total Modules: %d\n", report.TotalModules)
	fmt.Fprintf(&sb, "Total Mindmaps: %d\n", report.TotalMindmaps)
	sb.WriteString("\n")

	if report.AllCovered() {
		sb.WriteString("All modules have at least one mindmap.\n")
	} else {
		sb.WriteString("Modules missing mindmaps:\n")
		for _, m := range report.Missing {
			fmt.Fprintf(&sb, "ID %d: %s\n", m.ID, m.Title)
		}
	}

	return w.output.Write([]byte(sb.String()))
}
