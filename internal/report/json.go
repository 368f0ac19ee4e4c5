package report

import (
	"encoding/json"
	"io"

	"github.com/Novice130/CPTS-Companion/internal/model"
)

// JSONWriter outputs the coverage report as indented JSON.
// This format is for tools that consume the report programmatically.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as indented JSON followed by a newline.
func (w *JSONWriter) Write(report *model.CoverageReport) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
