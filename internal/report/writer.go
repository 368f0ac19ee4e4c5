package report

import (
	"io"

	"github.com/Novice130/CPTS-Companion/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a coverage report in a specific format.
//
// Design decision: We use an interface so the check command can pick a
// format at runtime and tests can render into a buffer, without the
// checker knowing anything about presentation.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.CoverageReport) (int, error)
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
