// Package report renders coverage reports in multiple output formats:
// plain text for the terminal, JSON for tooling, and Markdown for
// documentation.
package report
