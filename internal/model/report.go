package model

import "time"

// CoverageReport is the result of one consistency check.
//
// Design decision: the checker returns a structured report rather than
// printing directly because:
//  1. It separates the membership computation from presentation
//  2. The same report feeds the text, JSON, and Markdown writers
//  3. Tests can assert on fields instead of scraping output
type CoverageReport struct {
	// TotalModules is the number of records in the modules collection.
	TotalModules int `json:"total_modules"`

	// TotalMindmaps is the number of records in the mindmaps collection.
	TotalMindmaps int `json:"total_mindmaps"`

	// Missing lists every module no mindmap refers to, in ascending ID
	// order. Empty when coverage is complete.
	Missing []MissingModule `json:"missing_modules,omitempty"`

	// CheckedAt is when the check was performed.
	CheckedAt time.Time `json:"checked_at"`
}

// MissingModule pairs a module's positional ID with its title.
// It is emitted only for modules absent from the referenced-ID set.
type MissingModule struct {
	// ID is the module's 1-based position in the modules seed file.
	ID int `json:"id"`

	// Title is the module's display title.
	Title string `json:"title"`
}

// AllCovered reports whether every module has at least one mindmap.
func (r *CoverageReport) AllCovered() bool {
	return len(r.Missing) == 0
}
