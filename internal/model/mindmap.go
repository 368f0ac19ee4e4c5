package model

// Mindmap is a single record from the mindmaps seed file.
// Only the module reference matters for the coverage check; all other
// fields of the record are ignored.
type Mindmap struct {
	// ModuleID is the 1-based ID of the module this mindmap belongs to.
	// Absent and explicit-null values both decode to nil; such records are
	// valid and simply reference no module.
	ModuleID *int `json:"module_id"`
}
