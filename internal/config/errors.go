package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoModulesPath is returned when the modules seed path is empty.
	ErrNoModulesPath = errors.New("no modules path: provide --modules or a seed.modules config entry")

	// ErrNoMindmapsPath is returned when the mindmaps seed path is empty.
	ErrNoMindmapsPath = errors.New("no mindmaps path: provide --mindmaps or a seed.mindmaps config entry")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
