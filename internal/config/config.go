package config

// Default configuration values.
const (
	// DefaultModulesPath is the well-known location of the module catalog,
	// relative to the repository root. The checker works with no flags when
	// run from there.
	DefaultModulesPath = "seed/modules.json"

	// DefaultMindmapsPath is the well-known location of the mindmap catalog.
	DefaultMindmapsPath = "seed/mindmaps.json"

	// AppName is the application name used for XDG directory paths.
	AppName = "mindmapcheck"
)

// Config holds all options for one check run.
// This struct is populated from CLI flags and the optional configuration
// file, then passed through the application via dependency injection rather
// than global state.
type Config struct {
	// ModulesPath is the location of the modules seed file.
	ModulesPath string

	// MindmapsPath is the location of the mindmaps seed file.
	MindmapsPath string

	// ConfigFilePath is an explicit configuration file location.
	// Empty means the file is discovered in the standard locations.
	ConfigFilePath string

	// JSONReport selects JSON report output.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	MarkdownReport bool

	// ReportFile writes the report to this path instead of stdout.
	// Empty keeps the report ephemeral on stdout.
	ReportFile string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		ModulesPath:  DefaultModulesPath,
		MindmapsPath: DefaultMindmapsPath,
	}
}

// Validate checks the configuration for contradictions.
// Returns one of the sentinel errors defined in errors.go.
func (c *Config) Validate() error {
	if c.ModulesPath == "" {
		return ErrNoModulesPath
	}
	if c.MindmapsPath == "" {
		return ErrNoMindmapsPath
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
