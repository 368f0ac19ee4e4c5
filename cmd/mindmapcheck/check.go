package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Novice130/CPTS-Companion/internal/checker"
	"github.com/Novice130/CPTS-Companion/internal/config"
	applog "github.com/Novice130/CPTS-Companion/internal/log"
	"github.com/Novice130/CPTS-Companion/internal/model"
	"github.com/Novice130/CPTS-Companion/internal/report"
	"github.com/Novice130/CPTS-Companion/internal/seed"
)

// errReported marks failures that were already written to stdout as the
// single-line diagnostic. Execute must not print them a second time, but
// the process still exits non-zero.
var errReported = errors.New("check failed")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every module has at least one mindmap",
		Long: `Check loads the modules and mindmaps seed files, builds the set of module
IDs referenced by mindmaps, and reports every module whose 1-based position
is not in that set.

The report goes to stdout. On any failure the output is a single line
starting with "Error:" and the process exits non-zero.

Examples:
  # Check the default seed files
  mindmapcheck check

  # Check seed files at custom locations
  mindmapcheck check --modules data/modules.json --mindmaps data/mindmaps.json

  # Output a JSON or Markdown report
  mindmapcheck check --json
  mindmapcheck check --markdown

  # Write a Markdown report to a file
  mindmapcheck check --markdown -o coverage.md

Configuration file (.mindmapcheck) example:
  seed:
    modules: seed/modules.json
    mindmaps: seed/mindmaps.json`,
		Args: cobra.NoArgs,
		RunE: runCheckCmd,
	}

	// Seed location flags
	cmd.Flags().String("modules", config.DefaultModulesPath,
		"Path to the modules seed file")
	cmd.Flags().String("mindmaps", config.DefaultMindmapsPath,
		"Path to the mindmaps seed file")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .mindmapcheck in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Single top-level error boundary: every failure past this point
	// becomes one diagnostic line on stdout and nothing else.
	coverage, err := runCheck(cfg, logger)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		return errReported
	}

	if err := outputReport(cmd, cfg, coverage); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		return errReported
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags beat file values, which beat defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load seed path overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue with defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if cf.Seed.Modules != "" {
			cfg.ModulesPath = cf.Seed.Modules
		}
		if cf.Seed.Mindmaps != "" {
			cfg.MindmapsPath = cf.Seed.Mindmaps
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Explicitly set flags override config file values.
	if cmd.Flags().Changed("modules") || configPath == "" {
		cfg.ModulesPath, err = cmd.Flags().GetString("modules")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("mindmaps") || configPath == "" {
		cfg.MindmapsPath, err = cmd.Flags().GetString("mindmaps")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// Logs go to stderr so stdout stays reserved for the report.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(applog.NewPathHandler(handler))
}

// runCheck loads both collections and cross-references them.
// The report is fully computed before anything is written, so a mid-run
// failure never leaves a partial report behind.
func runCheck(cfg *config.Config, logger *slog.Logger) (*model.CoverageReport, error) {
	logger.Debug("loading seed data",
		"modules", cfg.ModulesPath,
		"mindmaps", cfg.MindmapsPath,
	)

	modules, err := seed.LoadModules(cfg.ModulesPath)
	if err != nil {
		return nil, err
	}

	mindmaps, err := seed.LoadMindmaps(cfg.MindmapsPath)
	if err != nil {
		return nil, err
	}

	c := checker.New(checker.WithLogger(logger))
	return c.Check(modules, mindmaps)
}

// outputReport renders the report in the requested format.
func outputReport(cmd *cobra.Command, cfg *config.Config, coverage *model.CoverageReport) error {
	output := cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewTextWriter(output)
	}

	_, err := w.Write(coverage)
	return err
}
