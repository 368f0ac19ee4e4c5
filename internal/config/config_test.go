package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with the expected
// default values. Changes to defaults should be intentional, so the tests
// pin them down.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default ModulesPath is seed/modules.json", func(t *testing.T) {
		t.Parallel()
		if cfg.ModulesPath != "seed/modules.json" {
			t.Errorf("expected ModulesPath to be 'seed/modules.json', got %q", cfg.ModulesPath)
		}
	})

	t.Run("default MindmapsPath is seed/mindmaps.json", func(t *testing.T) {
		t.Parallel()
		if cfg.MindmapsPath != "seed/mindmaps.json" {
			t.Errorf("expected MindmapsPath to be 'seed/mindmaps.json', got %q", cfg.MindmapsPath)
		}
	})

	t.Run("default report format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected both JSONReport and MarkdownReport to default to false")
		}
	})

	t.Run("default report destination is stdout", func(t *testing.T) {
		t.Parallel()
		if cfg.ReportFile != "" {
			t.Errorf("expected empty ReportFile, got %q", cfg.ReportFile)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty modules path returns ErrNoModulesPath", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ModulesPath = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoModulesPath) {
			t.Errorf("expected ErrNoModulesPath, got %v", err)
		}
	})

	t.Run("empty mindmaps path returns ErrNoMindmapsPath", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MindmapsPath = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoMindmapsPath) {
			t.Errorf("expected ErrNoMindmapsPath, got %v", err)
		}
	})

	t.Run("both report formats returns ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("single report format is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MarkdownReport = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestLoadConfigFile tests loading the YAML configuration file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads seed path overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "seed:\n  modules: data/modules.json\n  mindmaps: data/mindmaps.json\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Seed.Modules != "data/modules.json" {
			t.Errorf("expected modules override 'data/modules.json', got %q", cf.Seed.Modules)
		}
		if cf.Seed.Mindmaps != "data/mindmaps.json" {
			t.Errorf("expected mindmaps override 'data/mindmaps.json', got %q", cf.Seed.Mindmaps)
		}
	})

	t.Run("empty file yields zero values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Seed.Modules != "" || cf.Seed.Mindmaps != "" {
			t.Errorf("expected empty overrides, got %+v", cf.Seed)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("seed: [broken"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected an error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests configuration file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned as-is", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("seed:\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty string", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}
