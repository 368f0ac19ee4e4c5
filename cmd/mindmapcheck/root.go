// Package main provides the entry point for the mindmapcheck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for mindmapcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mindmapcheck",
		Short: "Consistency checker for module and mindmap seed data",
		Long: `mindmapcheck cross-references the modules and mindmaps seed files and
reports every module that no mindmap refers to.

A module's identity is its 1-based position in the modules file; a mindmap
refers to a module through its module_id field.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// Check failures have already written their single diagnostic line to
// stdout; everything else is printed to stderr here.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
