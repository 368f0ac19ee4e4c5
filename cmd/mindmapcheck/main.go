// Package main provides the entry point for the mindmapcheck CLI.
//
// mindmapcheck is a consistency checker for the CPTS-Companion seed data.
// It cross-references the modules and mindmaps collections and reports
// every module that no mindmap refers to.
//
// Usage:
//
//	mindmapcheck check
//	mindmapcheck check --modules seed/modules.json --mindmaps seed/mindmaps.json
//
// See --help for all available options.
package main

// main is the entry point for mindmapcheck.
func main() {
	Execute()
}
