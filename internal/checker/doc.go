// Package checker cross-references the module catalog against the mindmap
// catalog. It builds the set of module IDs referenced by mindmaps and
// reports every module whose positional ID is absent from that set.
package checker
