// Package log provides slog handler utilities for mindmapcheck.
// Its PathHandler masks the user's home directory in logged file paths so
// verbose logs can be shared without exposing local account names.
package log
