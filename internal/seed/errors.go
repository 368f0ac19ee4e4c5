package seed

import "errors"

// Seed loading errors.
// These are package-level sentinel errors so callers can classify failures
// with errors.Is while the boundary still prints a readable message.
var (
	// ErrSeedNotFound is returned when a seed file does not exist.
	ErrSeedNotFound = errors.New("seed file not found")

	// ErrMalformedSeed is returned when a seed file is not valid JSON or
	// its top level is not an array of records.
	ErrMalformedSeed = errors.New("malformed seed file")
)
