// Package model defines the data structures shared across mindmapcheck:
// the seed records (modules and mindmaps) and the coverage report derived
// from cross-referencing them.
package model
