// Package config provides configuration structures and utilities for
// mindmapcheck. It defines the seed file locations, report format options,
// and the optional .mindmapcheck configuration file.
package config
