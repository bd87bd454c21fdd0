// Package config loads, normalizes, and validates the exifio configuration
// file. Settings are read from TOML, defaulted, path-expanded, and checked
// before any other package sees them; always obtain settings through this
// package rather than reading the file directly.
package config
