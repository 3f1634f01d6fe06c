// Package config provides configuration structures and utilities for printcheck.
// It defines the run options (scan root, output locations, preview size,
// concurrency) and loads optional overrides from a YAML file.
package config
