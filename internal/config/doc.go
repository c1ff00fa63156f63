// Package config loads, normalizes, and validates samplesort configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files and honours the SAMPLESORT_SOURCE_DIR and SAMPLESORT_DEST_DIR
// environment fallbacks. Command-line flags are applied on top by the CLI
// before Validate runs again.
package config
