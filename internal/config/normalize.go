package config

import (
	"fmt"
	"os"
	"strings"
)

// Normalize expands paths, applies environment fallbacks and canonicalizes
// enum values. It is safe to call more than once.
func (c *Config) Normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePlacement()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		if value, ok := os.LookupEnv(envSourceDir); ok {
			c.Paths.SourceDir = value
		}
	}
	if strings.TrimSpace(c.Paths.DestDir) == "" {
		if value, ok := os.LookupEnv(envDestDir); ok {
			c.Paths.DestDir = value
		}
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"paths.source_dir", &c.Paths.SourceDir},
		{"paths.dest_dir", &c.Paths.DestDir},
		{"paths.state_dir", &c.Paths.StateDir},
		{"paths.log_dir", &c.Paths.LogDir},
	}
	for _, field := range fields {
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizePlacement() {
	c.Placement.Mode = strings.ToLower(strings.TrimSpace(c.Placement.Mode))
	if c.Placement.Mode == "" {
		c.Placement.Mode = defaultMode
	}
	if c.Placement.MaxPathLength == 0 {
		c.Placement.MaxPathLength = defaultMaxPathLength
	}
	if c.Placement.MaxFolderLength == 0 {
		c.Placement.MaxFolderLength = defaultMaxFolderLength
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
