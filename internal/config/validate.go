package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"samplesort/internal/failure"
	"samplesort/internal/layout"
)

var (
	validModes      = []string{"symlink", "copy", "move"}
	validLogFormats = []string{"console", "json"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable. Source and destination are
// checked by ValidateRun because other commands do not need them.
func (c *Config) Validate() error {
	if !slices.Contains(validModes, c.Placement.Mode) {
		return configError("placement.mode %q is not one of %s", c.Placement.Mode, strings.Join(validModes, ", "))
	}
	if c.Placement.MaxFolderLength < 1 {
		return configError("placement.max_folder_length must be positive")
	}
	if minimum := c.MinPathLength(); c.Placement.MaxPathLength < minimum {
		if c.Placement.PackFolders {
			return configError("placement.max_path_length must be at least %d with pack_folders and max_folder_length %d", minimum, c.Placement.MaxFolderLength)
		}
		return configError("placement.max_path_length must be at least %d", minimum)
	}
	if !slices.Contains(validLogFormats, c.Logging.Format) {
		return configError("logging.format %q is not one of %s", c.Logging.Format, strings.Join(validLogFormats, ", "))
	}
	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return configError("logging.level %q is not one of %s", c.Logging.Level, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// MinPathLength is the smallest max_path_length under which the longest
// category, plus the pack folder when enabled, still fits a digest-only name.
func (c *Config) MinPathLength() int {
	if c.Placement.PackFolders {
		return layout.MinBudget(c.Placement.MaxFolderLength)
	}
	return layout.MinBudget(0)
}

// ValidateRun checks the settings an organize run needs on top of Validate.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Paths.SourceDir == "" {
		return configError("paths.source_dir is required (set it in the config, %s or --source)", envSourceDir)
	}
	if c.Paths.DestDir == "" {
		return configError("paths.dest_dir is required (set it in the config, %s or --dest)", envDestDir)
	}
	if c.Paths.DestDir == c.Paths.SourceDir {
		return configError("paths.dest_dir and paths.source_dir must differ")
	}
	if within(c.Paths.DestDir, c.Paths.SourceDir) {
		return configError("paths.dest_dir %s must not be inside paths.source_dir", c.Paths.DestDir)
	}
	return nil
}

func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func configError(format string, args ...any) error {
	return failure.Wrap(failure.ErrConfiguration, "config", "", fmt.Sprintf(format, args...), nil)
}
