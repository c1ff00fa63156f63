package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"samplesort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The source directory exists and is empty; the destination does not exist.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SourceDir = filepath.Join(base, "source")
	cfgVal.Paths.DestDir = filepath.Join(base, "sorted")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = ""
	if err := os.MkdirAll(cfgVal.Paths.SourceDir, 0o755); err != nil {
		t.Fatalf("mkdir source: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithMode sets the placement mode.
func WithMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Placement.Mode = mode
	}
}

// WithPackFolders enables the pack folder segment.
func WithPackFolders() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Placement.PackFolders = true
	}
}

// WithNonAudio also accepts MIDI, project and preset files.
func WithNonAudio() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Placement.IncludeNonAudio = true
	}
}

// WithoutLedger disables run history.
func WithoutLedger() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ledger.Enabled = false
	}
}

// WithMaxPathLength overrides the relative path budget.
func WithMaxPathLength(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Placement.MaxPathLength = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.SourceDir)
}
