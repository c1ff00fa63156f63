package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"samplesort/internal/config"
	"samplesort/internal/failure"
	"samplesort/internal/layout"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SAMPLESORT_SOURCE_DIR", "")
	t.Setenv("SAMPLESORT_DEST_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "samplesort", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "samplesort"); cfg.Paths.StateDir != want {
		t.Fatalf("state dir = %q, want %q", cfg.Paths.StateDir, want)
	}
	if cfg.Placement.Mode != "symlink" || cfg.Placement.MaxPathLength != 128 || cfg.Placement.MaxFolderLength != 24 {
		t.Fatalf("unexpected placement defaults: %+v", cfg.Placement)
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	if cfg.LedgerPath() != filepath.Join(cfg.Paths.StateDir, "ledger.db") {
		t.Fatalf("unexpected ledger path %q", cfg.LedgerPath())
	}
}

func TestLoadCustomFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "samplesort.toml")

	content := `
[paths]
source_dir = "~/Samples"
dest_dir = "~/Sorted"

[placement]
mode = " COPY "
pack_folders = true

[logging]
format = "JSON"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Paths.SourceDir != filepath.Join(tempHome, "Samples") {
		t.Fatalf("source dir = %q", cfg.Paths.SourceDir)
	}
	if cfg.Placement.Mode != "copy" || !cfg.Placement.PackFolders {
		t.Fatalf("unexpected placement %+v", cfg.Placement)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if err := cfg.ValidateRun(); err != nil {
		t.Fatalf("ValidateRun: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "mode", content: "[placement]\nmode = \"teleport\"\n", want: "placement.mode"},
		{name: "budget", content: "[placement]\nmax_path_length = 10\n", want: "max_path_length"},
		{name: "budget with pack folders", content: "[placement]\nmax_path_length = 40\npack_folders = true\n", want: "pack_folders"},
		{name: "format", content: "[logging]\nformat = \"xml\"\n", want: "logging.format"},
		{name: "level", content: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "unknown key", content: "[placement]\nflavour = \"spicy\"\n", want: "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, failure.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMinPathLengthFollowsPackFolders(t *testing.T) {
	tests := []struct {
		name        string
		budget      int
		packFolders bool
		folderLen   int
		ok          bool
	}{
		{name: "flat at floor", budget: layout.MinBudget(0), ok: true},
		{name: "flat below floor", budget: layout.MinBudget(0) - 1},
		{name: "flat 40", budget: 40, ok: true},
		{name: "pack 40", budget: 40, packFolders: true, folderLen: 24},
		{name: "pack at floor", budget: layout.MinBudget(24), packFolders: true, folderLen: 24, ok: true},
		{name: "pack below floor", budget: layout.MinBudget(24) - 1, packFolders: true, folderLen: 24},
		{name: "pack short folders", budget: 40, packFolders: true, folderLen: 8, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Placement.MaxPathLength = tt.budget
			cfg.Placement.PackFolders = tt.packFolders
			if tt.folderLen > 0 {
				cfg.Placement.MaxFolderLength = tt.folderLen
			}
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, failure.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestValidateRun(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		name   string
		source string
		dest   string
		ok     bool
	}{
		{name: "ok", source: filepath.Join(base, "src"), dest: filepath.Join(base, "dst"), ok: true},
		{name: "missing source", dest: filepath.Join(base, "dst")},
		{name: "missing dest", source: filepath.Join(base, "src")},
		{name: "same", source: base, dest: base},
		{name: "nested", source: base, dest: filepath.Join(base, "sorted")},
		{name: "sibling prefix", source: filepath.Join(base, "src"), dest: filepath.Join(base, "src2"), ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.SourceDir = tt.source
			cfg.Paths.DestDir = tt.dest
			err := cfg.ValidateRun()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, failure.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestEnvironmentFallbacks(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	t.Setenv("SAMPLESORT_SOURCE_DIR", src)
	t.Setenv("SAMPLESORT_DEST_DIR", dst)

	cfg := config.Default()
	if err := cfg.Normalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.SourceDir != src || cfg.Paths.DestDir != dst {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
}

func TestCreateSampleDecodesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected CreateSample to refuse overwriting")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample config does not decode: %v", err)
	}
	want := config.Default()
	if decoded.Placement != want.Placement || decoded.Ledger != want.Ledger || decoded.Logging != want.Logging {
		t.Fatalf("sample config drifted from defaults: %+v", decoded)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := config.Default()
	out, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mode = 'symlink'") && !strings.Contains(out, `mode = "symlink"`) {
		t.Fatalf("unexpected encoding %q", out)
	}
}
