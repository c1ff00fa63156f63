package config

const (
	defaultConfigPath      = "~/.config/samplesort/config.toml"
	projectConfigName      = "samplesort.toml"
	defaultStateDir        = "~/.local/share/samplesort"
	ledgerFileName         = "ledger.db"
	defaultMode            = "symlink"
	defaultMaxPathLength   = 128
	defaultMaxFolderLength = 24
	defaultLedgerEnabled   = true
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"

	envSourceDir = "SAMPLESORT_SOURCE_DIR"
	envDestDir   = "SAMPLESORT_DEST_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Placement: Placement{
			Mode:            defaultMode,
			MaxPathLength:   defaultMaxPathLength,
			MaxFolderLength: defaultMaxFolderLength,
		},
		Ledger: Ledger{
			Enabled: defaultLedgerEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
