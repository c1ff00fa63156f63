package preflight

import (
	"samplesort/internal/config"
	"samplesort/internal/failure"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Marker classifies a failed check for failure.ExitCode.
	Marker error
}

// RunAll executes the checks an organize run needs. Dry runs only read the
// destination and never open the ledger.
func RunAll(cfg *config.Config, dryRun bool) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{CheckSourceDirectory(cfg.Paths.SourceDir)}
	if dryRun {
		return append(results, CheckReadable("Destination directory", cfg.Paths.DestDir))
	}
	results = append(results, CheckCreatable("Destination directory", cfg.Paths.DestDir))
	if cfg.Ledger.Enabled {
		results = append(results, CheckCreatable("State directory", cfg.Paths.StateDir))
	}
	return results
}

// Err returns the first failed result as a wrapped error, or nil.
func Err(results []Result) error {
	for _, result := range results {
		if result.Passed {
			continue
		}
		return failure.Wrap(result.Marker, "preflight", result.Name, result.Detail, nil)
	}
	return nil
}
