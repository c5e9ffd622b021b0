package preflight

import (
	"imusemap/internal/config"
	"imusemap/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable directory checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Input directory", cfg.Paths.InputDir, false),
	}
	if cfg.Paths.OutputDir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir, true))
	}
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir, true))
	return results
}

// CheckSystemDeps evaluates the external binaries for the given config.
// Both the status command and the generate command use this so the
// requirements list lives in one place.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.Requirements(cfg.FFprobeBinary()))
}
