package preflight

import (
	"github.com/YellowKidokc/File-Organization/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Options carries the inputs checks need beyond the config itself.
type Options struct {
	ConfigPath   string
	ConfigExists bool
	Root         string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config, opts Options) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckConfigFile(opts.ConfigPath, opts.ConfigExists),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckScanRoot(opts.Root),
		CheckCredentials(cfg),
		CheckPromptTemplates(cfg),
	}
	return results
}

// AllPassed reports whether every check in the slice passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
