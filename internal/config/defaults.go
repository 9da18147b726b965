package config

const (
	defaultLogDir           = "~/.local/share/organizer/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultProvider         = "openai"
	defaultModel            = "gpt-4o-mini"
)

// defaultExcludes lists the version-control and cache directory names the
// scanner skips when the config and CLI add nothing.
var defaultExcludes = []string{".git", ".hg", ".svn", "__pycache__", "node_modules", ".venv"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		LLM: LLM{
			Provider: defaultProvider,
			Model:    defaultModel,
		},
		Scan: Scan{
			Exclude: append([]string(nil), defaultExcludes...),
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
