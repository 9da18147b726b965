package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/YellowKidokc/File-Organization/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options. Credentials are
// populated so credential gating passes unless a test removes them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.LLM.Provider = "openai"
	cfgVal.LLM.Model = "gpt-4o-mini"
	cfgVal.LLM.OpenAIAPIKey = "test"

	builder := &configBuilder{cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithProvider sets the provider and its API key on the test config.
func WithProvider(provider, key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.Provider = provider
		switch provider {
		case "openai":
			b.cfg.LLM.OpenAIAPIKey = key
		case "anthropic":
			b.cfg.LLM.AnthropicAPIKey = key
		}
	}
}

// WithoutCredentials clears every API key so credential gating trips.
func WithoutCredentials() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.OpenAIAPIKey = ""
		b.cfg.LLM.AnthropicAPIKey = ""
	}
}

// WithPromptsDir points the config at a prompt template override directory.
func WithPromptsDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.PromptsDir = dir
	}
}
