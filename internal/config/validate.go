package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLLM() error {
	if strings.TrimSpace(c.LLM.Provider) == "" {
		return errors.New("llm.provider must be set")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model must be set")
	}
	return nil
}

func (c *Config) validateScan() error {
	for _, name := range c.Scan.Exclude {
		if strings.ContainsAny(name, "/\\") {
			return fmt.Errorf("scan.exclude entry %q must be a bare directory name, not a path", name)
		}
	}
	return nil
}

// CredentialIssues reports missing credentials for the selected provider.
// Providers other than openai and anthropic carry no credential requirement.
// An empty result means a request payload may be assembled.
func (c *Config) CredentialIssues() []string {
	var issues []string
	if c.LLM.Provider == "openai" && c.LLM.OpenAIAPIKey == "" {
		issues = append(issues, "OPENAI_API_KEY is required for the OpenAI provider.")
	}
	if c.LLM.Provider == "anthropic" && c.LLM.AnthropicAPIKey == "" {
		issues = append(issues, "ANTHROPIC_API_KEY is required for the Anthropic provider.")
	}
	return issues
}

// APIKey returns the credential backing the selected provider, or an empty
// string when the provider needs none or it is unset.
func (c *Config) APIKey() string {
	switch c.LLM.Provider {
	case "openai":
		return c.LLM.OpenAIAPIKey
	case "anthropic":
		return c.LLM.AnthropicAPIKey
	default:
		return ""
	}
}
