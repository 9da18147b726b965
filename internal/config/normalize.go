package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLLM()
	c.normalizeScan()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.PromptsDir = strings.TrimSpace(c.Paths.PromptsDir)
	if c.Paths.PromptsDir != "" {
		if c.Paths.PromptsDir, err = expandPath(c.Paths.PromptsDir); err != nil {
			return fmt.Errorf("paths.prompts_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLLM() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		if value, ok := os.LookupEnv("MODEL_PROVIDER"); ok && strings.TrimSpace(value) != "" {
			c.LLM.Provider = strings.ToLower(strings.TrimSpace(value))
		} else {
			c.LLM.Provider = defaultProvider
		}
	}
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.Model == "" {
		if value, ok := os.LookupEnv("MODEL_NAME"); ok && strings.TrimSpace(value) != "" {
			c.LLM.Model = strings.TrimSpace(value)
		} else {
			c.LLM.Model = defaultModel
		}
	}
	c.LLM.OpenAIAPIKey = strings.TrimSpace(c.LLM.OpenAIAPIKey)
	if c.LLM.OpenAIAPIKey == "" {
		if value, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
			c.LLM.OpenAIAPIKey = strings.TrimSpace(value)
		}
	}
	c.LLM.AnthropicAPIKey = strings.TrimSpace(c.LLM.AnthropicAPIKey)
	if c.LLM.AnthropicAPIKey == "" {
		if value, ok := os.LookupEnv("ANTHROPIC_API_KEY"); ok {
			c.LLM.AnthropicAPIKey = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeScan() {
	if len(c.Scan.Exclude) == 0 {
		c.Scan.Exclude = append([]string(nil), defaultExcludes...)
		return
	}
	names := make([]string, 0, len(c.Scan.Exclude))
	seen := make(map[string]struct{}, len(c.Scan.Exclude))
	for _, name := range c.Scan.Exclude {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		names = append(names, trimmed)
	}
	if len(names) == 0 {
		names = append([]string(nil), defaultExcludes...)
	}
	c.Scan.Exclude = names
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
