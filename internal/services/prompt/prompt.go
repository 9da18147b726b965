package prompt

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/YellowKidokc/File-Organization/internal/config"
	"github.com/YellowKidokc/File-Organization/internal/services"
)

//go:embed templates/*.md
var templateFS embed.FS

// Placeholder marks where the file inventory is substituted into the user
// prompt template.
const Placeholder = "{{FILE_LIST}}"

const (
	systemTemplate = "system.md"
	userTemplate   = "organize.md"
)

// Request is the provider-agnostic payload assembled for a model call.
// Nothing in this package performs network traffic; callers decide what to
// do with the assembled request.
type Request struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	System   string `json:"system"`
	User     string `json:"user"`
}

// Build assembles the request payload for the given file inventory. Templates
// come from the embedded defaults unless the configured prompts directory
// supplies files of the same names.
func Build(cfg *config.Config, fileList string) (Request, error) {
	system, err := loadTemplate(cfg, systemTemplate)
	if err != nil {
		return Request{}, err
	}
	user, err := loadTemplate(cfg, userTemplate)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		System:   system,
		User:     strings.ReplaceAll(user, Placeholder, fileList),
	}, nil
}

// TemplateNames returns the template files the builder resolves, in load
// order.
func TemplateNames() []string {
	return []string{systemTemplate, userTemplate}
}

// Resolve reports where a template would be loaded from without reading the
// embedded copy. An empty path means the embedded template serves.
func Resolve(cfg *config.Config, name string) (string, error) {
	if dir := strings.TrimSpace(cfg.Paths.PromptsDir); dir != "" {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return "", services.Wrap(services.ErrConfiguration, "prompt", "resolve template override", path, err)
		}
		return path, nil
	}
	return "", nil
}

// loadTemplate reads a template and trims surrounding whitespace. When a
// prompts directory is configured the override file must exist there; the
// embedded copy is not a fallback, so a typoed directory fails loudly instead
// of silently building from defaults.
func loadTemplate(cfg *config.Config, name string) (string, error) {
	if dir := strings.TrimSpace(cfg.Paths.PromptsDir); dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", services.Wrap(services.ErrConfiguration, "prompt", "read template override", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "prompt", "read embedded template", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}
