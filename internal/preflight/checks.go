package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/YellowKidokc/File-Organization/internal/config"
	"github.com/YellowKidokc/File-Organization/internal/services/prompt"
)

// CheckConfigFile reports where the configuration comes from. A missing file
// is not a failure: defaults plus environment fallbacks apply.
func CheckConfigFile(path string, exists bool) Result {
	const name = "Configuration file"
	if exists {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (loaded)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not found, defaults apply)", path)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckScanRoot verifies that the scan root exists and can be traversed.
// Write access is not required here: dry runs never mutate the tree.
func CheckScanRoot(root string) Result {
	const name = "Scan root"
	if strings.TrimSpace(root) == "" {
		return Result{Name: name, Detail: "no root configured"}
	}
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", root)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", root, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", root)}
	}
	if err := unix.Access(root, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", root, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", root)}
}

// CheckCredentials verifies that the configured provider has the API key it
// needs for request payload assembly.
func CheckCredentials(cfg *config.Config) Result {
	const name = "Provider credentials"
	issues := cfg.CredentialIssues()
	if len(issues) > 0 {
		return Result{Name: name, Detail: strings.Join(issues, "; ")}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s/%s ready", cfg.LLM.Provider, cfg.LLM.Model)}
}

// CheckPromptTemplates verifies that every prompt template resolves, either
// from the embedded copies or from the configured prompts directory.
func CheckPromptTemplates(cfg *config.Config) Result {
	const name = "Prompt templates"
	overrides := make([]string, 0, 2)
	for _, templateName := range prompt.TemplateNames() {
		path, err := prompt.Resolve(cfg, templateName)
		if err != nil {
			return Result{Name: name, Detail: err.Error()}
		}
		if path != "" {
			overrides = append(overrides, path)
		}
	}
	if len(overrides) > 0 {
		return Result{Name: name, Passed: true, Detail: strings.Join(overrides, ", ")}
	}
	return Result{Name: name, Passed: true, Detail: "embedded templates"}
}
