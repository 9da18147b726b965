// Package prompt assembles the provider-agnostic model request payload from
// prompt templates and a file inventory. Templates are embedded in the binary
// and can be overridden per file through the configured prompts directory.
package prompt
