// Package config handles settings loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global PromptReflex directory.
	GlobalDirName = ".promptreflex"

	// PromptsDirName is the name of the prompts directory within the
	// global directory.
	PromptsDirName = "prompts"

	// TemplatesDirName is the name of the templates directory within the
	// global directory.
	TemplatesDirName = "templates"
)

// File names
const (
	SettingsFileName = "settings.yaml"
)

// Environment overrides. Each takes precedence over the corresponding
// settings.yaml entry and the built-in default.
const (
	PromptsDirEnv   = "PROMPTREFLEX_PROMPTS_DIR"
	TemplatesDirEnv = "PROMPTREFLEX_TEMPLATES_DIR"
)

// GlobalDir returns the path to the global PromptReflex directory
// (~/.promptreflex/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// PromptsDir resolves the prompts storage directory: environment
// override first, then settings.yaml, then ~/.promptreflex/prompts.
func PromptsDir() (string, error) {
	if dir := os.Getenv(PromptsDirEnv); dir != "" {
		return dir, nil
	}
	settings, err := LoadSettings()
	if err != nil {
		return "", err
	}
	if settings.PromptsDir != "" {
		return settings.PromptsDir, nil
	}
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, PromptsDirName), nil
}

// TemplatesDir resolves the templates directory: environment override
// first, then settings.yaml, then ~/.promptreflex/templates. Unlike the
// prompts directory it is never auto-created; templates are shipped
// content.
func TemplatesDir() (string, error) {
	if dir := os.Getenv(TemplatesDirEnv); dir != "" {
		return dir, nil
	}
	settings, err := LoadSettings()
	if err != nil {
		return "", err
	}
	if settings.TemplatesDir != "" {
		return settings.TemplatesDir, nil
	}
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TemplatesDirName), nil
}

// EnsureDir creates a directory (and parents) if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
