// Package templates resolves the templates directory and renders
// evaluation templates against a record.
package templates

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptreflex-io/promptreflex/internal/config"
	"github.com/promptreflex-io/promptreflex/internal/models"
)

// DefaultTemplateName is the template used when none is named.
const DefaultTemplateName = "judge_prompt.txt"

// Placeholder tokens replaced during rendering.
const (
	PromptToken   = "{{prompt}}"
	ResponseToken = "{{response}}"
)

// Loader fetches template text from a resolved templates directory.
type Loader struct {
	dir string
}

// NewLoader creates a loader over an explicit directory. Fails with a
// NotFoundError if the directory does not exist: templates are shipped
// content and are never auto-created.
func NewLoader(dir string) (*Loader, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &models.NotFoundError{Kind: "templates directory", Name: dir}
	}
	return &Loader{dir: dir}, nil
}

// Open creates a loader over the resolved templates directory
// (environment override, settings.yaml, or the default under the home
// directory).
func Open() (*Loader, error) {
	dir, err := config.TemplatesDir()
	if err != nil {
		return nil, err
	}
	return NewLoader(dir)
}

// Dir returns the templates directory.
func (l *Loader) Dir() string {
	return l.dir
}

// Get reads the named template file.
func (l *Loader) Get(name string) (string, error) {
	if name == "" {
		name = DefaultTemplateName
	}
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &models.NotFoundError{Kind: "template", Name: name}
		}
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes every {{prompt}} and {{response}} token in the
// template text with the record's fields, verbatim. No escaping or
// truncation: prompt and response text passes through untouched even if
// it contains template-looking syntax.
func Render(text string, rec *models.Record) string {
	out := strings.ReplaceAll(text, PromptToken, rec.Prompt)
	return strings.ReplaceAll(out, ResponseToken, rec.Response)
}

// WriteDefaultTemplate installs the bundled judge template into dir,
// creating the directory if needed. Used by `settings init-templates`.
func WriteDefaultTemplate(dir string) (string, error) {
	if err := config.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create templates directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, DefaultTemplateName)
	if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
		return "", fmt.Errorf("failed to write template %s: %w", path, err)
	}
	return path, nil
}

//go:embed judge_prompt.txt
var defaultTemplate string
