package models

// ListFormat values accepted for the list command output.
const (
	ListFormatTable = "table"
	ListFormatJSON  = "json"
)

// Settings represents global application settings.
// This corresponds to ~/.promptreflex/settings.yaml.
type Settings struct {
	Version         int    `yaml:"version"`
	PromptsDir      string `yaml:"prompts_dir,omitempty"`   // Empty means default location
	TemplatesDir    string `yaml:"templates_dir,omitempty"` // Empty means default location
	DefaultTemplate string `yaml:"default_template"`
	ListFormat      string `yaml:"list_format"` // "table" | "json"
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:         1,
		DefaultTemplate: "judge_prompt.txt",
		ListFormat:      ListFormatTable,
	}
}
