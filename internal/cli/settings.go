package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptreflex-io/promptreflex/internal/config"
	"github.com/promptreflex-io/promptreflex/internal/models"
	"github.com/promptreflex-io/promptreflex/internal/templates"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved settings and directories",
	RunE:  runSettingsShow,
}

var settingsInitTemplatesCmd = &cobra.Command{
	Use:   "init-templates",
	Short: "Install the bundled evaluation template",
	Long: `Install the bundled evaluation template into the templates
directory, creating the directory if needed. The templates directory is
otherwise never created automatically.`,
	RunE: runSettingsInitTemplates,
}

var settingsSetFormatCmd = &cobra.Command{
	Use:   "set-format [table|json]",
	Short: "Set the default list output format",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetFormat,
}

func init() {
	settingsCmd.AddCommand(settingsInitTemplatesCmd)
	settingsCmd.AddCommand(settingsSetFormatCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	promptsDir, err := config.PromptsDir()
	if err != nil {
		return err
	}
	templatesDir, err := config.TemplatesDir()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleLabel.Render("Prompts directory:"), promptsDir)
	fmt.Printf("%s %s\n", styleLabel.Render("Templates directory:"), templatesDir)
	fmt.Printf("%s %s\n", styleLabel.Render("Default template:"), settings.DefaultTemplate)
	fmt.Printf("%s %s\n", styleLabel.Render("List format:"), settings.ListFormat)
	return nil
}

func runSettingsInitTemplates(cmd *cobra.Command, args []string) error {
	dir, err := config.TemplatesDir()
	if err != nil {
		return err
	}
	path, err := templates.WriteDefaultTemplate(dir)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", styleSuccess.Render("Template installed:"), path)
	return nil
}

func runSettingsSetFormat(cmd *cobra.Command, args []string) error {
	format := args[0]
	if format != models.ListFormatTable && format != models.ListFormatJSON {
		return fmt.Errorf("invalid format: %s (expected table or json)", format)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	settings.ListFormat = format
	if err := config.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Default list format set to %s.\n", format)
	return nil
}
