// Package cli implements the promptreflex CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptreflex",
	Short: "Track and evaluate AI assistant prompts",
	Long: `PromptReflex logs prompt/response pairs exchanged with an AI
assistant, annotates them with tags and notes, and scores their quality
through a templated evaluation workflow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleError.Render("Error:"), err)
	}
	return err
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
