package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptreflex-io/promptreflex/internal/models"
	"github.com/promptreflex-io/promptreflex/internal/store"
)

var (
	logPrompt   string
	logResponse string
	logTags     []string
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a new prompt and response pair",
	Long: `Log a new prompt and response pair.

The record is assigned an ID of the form YYYY-MM-DD-NNN and written as
a JSON file to the prompts directory.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logPrompt, "prompt", "p", "", "The prompt sent to the assistant")
	logCmd.Flags().StringVarP(&logResponse, "response", "r", "", "The assistant's response")
	logCmd.Flags().StringArrayVarP(&logTags, "tag", "t", nil, "Tag to categorize the prompt (repeatable)")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "Additional notes about the prompt or response")
	_ = logCmd.MarkFlagRequired("prompt")
	_ = logCmd.MarkFlagRequired("response")
}

func runLog(cmd *cobra.Command, args []string) error {
	s, err := store.Open()
	if err != nil {
		return err
	}

	id := s.GenerateID()
	rec, err := models.NewRecord(id, s.Today(), logPrompt, logResponse, logTags, logNotes)
	if err != nil {
		return err
	}

	path, err := s.Save(rec)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Prompt logged with ID:"), styleValue.Render(id))
	fmt.Printf("%s %s\n", styleLabel.Render("Saved to:"), path)
	return nil
}
