package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/promptreflex-io/promptreflex/internal/config"
	"github.com/promptreflex-io/promptreflex/internal/evaluate"
	"github.com/promptreflex-io/promptreflex/internal/models"
	"github.com/promptreflex-io/promptreflex/internal/store"
	"github.com/promptreflex-io/promptreflex/internal/templates"
)

var (
	evalResponse     string
	evalScore        int
	evalTemplateOnly bool
	evalTemplate     string
	evalAutoExtract  bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [prompt-id]",
	Short: "Evaluate a logged prompt by ID",
	Long: `Evaluate a logged prompt by ID.

With --generate-template, renders the evaluation template for the
record and prints it without modifying anything. Otherwise attaches an
evaluation response and a 1-5 score to the record, either given
explicitly with --score or extracted from the response text with
--auto-extract-score.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evalResponse, "response", "r", "", "Evaluation response text")
	evaluateCmd.Flags().IntVarP(&evalScore, "score", "s", 0, "Score from 1-5")
	evaluateCmd.Flags().BoolVarP(&evalTemplateOnly, "generate-template", "g", false, "Generate evaluation template only")
	evaluateCmd.Flags().StringVar(&evalTemplate, "template", "", "Template file name (default from settings)")
	evaluateCmd.Flags().BoolVar(&evalAutoExtract, "auto-extract-score", false, "Extract the score from the response text")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	s, err := store.Open()
	if err != nil {
		return err
	}

	loader, err := templates.Open()
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	opts := evaluate.Options{
		ID:           args[0],
		Response:     evalResponse,
		TemplateOnly: evalTemplateOnly,
		Template:     evalTemplate,
		AutoExtract:  evalAutoExtract,
	}
	if opts.Template == "" {
		opts.Template = settings.DefaultTemplate
	}
	if cmd.Flags().Changed("score") {
		opts.Score = &evalScore
	}

	ev := &evaluate.Evaluator{
		Store:     s,
		Templates: loader,
		Confirm:   confirmOverwrite,
	}

	result, err := ev.Run(opts)
	if errors.Is(err, evaluate.ErrCancelled) {
		fmt.Println("Evaluation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if evalTemplateOnly {
		fmt.Println(result.Rendered)
		return nil
	}

	if evalAutoExtract {
		fmt.Printf("Auto-extracted score: %d\n", result.Score)
	}
	printSummary(result.Record)
	return nil
}

func printSummary(rec *models.Record) {
	fmt.Printf("%s\n", styleSuccess.Render("Evaluation saved."))
	fmt.Printf("  %s %s\n", styleLabel.Render("ID:"), rec.ID)
	fmt.Printf("  %s %s\n", styleLabel.Render("Date:"), rec.Date)
	fmt.Printf("  %s %d/5\n", styleLabel.Render("Score:"), *rec.Score)
	if len(rec.Tags) > 0 {
		fmt.Printf("  %s %s\n", styleLabel.Render("Tags:"), strings.Join(rec.Tags, ", "))
	}
}

// confirmOverwrite asks before replacing an existing evaluation. A
// non-interactive stdin declines rather than hanging.
func confirmOverwrite(rec *models.Record) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	fmt.Printf("Prompt %s already has a score of %d. Overwrite? [y/N]: ", rec.ID, *rec.Score)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
