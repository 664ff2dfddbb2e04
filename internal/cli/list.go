package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/promptreflex-io/promptreflex/internal/config"
	"github.com/promptreflex-io/promptreflex/internal/models"
	"github.com/promptreflex-io/promptreflex/internal/store"
)

var (
	listTag      string
	listMinScore int
	listMaxScore int
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged prompts with optional filtering",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Filter prompts by tag")
	listCmd.Flags().IntVar(&listMinScore, "min-score", 0, "Filter by minimum score")
	listCmd.Flags().IntVar(&listMaxScore, "max-score", 0, "Filter by maximum score")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "Output format: table or json (default from settings)")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := store.Open()
	if err != nil {
		return err
	}

	filter := store.Filter{Tag: listTag}
	if cmd.Flags().Changed("min-score") {
		filter.MinScore = &listMinScore
	}
	if cmd.Flags().Changed("max-score") {
		filter.MaxScore = &listMaxScore
	}

	records, skipped, err := s.List(filter)
	if err != nil {
		return err
	}

	format := listFormat
	if format == "" {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		format = settings.ListFormat
	}

	switch format {
	case models.ListFormatJSON:
		if err := printJSON(records); err != nil {
			return err
		}
	case models.ListFormatTable:
		printTable(records)
	default:
		return fmt.Errorf("invalid format: %s (expected table or json)", format)
	}

	if len(skipped) > 0 {
		fmt.Println(styleWarning.Render(fmt.Sprintf("Skipped %d unreadable file(s) in %s", len(skipped), s.Dir())))
	}
	return nil
}

func printJSON(records []*models.Record) error {
	if records == nil {
		records = []*models.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printTable(records []*models.Record) {
	if len(records) == 0 {
		fmt.Println("No prompts found. Run 'promptreflex log' to create one.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleLabel).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleValue.Padding(0, 1)
		}).
		Headers("ID", "Date", "Score", "Tags", "Prompt")

	for _, rec := range records {
		score := "-"
		if rec.Score != nil {
			score = strconv.Itoa(*rec.Score)
		}
		t.Row(rec.ID, rec.Date, score, strings.Join(rec.Tags, ", "), truncate(rec.Prompt, 40))
	}
	fmt.Println(t.Render())
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
