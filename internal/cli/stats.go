// ABOUTME: Stats command summarizing mood and sentiment
// ABOUTME: Prints averages, bands and the number of flagged entries
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/db"
)

var statsJSONOutput bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mood and sentiment statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		entries, err := j.Search(cmd.Context(), db.SearchParams{})
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		stats := analysis.Summarize(entries)

		if statsJSONOutput {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Entries:        %d\n", stats.Total)
		fmt.Fprintf(out, "Avg mood:       %.1f (%s)\n", stats.AverageMood, stats.MoodBand)
		fmt.Fprintf(out, "Avg sentiment:  %.2f (%s)\n", stats.AverageSentiment, stats.SentimentBand)
		if stats.Anomalies > 0 {
			color.New(color.FgYellow).Fprintf(out, "Flagged:        %d\n", stats.Anomalies)
		} else {
			fmt.Fprintf(out, "Flagged:        %d\n", stats.Anomalies)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}
