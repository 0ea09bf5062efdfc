// ABOUTME: Search command for querying entries
// ABOUTME: Supports text search, mood ranges and date ranges
package cli

import (
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/db"
)

var (
	searchSince      string
	searchUntil      string
	searchMinMood    int
	searchMaxMood    int
	searchLimit      int
	searchJSONOutput bool
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := db.SearchParams{
			MinMood: searchMinMood,
			MaxMood: searchMaxMood,
			Limit:   searchLimit,
		}

		if len(args) > 0 {
			params.Text = args[0]
		}

		// Parse dates
		if searchSince != "" {
			since, err := dateparse.ParseAny(searchSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			params.Since = &since
		}

		if searchUntil != "" {
			until, err := dateparse.ParseAny(searchUntil)
			if err != nil {
				return fmt.Errorf("invalid --until date: %w", err)
			}
			params.Until = &until
		}

		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		entries, err := j.Search(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to search entries: %w", err)
		}

		return printEntries(cmd.OutOrStdout(), entries, searchJSONOutput)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Start date (ISO or common formats)")
	searchCmd.Flags().StringVar(&searchUntil, "until", "", "End date (ISO or common formats)")
	searchCmd.Flags().IntVar(&searchMinMood, "min-mood", 0, "Lowest mood to include")
	searchCmd.Flags().IntVar(&searchMaxMood, "max-mood", 0, "Highest mood to include")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 100, "Maximum results")
	searchCmd.Flags().BoolVar(&searchJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(searchCmd)
}
