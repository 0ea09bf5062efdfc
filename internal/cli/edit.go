// ABOUTME: Edit command for changing an existing entry
// ABOUTME: Updates content, mood or sentiment; new content is re-scored
package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/journal"
)

var (
	editContent   string
	editMood      int
	editSentiment float64
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID %q: %w", args[0], err)
		}

		var changes journal.Changes
		if cmd.Flags().Changed("content") {
			changes.Content = &editContent
		}
		if cmd.Flags().Changed("mood") {
			changes.Mood = &editMood
		}
		if cmd.Flags().Changed("sentiment") {
			changes.Sentiment = &editSentiment
		}
		if changes.Content == nil && changes.Mood == nil && changes.Sentiment == nil {
			return errors.New("nothing to change: pass --content, --mood or --sentiment")
		}

		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		entry, err := j.Edit(cmd.Context(), id, changes)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("entry %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "Entry %d updated\n", entry.ID)
		fmt.Fprintf(out, "Mood: %d/10  Sentiment: %.2f\n", entry.Mood, entry.Sentiment)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().IntVarP(&editMood, "mood", "m", 0, "New mood from 1 to 10")
	editCmd.Flags().Float64VarP(&editSentiment, "sentiment", "s", 0, "New sentiment in [-1, 1]")
	rootCmd.AddCommand(editCmd)
}
