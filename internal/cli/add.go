// ABOUTME: Add command for creating new journal entries
// ABOUTME: Handles content input, mood and optional sentiment override
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/logging"
)

var (
	addMood      int
	addSentiment float64
)

var addCmd = &cobra.Command{
	Use:     "add [content]",
	Aliases: []string{"a"},
	Short:   "Add a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		content := args[0]

		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		// Score from text unless given explicitly
		var sentiment *float64
		if cmd.Flags().Changed("sentiment") {
			sentiment = &addSentiment
		}

		entry, err := j.Add(cmd.Context(), content, addMood, sentiment)
		if err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}

		fmt.Fprintf(out, "Entry created (ID: %d)\n", entry.ID)
		fmt.Fprintf(out, "Mood: %d/10  Sentiment: %.2f\n", entry.Mood, entry.Sentiment)
		if label := analysis.Anomaly(entry.Mood, entry.Sentiment); label != "" {
			color.New(color.FgYellow).Fprintf(out, "Flag: %s\n", label)
		}

		// Check for project logging
		project := currentProject()
		if project != nil && project.Config.LocalLogging {
			logDir := project.LogDir()
			if err := logging.WriteProjectLog(logDir, project.Config.LogFormat, *entry); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to write project log: %v\n", err)
			} else {
				fmt.Fprintf(out, "Project log updated: %s\n", logDir)
			}
		}

		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&addMood, "mood", "m", 5, "Mood from 1 (worst) to 10 (best)")
	addCmd.Flags().Float64VarP(&addSentiment, "sentiment", "s", 0, "Sentiment in [-1, 1] (scored from the text when omitted)")
	rootCmd.AddCommand(addCmd)
}
