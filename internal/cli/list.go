// ABOUTME: List command for displaying recent entries
// ABOUTME: Supports table and JSON output formats
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/db"
)

var (
	listLimit      int
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		entries, err := j.List(cmd.Context(), listLimit)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		return printEntries(cmd.OutOrStdout(), entries, listJSONOutput)
	},
}

// printEntries writes entries as a table or indented JSON.
func printEntries(w io.Writer, entries []db.Entry, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	fmt.Fprintln(w, "ID\tCreated\t\t\tMood\tAI\tFlag\t\tContent")
	fmt.Fprintln(w, "--\t-------\t\t\t----\t--\t----\t\t-------")
	for _, entry := range entries {
		flag := analysis.Anomaly(entry.Mood, entry.Sentiment)
		if flag == "" {
			flag = "-"
		}
		created := entry.CreatedAt.Local().Format("2006-01-02 15:04:05")
		content := strings.ReplaceAll(entry.Content, "\n", " ")
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%-13s\t%s\n", entry.ID, created, entry.Mood, entry.Sentiment, flag, content)
	}
	return nil
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Number of entries to show")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
