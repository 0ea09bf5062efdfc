// ABOUTME: Export command writing every entry as CSV
// ABOUTME: Writes to stdout or to the file named by --output
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/db"
	"github.com/harper/moodjournal/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		entries, err := j.Search(cmd.Context(), db.SearchParams{})
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := export.WriteCSV(w, entries); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}

		if exportOutput != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write CSV to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
