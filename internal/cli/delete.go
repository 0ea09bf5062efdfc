// ABOUTME: Delete command for removing an entry
// ABOUTME: Asks for confirmation unless --yes is given
package cli

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/charm"
)

var (
	deleteYes   bool
	deleteCloud bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID %q: %w", args[0], err)
		}

		if !deleteYes {
			fmt.Fprintf(out, "Delete entry %d? [y/N]: ", id)
			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		err = j.Delete(cmd.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("entry %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "Entry %d deleted\n", id)

		if deleteCloud {
			c, err := charm.NewClient(nil)
			if err != nil {
				return fmt.Errorf("failed to create Charm client: %w", err)
			}
			if err := c.DeleteEntry(id); err != nil {
				return fmt.Errorf("failed to delete cloud copy: %w", err)
			}
			fmt.Fprintln(out, "Cloud copy removed")
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
	deleteCmd.Flags().BoolVar(&deleteCloud, "cloud", false, "Also remove the entry from the cloud backup")
	rootCmd.AddCommand(deleteCmd)
}
