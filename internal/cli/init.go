// ABOUTME: Init command creating the journal store
// ABOUTME: Materializes the schema at the resolved store path
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the journal store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Journal ready at %s\n", j.Engine().Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
