// ABOUTME: MCP subcommand for running the moodjournal MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the moodjournal MCP server",
	Long:  `Start the Model Context Protocol server for AI assistants to interact with moodjournal over stdio.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		server := mcp.NewServer(j, newLogger(cmd))
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
