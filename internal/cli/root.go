// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags, store path resolution and command initialization
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/config"
	"github.com/harper/moodjournal/internal/db"
	"github.com/harper/moodjournal/internal/journal"
	"github.com/harper/moodjournal/internal/logging"
)

var (
	dbPathFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "moodjournal",
	Short: "Mood journal with sentiment tracking",
	Long: `Moodjournal records journal entries with a 1-10 mood and a sentiment score in a local SQLite file.

The store defaults to journal.db in the current directory. Override it with --db,
MOODJOURNAL_DB_PATH, or db_path in a .moodjournal project file.`,
	SilenceUsage: true,
}

func Execute() error {
	// If first arg is not a known subcommand, inject "add"
	if len(os.Args) > 1 {
		arg := os.Args[1]
		// Check if it's not a flag and not a known command
		if len(arg) > 0 && arg[0] != '-' {
			isCommand := false
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == arg || cmd.HasAlias(arg) {
					isCommand = true
					break
				}
			}
			// "help" and "completion" are added by cobra on first Execute
			if arg == "help" || arg == "completion" {
				isCommand = true
			}
			// If not a command, inject "add"
			if !isCommand {
				os.Args = append([]string{os.Args[0], "add"}, os.Args[1:]...)
			}
		}
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the journal store (default journal.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs to stderr")
}

// newLogger returns the diagnostic logger for cmd.
func newLogger(cmd *cobra.Command) *log.Logger {
	return logging.NewLogger(cmd.ErrOrStderr(), verbose)
}

// currentProject loads the .moodjournal project around the working directory, if any.
func currentProject() *config.Project {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	project, err := config.LoadProject(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load project config: %v\n", err)
		return nil
	}
	return project
}

// openJournal resolves the store path, opens it and materializes the schema.
// The returned func closes the store.
func openJournal(cmd *cobra.Command) (*journal.Journal, func(), error) {
	logger := newLogger(cmd)

	project := currentProject()
	dbPath := config.ResolveDBPath(dbPathFlag, project, db.DefaultPath)

	engine, err := db.OpenJournal(cmd.Context(), dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("opened store", "path", dbPath)

	closeFn := func() {
		if closeErr := engine.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
		}
	}
	return journal.New(engine), closeFn, nil
}
