// ABOUTME: Sync subcommand for Charm cloud backup of journal entries
// ABOUTME: Provides status, link, config, push, pull and repair commands (SSH key auth)
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/proto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodjournal/internal/charm"
	"github.com/harper/moodjournal/internal/db"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Back up journal entries to the cloud",
	Long: `Back up your journal entries securely to the cloud using Charm.

Authentication is automatic via SSH keys - no login required!

Commands:
  status  - Show sync status and Charm user ID
  link    - Link this device to another Charm account
  config  - Set the Charm host and auto-sync
  push    - Copy local entries to the cloud
  pull    - Restore cloud entries missing locally
  repair  - Repair the local cloud cache

Examples:
  moodjournal sync status
  moodjournal sync push
  moodjournal sync repair --force`,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		c, err := charm.NewClient(nil)
		if err != nil {
			fmt.Fprintf(out, "Charm:     not configured (%v)\n", err)
			return nil
		}

		id, err := c.ID()
		if err != nil {
			fmt.Fprintf(out, "Charm:     not connected (%v)\n", err)
			fmt.Fprintln(out, "\nRun 'moodjournal sync link' to connect to a Charm account.")
			return nil
		}

		fmt.Fprintf(out, "Charm ID:  %s\n", id)
		fmt.Fprintf(out, "Server:    %s\n", charm.GetCharmHost())

		if c.IsLinked() {
			color.New(color.FgGreen).Fprintln(out, "Status:    Connected and syncing")
		} else {
			color.New(color.FgYellow).Fprintln(out, "Status:    Not linked")
			fmt.Fprintln(out, "\nRun 'moodjournal sync link' to link to a Charm account.")
		}

		return nil
	},
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to a Charm account",
	Long: `Link this device to an existing Charm account.

This will generate a link code that you can enter on another device
that's already linked to your Charm account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := charm.NewClient(nil); err != nil {
			return fmt.Errorf("failed to load sync config: %w", err)
		}

		cc, err := client.NewClientWithDefaults()
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		// Check if already linked
		if _, err := cc.ID(); err == nil {
			color.Green("Already linked to a Charm account!")
			fmt.Println("Run 'moodjournal sync status' to see your account info.")
			return nil
		}

		fmt.Println("Generating link request...")
		fmt.Println("Enter this code on a device that's already linked to your Charm account.")

		lh := &linkHandler{}
		if err := cc.LinkGen(lh); err != nil {
			return fmt.Errorf("link failed: %w", err)
		}

		return nil
	},
}

var (
	syncHost     string
	syncAutoSync bool
)

var syncConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Set the Charm host and auto-sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := charm.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load sync config: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("host") {
			cfg.CharmHost = syncHost
			changed = true
		}
		if cmd.Flags().Changed("auto-sync") {
			cfg.AutoSync = syncAutoSync
			changed = true
		}

		if changed {
			if err := charm.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save sync config: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "Saved %s\n", charm.ConfigPath())
		}

		host := cfg.CharmHost
		if host == "" {
			host = charm.DefaultCharmHost
		}
		fmt.Fprintf(out, "Host:       %s\n", host)
		fmt.Fprintf(out, "Auto-sync:  %t\n", cfg.AutoSync)
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Copy local entries to the cloud",
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

		c, err := charm.NewClient(nil)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}
		if err := c.PushEntries(entries); err != nil {
			return fmt.Errorf("failed to push entries: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Pushed %d entries\n", len(entries))
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Restore cloud entries missing locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := charm.NewClient(nil)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}
		if err := c.Sync(); err != nil {
			return fmt.Errorf("failed to sync with Charm: %w", err)
		}

		remote, err := c.PullEntries()
		if err != nil {
			return fmt.Errorf("failed to pull entries: %w", err)
		}

		j, closeJournal, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer closeJournal()

		restored, err := j.Restore(cmd.Context(), remote)
		if err != nil {
			return fmt.Errorf("failed to restore entries: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Restored %d of %d cloud entries\n", restored, len(remote))
		return nil
	},
}

var (
	repairForce bool
)

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair the local cloud cache",
	Long: `Attempt to repair corruption in the local Charm KV cache.

This runs SQLite integrity checks and repairs:
- WAL checkpoint
- Remove shared memory file
- Integrity check
- VACUUM

Use --force to attempt recovery and cloud reset if corruption persists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Repairing moodjournal cloud cache...")

		// Call repair directly without opening the client
		// This works even when the cache is too corrupted to open normally
		result, err := charm.RepairDB(repairForce)
		if err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}

		if result.WalCheckpointed {
			color.Green("  ✓ WAL checkpointed")
		}
		if result.ShmRemoved {
			color.Green("  ✓ SHM file removed")
		}
		if result.IntegrityOK {
			color.Green("  ✓ Integrity check passed")
		} else {
			color.Red("  ✗ Integrity check failed")
		}
		if result.Vacuumed {
			color.Green("  ✓ Database vacuumed")
		}
		if result.RecoveryAttempted {
			color.Yellow("  ! Recovery attempted")
		}
		if result.ResetFromCloud {
			color.Green("  ✓ Reset from cloud")
		}

		fmt.Println()
		if result.IntegrityOK {
			color.Green("Repair complete.")
		} else if !repairForce {
			color.Yellow("Repair incomplete. Run with --force to attempt recovery and cloud reset.")
		} else {
			color.Red("Repair failed. Cache may be unrecoverable.")
		}

		return nil
	},
}

func init() {
	syncConfigCmd.Flags().StringVar(&syncHost, "host", "", "Charm server host")
	syncConfigCmd.Flags().BoolVar(&syncAutoSync, "auto-sync", true, "Sync with the server after every write")
	syncRepairCmd.Flags().BoolVarP(&repairForce, "force", "f", false, "Force repair even if the cache appears healthy")

	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncConfigCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncRepairCmd)

	rootCmd.AddCommand(syncCmd)
}

// linkHandler implements proto.LinkHandler for the link flow.
type linkHandler struct{}

func (lh *linkHandler) TokenCreated(l *proto.Link) {
	fmt.Printf("\nLink code: %s\n\n", l.Token)
	fmt.Println("Waiting for approval...")
}

func (lh *linkHandler) TokenSent(l *proto.Link) {}

func (lh *linkHandler) ValidToken(l *proto.Link) {}

func (lh *linkHandler) InvalidToken(l *proto.Link) {
	fmt.Println("Invalid or expired token. Please try again.")
}

func (lh *linkHandler) Request(l *proto.Link) bool {
	fmt.Printf("\nLink request from: %s\n", l.RequestAddr)
	fmt.Print("Approve? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}

func (lh *linkHandler) RequestDenied(l *proto.Link) {
	fmt.Println("Link request denied.")
}

func (lh *linkHandler) SameUser(l *proto.Link) {
	color.Green("\nSuccessfully linked!")
}

func (lh *linkHandler) Success(l *proto.Link) {
	color.Green("\nSuccessfully linked!")
}

func (lh *linkHandler) Timeout(l *proto.Link) {
	fmt.Println("\nLink request timed out. Please try again.")
}

func (lh *linkHandler) Error(l *proto.Link) {
	fmt.Println("\nError during linking")
}
