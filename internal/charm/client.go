// ABOUTME: Charm KV client wrapper using transactional Do API
// ABOUTME: Short-lived connections per operation for the journal cloud backup

package charm

import (
	"os"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

// DBName is the KV database name for moodjournal.
const DBName = "moodjournal"

// Client holds configuration for KV operations.
// It does NOT hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
type Client struct {
	dbName   string
	autoSync bool
}

// NewClient creates a new client from cfg, loading the saved config when cfg is nil.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	// Set charm host if configured
	if cfg.CharmHost != "" {
		if err := os.Setenv("CHARM_HOST", cfg.CharmHost); err != nil {
			return nil, err
		}
	}

	return &Client{
		dbName:   DBName,
		autoSync: cfg.AutoSync,
	}, nil
}

// Do executes a function with write access to the database,
// syncing afterwards when auto-sync is enabled.
func (c *Client) Do(fn func(k *kv.KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := fn(k); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// DoReadOnly executes a function with read-only database access.
func (c *Client) DoReadOnly(fn func(k *kv.KV) error) error {
	return kv.DoReadOnly(c.dbName, fn)
}

// Sync triggers a manual sync with the charm server.
func (c *Client) Sync() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Sync()
	})
}

// ID returns the charm user ID for this device.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", err
	}
	return cc.ID()
}

// IsLinked returns true if this device is linked to a Charm account.
func (c *Client) IsLinked() bool {
	_, err := c.ID()
	return err == nil
}

// GetCharmHost returns the configured Charm host.
func GetCharmHost() string {
	if host := os.Getenv("CHARM_HOST"); host != "" {
		return host
	}
	return DefaultCharmHost
}

// RepairDB attempts to repair a corrupted database without opening it.
func RepairDB(force bool) (*kv.RepairResult, error) {
	return kv.Repair(DBName, force)
}
