// ABOUTME: Cloud backup configuration stored as TOML
// ABOUTME: Lives in the moodjournal config directory as sync.toml
package charm

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/harper/moodjournal/internal/config"
)

// DefaultCharmHost is used when neither config nor CHARM_HOST names a host.
const DefaultCharmHost = "charm.2389.dev"

// Config holds cloud backup settings.
type Config struct {
	CharmHost string `toml:"charm_host"`
	AutoSync  bool   `toml:"auto_sync"`
}

// ConfigPath returns the location of sync.toml.
func ConfigPath() string {
	return filepath.Join(config.AppConfigDir(), "sync.toml")
}

// LoadConfig reads sync.toml. A missing file yields the defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{AutoSync: true}

	if _, err := toml.DecodeFile(ConfigPath(), cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to sync.toml.
func SaveConfig(cfg *Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
