// ABOUTME: XDG Base Directory specification helpers
// ABOUTME: Resolves the moodjournal config directory with fallbacks
package config

import (
	"os"
	"path/filepath"
)

// AppName names the moodjournal directories and project file.
const AppName = "moodjournal"

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}

// AppConfigDir returns the moodjournal directory under the config home.
func AppConfigDir() string {
	return filepath.Join(GetConfigHome(), AppName)
}
