// ABOUTME: Project .moodjournal file detection and config loading
// ABOUTME: Walks directory tree to find project root and resolves the store path
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// ProjectFile marks a project root and holds its settings.
	ProjectFile = ".moodjournal"

	// EnvDBPath overrides the store path.
	EnvDBPath = "MOODJOURNAL_DB_PATH"
)

type ProjectConfig struct {
	DBPath       string `toml:"db_path" json:"db_path,omitempty"`
	LocalLogging bool   `toml:"local_logging" json:"local_logging"`
	LogDir       string `toml:"log_dir" json:"log_dir"`
	LogFormat    string `toml:"log_format" json:"log_format"`
}

// FindProjectRoot walks up from dir looking for .moodjournal file
// Returns empty string if not found
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	current := absDir
	for {
		if _, err := os.Stat(filepath.Join(current, ProjectFile)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)

		// Stop at filesystem root or home directory
		if parent == current || current == homeDir {
			return "", nil
		}

		current = parent
	}
}

// LoadProjectConfig loads .moodjournal config from path
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var cfg ProjectConfig

	// Set defaults
	cfg.LogDir = "logs"
	cfg.LogFormat = "markdown"

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Project is a located project root with its loaded config.
type Project struct {
	Root   string
	Config *ProjectConfig
}

// LoadProject finds and loads the project enclosing dir.
// Returns nil without error when dir is not inside a project.
func LoadProject(dir string) (*Project, error) {
	root, err := FindProjectRoot(dir)
	if err != nil || root == "" {
		return nil, err
	}

	cfg, err := LoadProjectConfig(filepath.Join(root, ProjectFile))
	if err != nil {
		return nil, err
	}

	return &Project{Root: root, Config: cfg}, nil
}

// LogDir returns the absolute project log directory.
func (p *Project) LogDir() string {
	if filepath.IsAbs(p.Config.LogDir) {
		return p.Config.LogDir
	}
	return filepath.Join(p.Root, p.Config.LogDir)
}

// ResolveDBPath picks the store path: override, then $MOODJOURNAL_DB_PATH,
// then db_path from the project file, then fallback.
func ResolveDBPath(override string, project *Project, fallback string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return env
	}
	if project != nil && project.Config.DBPath != "" {
		if filepath.IsAbs(project.Config.DBPath) {
			return project.Config.DBPath
		}
		return filepath.Join(project.Root, project.Config.DBPath)
	}
	return fallback
}
