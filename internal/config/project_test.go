// ABOUTME: Tests for project .moodjournal file detection
// ABOUTME: Validates directory walking, config parsing and store path resolution
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	// Create temp directory structure
	tmpDir := t.TempDir()

	projectRoot := filepath.Join(tmpDir, "project")
	subDir := filepath.Join(projectRoot, "src", "deep", "nested")
	_ = os.MkdirAll(subDir, 0755) //nolint:gosec // Test directory permissions

	projectFile := filepath.Join(projectRoot, ProjectFile)
	_ = os.WriteFile(projectFile, []byte("local_logging = true\n"), 0644) //nolint:gosec // Test file permissions

	t.Run("finds project root from nested directory", func(t *testing.T) {
		root, err := FindProjectRoot(subDir)
		if err != nil {
			t.Fatalf("FindProjectRoot failed: %v", err)
		}
		if root != projectRoot {
			t.Errorf("got %s, want %s", root, projectRoot)
		}
	})

	t.Run("returns empty when no .moodjournal found", func(t *testing.T) {
		otherDir := filepath.Join(tmpDir, "other")
		_ = os.MkdirAll(otherDir, 0755) //nolint:gosec // Test directory permissions

		root, err := FindProjectRoot(otherDir)
		if err != nil {
			t.Fatalf("FindProjectRoot failed: %v", err)
		}
		if root != "" {
			t.Errorf("got %s, want empty string", root)
		}
	})
}

func TestLoadProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
db_path = "data/mood.db"
local_logging = true
log_dir = "custom-logs"
log_format = "json"
`
	configPath := filepath.Join(tmpDir, ProjectFile)
	_ = os.WriteFile(configPath, []byte(configContent), 0644) //nolint:gosec // Test file permissions

	cfg, err := LoadProjectConfig(configPath)
	if err != nil {
		t.Fatalf("LoadProjectConfig failed: %v", err)
	}

	if cfg.DBPath != "data/mood.db" {
		t.Errorf("got DBPath %s, want data/mood.db", cfg.DBPath)
	}
	if !cfg.LocalLogging {
		t.Error("expected LocalLogging to be true")
	}
	if cfg.LogDir != "custom-logs" {
		t.Errorf("got LogDir %s, want custom-logs", cfg.LogDir)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("got LogFormat %s, want json", cfg.LogFormat)
	}

	t.Run("defaults apply to empty file", func(t *testing.T) {
		emptyPath := filepath.Join(t.TempDir(), ProjectFile)
		_ = os.WriteFile(emptyPath, []byte(""), 0644) //nolint:gosec // Test file permissions

		cfg, err := LoadProjectConfig(emptyPath)
		if err != nil {
			t.Fatalf("LoadProjectConfig failed: %v", err)
		}
		if cfg.LogDir != "logs" || cfg.LogFormat != "markdown" || cfg.LocalLogging {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})
}

func TestResolveDBPath(t *testing.T) {
	original := os.Getenv(EnvDBPath)
	defer func() { _ = os.Setenv(EnvDBPath, original) }()
	_ = os.Unsetenv(EnvDBPath)

	project := &Project{Root: "/work/diary", Config: &ProjectConfig{DBPath: "mood.db"}}

	t.Run("override wins", func(t *testing.T) {
		_ = os.Setenv(EnvDBPath, "/env/journal.db")
		defer func() { _ = os.Unsetenv(EnvDBPath) }()

		if got := ResolveDBPath("/flag/journal.db", project, "journal.db"); got != "/flag/journal.db" {
			t.Errorf("got %s, want /flag/journal.db", got)
		}
	})

	t.Run("env before project", func(t *testing.T) {
		_ = os.Setenv(EnvDBPath, "/env/journal.db")
		defer func() { _ = os.Unsetenv(EnvDBPath) }()

		if got := ResolveDBPath("", project, "journal.db"); got != "/env/journal.db" {
			t.Errorf("got %s, want /env/journal.db", got)
		}
	})

	t.Run("project path is relative to root", func(t *testing.T) {
		if got := ResolveDBPath("", project, "journal.db"); got != "/work/diary/mood.db" {
			t.Errorf("got %s, want /work/diary/mood.db", got)
		}
	})

	t.Run("falls back", func(t *testing.T) {
		if got := ResolveDBPath("", nil, "journal.db"); got != "journal.db" {
			t.Errorf("got %s, want journal.db", got)
		}
	})
}

func TestProjectLogDir(t *testing.T) {
	p := &Project{Root: "/work/diary", Config: &ProjectConfig{LogDir: "logs"}}
	if got := p.LogDir(); got != "/work/diary/logs" {
		t.Errorf("got %s, want /work/diary/logs", got)
	}

	p.Config.LogDir = "/var/log/mood"
	if got := p.LogDir(); got != "/var/log/mood" {
		t.Errorf("got %s, want /var/log/mood", got)
	}
}
