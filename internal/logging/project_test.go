// ABOUTME: Tests for project mood log file writing
// ABOUTME: Validates log entry formatting and file operations
package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harper/moodjournal/internal/db"
)

func TestWriteProjectLog(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "logs")

	entry := db.Entry{
		ID:        12,
		Content:   "Smiled all day but felt awful inside",
		Mood:      8,
		Sentiment: -0.45,
		CreatedAt: time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC),
	}

	err := WriteProjectLog(logDir, "markdown", entry)
	if err != nil {
		t.Fatalf("WriteProjectLog failed: %v", err)
	}

	// Verify log file was created
	logFile := filepath.Join(logDir, "2025-11-29.log")
	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Fatal("log file was not created")
	}

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	expectedContent := `## 14:30:00 - Entry 12
- **Mood**: 8/10
- **Sentiment**: -0.45
- **Flag**: Masking?

Smiled all day but felt awful inside

`
	if string(content) != expectedContent {
		t.Errorf("got:\n%s\nwant:\n%s", string(content), expectedContent)
	}
}

func TestWriteProjectLogJSON(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "logs")

	entry := db.Entry{
		ID:        3,
		Content:   "steady",
		Mood:      5,
		CreatedAt: time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC),
	}

	if err := WriteProjectLog(logDir, "json", entry); err != nil {
		t.Fatalf("WriteProjectLog failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(logDir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var decoded db.Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &decoded); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if decoded.ID != 3 || decoded.Content != "steady" || decoded.Mood != 5 {
		t.Errorf("got %+v", decoded)
	}
}

func TestWriteProjectLogMultipleEntries(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "logs")

	entry1 := db.Entry{ID: 1, Content: "first entry", Mood: 6, CreatedAt: time.Date(2025, 11, 29, 10, 0, 0, 0, time.UTC)}
	entry2 := db.Entry{ID: 2, Content: "second entry", Mood: 7, CreatedAt: time.Date(2025, 11, 29, 15, 0, 0, 0, time.UTC)}

	if err := WriteProjectLog(logDir, "markdown", entry1); err != nil {
		t.Fatalf("WriteProjectLog failed: %v", err)
	}
	if err := WriteProjectLog(logDir, "markdown", entry2); err != nil {
		t.Fatalf("WriteProjectLog failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(logDir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "first entry") || !strings.Contains(contentStr, "second entry") {
		t.Errorf("log file should contain both entries: %s", contentStr)
	}
	if strings.Contains(contentStr, "Flag") {
		t.Errorf("neither entry should be flagged: %s", contentStr)
	}
}
