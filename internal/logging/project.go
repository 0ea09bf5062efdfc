// ABOUTME: Project mood log file writing
// ABOUTME: Formats entries as markdown or JSON and appends to daily logs
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/db"
)

// WriteProjectLog appends entry to the project log file for its day
func WriteProjectLog(logDir, format string, entry db.Entry) error {
	// Create log directory if needed
	if err := os.MkdirAll(logDir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	// One file per UTC day
	date := entry.CreatedAt.UTC().Format("2006-01-02")
	logFile := filepath.Join(logDir, date+".log")

	// Format entry
	var content string
	switch format {
	case "json":
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		content = string(data) + "\n"
	case "markdown":
		fallthrough
	default:
		content = formatMarkdown(entry)
	}

	// Append to file
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // Log files are user readable
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

func formatMarkdown(entry db.Entry) string {
	var sb strings.Builder

	timeStr := entry.CreatedAt.UTC().Format("15:04:05")
	sb.WriteString(fmt.Sprintf("## %s - Entry %d\n", timeStr, entry.ID))
	sb.WriteString(fmt.Sprintf("- **Mood**: %d/10\n", entry.Mood))
	sb.WriteString(fmt.Sprintf("- **Sentiment**: %.2f\n", entry.Sentiment))

	if label := analysis.Anomaly(entry.Mood, entry.Sentiment); label != "" {
		sb.WriteString(fmt.Sprintf("- **Flag**: %s\n", label))
	}

	sb.WriteString("\n")
	sb.WriteString(entry.Content)
	sb.WriteString("\n\n")

	return sb.String()
}
