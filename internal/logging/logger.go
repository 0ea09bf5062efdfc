// ABOUTME: Diagnostic logger for commands and the MCP server
// ABOUTME: Quiet by default, debug output with --verbose
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w. Verbose enables debug level.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New(w)
	logger.SetPrefix("moodjournal")
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
