// ABOUTME: MCP server implementation for moodjournal
// ABOUTME: Provides tools and resources for AI assistants to read and write the journal
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/moodjournal/internal/journal"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Server wraps the MCP server with journal-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	journal   *journal.Journal
	logger    *log.Logger
}

// NewServer creates a new moodjournal MCP server over j.
func NewServer(j *journal.Journal, logger *log.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "moodjournal",
		Version: Version,
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		journal:   j,
		logger:    logger,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Debug("mcp server starting", "store", s.journal.Engine().Path())
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
