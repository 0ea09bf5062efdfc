// ABOUTME: MCP resource implementations for moodjournal
// ABOUTME: Recent entries, mood statistics and flagged anomalies
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/moodjournal/internal/analysis"
)

const (
	recentEntriesURI = "moodjournal://recent-entries"
	statsURI         = "moodjournal://stats"
	anomaliesURI     = "moodjournal://anomalies"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentEntriesURI,
		Name:        "Recent Entries",
		Description: "Last 10 journal entries with mood, sentiment and anomaly labels",
		MIMEType:    "application/json",
	}, s.handleRecentEntries)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "Mood Statistics",
		Description: "Entry count, average mood, average sentiment and their bands",
		MIMEType:    "application/json",
	}, s.handleStats)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         anomaliesURI,
		Name:        "Anomalies",
		Description: "Entries where the self-reported mood disagrees with the text",
		MIMEType:    "text/markdown",
	}, s.handleAnomalies)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(data)},
		},
	}, nil
}

// handleRecentEntries implements the recent-entries resource.
func (s *Server) handleRecentEntries(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.journal.List(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return jsonResource(recentEntriesURI, toEntryList(entries))
}

// handleStats implements the stats resource.
func (s *Server) handleStats(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.journal.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return jsonResource(statsURI, analysis.Summarize(entries))
}

// handleAnomalies implements the anomalies resource.
func (s *Server) handleAnomalies(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.journal.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var summary strings.Builder
	summary.WriteString("# Mood Anomalies\n\n")

	count := 0
	for _, e := range entries {
		label := analysis.Anomaly(e.Mood, e.Sentiment)
		if label == "" {
			continue
		}
		summary.WriteString(fmt.Sprintf("- **%s** (#%d, %s, mood %d, sentiment %.2f): %s\n",
			label, e.ID, e.CreatedAt.UTC().Format("2006-01-02"), e.Mood, e.Sentiment, e.Content))
		count++
	}

	if count == 0 {
		summary.WriteString("No anomalies found.\n")
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: anomaliesURI, MIMEType: "text/markdown", Text: summary.String()},
		},
	}, nil
}
