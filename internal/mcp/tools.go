// ABOUTME: MCP tool implementations for moodjournal
// ABOUTME: Add, list, search, update and delete journal entries
package mcp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/db"
	"github.com/harper/moodjournal/internal/journal"
)

// EntryData is an entry as returned to MCP clients.
type EntryData struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	Mood      int     `json:"mood"`
	Sentiment float64 `json:"sentiment"`
	CreatedAt string  `json:"created_at"`
	Anomaly   string  `json:"anomaly,omitempty"`
}

func toEntryData(e db.Entry) EntryData {
	return EntryData{
		ID:        e.ID,
		Content:   e.Content,
		Mood:      e.Mood,
		Sentiment: e.Sentiment,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		Anomaly:   analysis.Anomaly(e.Mood, e.Sentiment),
	}
}

func toEntryList(entries []db.Entry) []EntryData {
	out := make([]EntryData, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryData(e))
	}
	return out
}

// AddEntryInput defines the input for add_entry tool.
type AddEntryInput struct {
	Content   string   `json:"content" jsonschema:"The journal text"`
	Mood      int      `json:"mood" jsonschema:"Self-reported mood from 1 (worst) to 10 (best)"`
	Sentiment *float64 `json:"sentiment,omitempty" jsonschema:"Optional sentiment in [-1, 1]; scored from the text when omitted"`
}

// ListEntriesInput defines the input for list_entries tool.
type ListEntriesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 20)"`
}

// ListEntriesOutput is shared by list_entries and search_entries.
type ListEntriesOutput struct {
	Entries []EntryData `json:"entries"`
	Count   int         `json:"count"`
}

// SearchEntriesInput defines the input for search_entries tool.
type SearchEntriesInput struct {
	Text    string `json:"text,omitempty" jsonschema:"Case-insensitive substring of the entry text"`
	MinMood int    `json:"min_mood,omitempty" jsonschema:"Lowest mood to include"`
	MaxMood int    `json:"max_mood,omitempty" jsonschema:"Highest mood to include"`
	Since   string `json:"since,omitempty" jsonschema:"Start date, ISO or natural format"`
	Until   string `json:"until,omitempty" jsonschema:"End date, ISO or natural format"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum results (default 100)"`
}

// UpdateEntryInput defines the input for update_entry tool.
type UpdateEntryInput struct {
	ID      int64   `json:"id" jsonschema:"The entry to update"`
	Content *string `json:"content,omitempty" jsonschema:"New text; sentiment is re-scored"`
	Mood    *int    `json:"mood,omitempty" jsonschema:"New mood from 1 to 10"`
}

// DeleteEntryInput defines the input for delete_entry tool.
type DeleteEntryInput struct {
	ID int64 `json:"id" jsonschema:"The entry to delete"`
}

// DeleteEntryOutput defines the output for delete_entry tool.
type DeleteEntryOutput struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_entry",
		Description: "Write a journal entry with a 1-10 mood. Use this when the user wants to record how they feel or what happened.",
	}, s.handleAddEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List the most recent journal entries, newest first.",
	}, s.handleListEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_entries",
		Description: "Search journal entries by text, mood range and date range.",
	}, s.handleSearchEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_entry",
		Description: "Change the text or mood of an existing journal entry.",
	}, s.handleUpdateEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Permanently delete a journal entry.",
	}, s.handleDeleteEntry)
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

// handleAddEntry implements the add_entry tool.
func (s *Server) handleAddEntry(ctx context.Context, req *mcp.CallToolRequest, input AddEntryInput) (*mcp.CallToolResult, EntryData, error) {
	if input.Content == "" {
		return nil, EntryData{}, errors.New("content is required")
	}

	entry, err := s.journal.Add(ctx, input.Content, input.Mood, input.Sentiment)
	if err != nil {
		return nil, EntryData{}, fmt.Errorf("failed to create entry: %w", err)
	}
	s.logger.Debug("entry created", "id", entry.ID)

	output := toEntryData(*entry)
	return textResult("Entry created successfully (ID: %d) at %s", output.ID, output.CreatedAt), output, nil
}

// handleListEntries implements the list_entries tool.
func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, err := s.journal.List(ctx, limit)
	if err != nil {
		return nil, ListEntriesOutput{}, fmt.Errorf("failed to list entries: %w", err)
	}

	output := ListEntriesOutput{Entries: toEntryList(entries), Count: len(entries)}
	return textResult("Found %d entries", output.Count), output, nil
}

// handleSearchEntries implements the search_entries tool.
func (s *Server) handleSearchEntries(ctx context.Context, req *mcp.CallToolRequest, input SearchEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	params := db.SearchParams{
		Text:    input.Text,
		MinMood: input.MinMood,
		MaxMood: input.MaxMood,
		Limit:   input.Limit,
	}
	if params.Limit <= 0 {
		params.Limit = 100
	}

	// Parse dates
	if input.Since != "" {
		since, err := dateparse.ParseAny(input.Since)
		if err != nil {
			return nil, ListEntriesOutput{}, fmt.Errorf("invalid since date: %w", err)
		}
		params.Since = &since
	}
	if input.Until != "" {
		until, err := dateparse.ParseAny(input.Until)
		if err != nil {
			return nil, ListEntriesOutput{}, fmt.Errorf("invalid until date: %w", err)
		}
		params.Until = &until
	}

	entries, err := s.journal.Search(ctx, params)
	if err != nil {
		return nil, ListEntriesOutput{}, fmt.Errorf("failed to search entries: %w", err)
	}

	output := ListEntriesOutput{Entries: toEntryList(entries), Count: len(entries)}
	return textResult("Found %d matching entries", output.Count), output, nil
}

// handleUpdateEntry implements the update_entry tool.
func (s *Server) handleUpdateEntry(ctx context.Context, req *mcp.CallToolRequest, input UpdateEntryInput) (*mcp.CallToolResult, EntryData, error) {
	if input.Content == nil && input.Mood == nil {
		return nil, EntryData{}, errors.New("nothing to update: give content or mood")
	}

	entry, err := s.journal.Edit(ctx, input.ID, journal.Changes{Content: input.Content, Mood: input.Mood})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, EntryData{}, fmt.Errorf("entry %d not found", input.ID)
	}
	if err != nil {
		return nil, EntryData{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return textResult("Entry %d updated", entry.ID), toEntryData(*entry), nil
}

// handleDeleteEntry implements the delete_entry tool.
func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input DeleteEntryInput) (*mcp.CallToolResult, DeleteEntryOutput, error) {
	err := s.journal.Delete(ctx, input.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, DeleteEntryOutput{}, fmt.Errorf("entry %d not found", input.ID)
	}
	if err != nil {
		return nil, DeleteEntryOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}

	return textResult("Entry %d deleted", input.ID), DeleteEntryOutput{ID: input.ID, Deleted: true}, nil
}
