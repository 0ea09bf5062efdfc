// ABOUTME: Tests for MCP server
// ABOUTME: Exercises tool and resource handlers against a temp journal
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/db"
	"github.com/harper/moodjournal/internal/journal"
	"github.com/harper/moodjournal/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine, err := db.OpenJournal(context.Background(), filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return NewServer(journal.New(engine), logging.NewLogger(io.Discard, false))
}

func TestAddAndListEntries(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	result, out, err := s.handleAddEntry(ctx, nil, AddEntryInput{Content: "Lovely walk in the park", Mood: 8})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotZero(t, out.ID)
	assert.Greater(t, out.Sentiment, 0.0)
	assert.NotEmpty(t, out.CreatedAt)

	_, _, err = s.handleAddEntry(ctx, nil, AddEntryInput{Mood: 5})
	assert.Error(t, err, "empty content should be rejected")

	_, list, err := s.handleListEntries(ctx, nil, ListEntriesInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, out.ID, list.Entries[0].ID)
}

func TestSearchEntriesTool(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	_, _, err := s.handleAddEntry(ctx, nil, AddEntryInput{Content: "Deadline stress at work", Mood: 3})
	require.NoError(t, err)
	_, _, err = s.handleAddEntry(ctx, nil, AddEntryInput{Content: "Dinner with family", Mood: 8})
	require.NoError(t, err)

	_, out, err := s.handleSearchEntries(ctx, nil, SearchEntriesInput{Text: "work"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Deadline stress at work", out.Entries[0].Content)

	_, out, err = s.handleSearchEntries(ctx, nil, SearchEntriesInput{MinMood: 7, Since: "2000-01-01"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, 8, out.Entries[0].Mood)

	_, _, err = s.handleSearchEntries(ctx, nil, SearchEntriesInput{Since: "zzzz"})
	assert.Error(t, err)
}

func TestUpdateAndDeleteTools(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	_, added, err := s.handleAddEntry(ctx, nil, AddEntryInput{Content: "Okay day", Mood: 5})
	require.NoError(t, err)

	mood := 2
	_, updated, err := s.handleUpdateEntry(ctx, nil, UpdateEntryInput{ID: added.ID, Mood: &mood})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Mood)

	_, _, err = s.handleUpdateEntry(ctx, nil, UpdateEntryInput{ID: added.ID})
	assert.Error(t, err, "update without changes should be rejected")

	_, _, err = s.handleUpdateEntry(ctx, nil, UpdateEntryInput{ID: 404, Mood: &mood})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, deleted, err := s.handleDeleteEntry(ctx, nil, DeleteEntryInput{ID: added.ID})
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	_, _, err = s.handleDeleteEntry(ctx, nil, DeleteEntryInput{ID: added.ID})
	assert.Error(t, err)
}

func TestResources(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	masked := -0.6
	_, _, err := s.handleAddEntry(ctx, nil, AddEntryInput{Content: "Everything is fine I guess", Mood: 9, Sentiment: &masked})
	require.NoError(t, err)
	_, _, err = s.handleAddEntry(ctx, nil, AddEntryInput{Content: "Quiet evening", Mood: 5})
	require.NoError(t, err)

	t.Run("recent entries", func(t *testing.T) {
		res, err := s.handleRecentEntries(ctx, nil)
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)

		var entries []EntryData
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &entries))
		assert.Len(t, entries, 2)
	})

	t.Run("stats", func(t *testing.T) {
		res, err := s.handleStats(ctx, nil)
		require.NoError(t, err)

		var stats analysis.Stats
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &stats))
		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, 7.0, stats.AverageMood)
		assert.Equal(t, 1, stats.Anomalies)
	})

	t.Run("anomalies", func(t *testing.T) {
		res, err := s.handleAnomalies(ctx, nil)
		require.NoError(t, err)

		text := res.Contents[0].Text
		assert.True(t, strings.Contains(text, analysis.AnomalyMasking), text)
		assert.False(t, strings.Contains(text, "Quiet evening"), text)
	})
}
