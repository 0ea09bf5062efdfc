// ABOUTME: Tests for entry creation and retrieval
// ABOUTME: Validates defaults, id assignment, search, update and delete
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createCommitted inserts entries in their own session and commits.
func createCommitted(t *testing.T, engine *Engine, entries ...*Entry) {
	t.Helper()
	err := WithSession(context.Background(), engine, func(s *Session) error {
		for _, e := range entries {
			if err := CreateEntry(context.Background(), s, e); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestCreateEntryDefaults(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	before := time.Now().UTC()
	entry := &Entry{Content: "quiet day", Mood: 5}
	createCommitted(t, engine, entry)

	assert.Equal(t, 0.0, entry.Sentiment)
	assert.WithinDuration(t, before, entry.CreatedAt, 5*time.Second)
	assert.Equal(t, time.UTC, entry.CreatedAt.Location())

	// Read back from the store
	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	got, err := GetEntry(ctx, s, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "quiet day", got.Content)
	assert.Equal(t, 5, got.Mood)
	assert.Equal(t, 0.0, got.Sentiment)
	assert.True(t, got.CreatedAt.Equal(entry.CreatedAt), "got %v, want %v", got.CreatedAt, entry.CreatedAt)
}

func TestCreateEntryExplicitValues(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	created := time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC)
	entry := &Entry{Content: "great news", Mood: 9, Sentiment: 0.8, CreatedAt: created}
	createCommitted(t, engine, entry)

	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	got, err := GetEntry(ctx, s, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got.Sentiment)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestCreateEntryIDsIncrease(t *testing.T) {
	engine := newTestEngine(t)

	first := &Entry{Content: "one", Mood: 4}
	second := &Entry{Content: "two", Mood: 6}
	createCommitted(t, engine, first)
	createCommitted(t, engine, second)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateEntryTimestampsPerInsert(t *testing.T) {
	engine := newTestEngine(t)

	first := &Entry{Content: "morning", Mood: 4}
	createCommitted(t, engine, first)
	time.Sleep(10 * time.Millisecond)
	second := &Entry{Content: "evening", Mood: 6}
	createCommitted(t, engine, second)

	assert.True(t, second.CreatedAt.After(first.CreatedAt),
		"expected %v after %v", second.CreatedAt, first.CreatedAt)
}

func TestCreateEntryDuplicateID(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	createCommitted(t, engine, &Entry{ID: 7, Content: "original", Mood: 5})

	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	err := CreateEntry(ctx, s, &Entry{ID: 7, Content: "clash", Mood: 5})
	require.Error(t, err)

	// The driver error comes through untouched
	var sqliteErr sqlite3.Error
	require.True(t, errors.As(err, &sqliteErr), "expected sqlite3.Error, got %T", err)
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)
}

func TestGetEntryNotFound(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	_, err := GetEntry(ctx, s, 404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	base := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createCommitted(t, engine, &Entry{
			Content:   fmt.Sprintf("entry %d", i),
			Mood:      i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	entries, err := ListEntries(ctx, s, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Most recent first
	assert.Equal(t, "entry 4", entries[0].Content)
	assert.Equal(t, "entry 2", entries[2].Content)

	all, err := ListEntries(ctx, s, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSearchEntries(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	day := func(d int) time.Time { return time.Date(2025, 11, d, 12, 0, 0, 0, time.UTC) }
	createCommitted(t, engine,
		&Entry{Content: "Went hiking with friends", Mood: 9, CreatedAt: day(1)},
		&Entry{Content: "Rough meeting at work", Mood: 3, CreatedAt: day(2)},
		&Entry{Content: "Work was fine", Mood: 6, CreatedAt: day(3)},
	)

	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	t.Run("search by text is case-insensitive", func(t *testing.T) {
		results, err := SearchEntries(ctx, s, SearchParams{Text: "work"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Work was fine", results[0].Content)
	})

	t.Run("search by mood range", func(t *testing.T) {
		results, err := SearchEntries(ctx, s, SearchParams{MinMood: 5, MaxMood: 8})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 6, results[0].Mood)
	})

	t.Run("search by date range", func(t *testing.T) {
		since := day(2).Add(-time.Hour)
		until := day(2).Add(time.Hour)
		results, err := SearchEntries(ctx, s, SearchParams{Since: &since, Until: &until})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Rough meeting at work", results[0].Content)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		results, err := SearchEntries(ctx, s, SearchParams{Text: "zebra"})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestUpdateEntry(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	entry := &Entry{Content: "draft", Mood: 4}
	createCommitted(t, engine, entry)

	err := WithSession(ctx, engine, func(s *Session) error {
		return UpdateEntry(ctx, s, Entry{ID: entry.ID, Content: "revised", Mood: 7, Sentiment: 0.4})
	})
	require.NoError(t, err)

	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	got, err := GetEntry(ctx, s, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", got.Content)
	assert.Equal(t, 7, got.Mood)
	assert.Equal(t, 0.4, got.Sentiment)
	assert.True(t, got.CreatedAt.Equal(entry.CreatedAt), "created_at must not change")

	err = UpdateEntry(ctx, s, Entry{ID: 999, Content: "ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	entry := &Entry{Content: "regret", Mood: 2}
	createCommitted(t, engine, entry)

	err := WithSession(ctx, engine, func(s *Session) error {
		return DeleteEntry(ctx, s, entry.ID)
	})
	require.NoError(t, err)
	assert.Equal(t, 0, countEntries(t, engine))

	err = WithSession(ctx, engine, func(s *Session) error {
		return DeleteEntry(ctx, s, entry.ID)
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
