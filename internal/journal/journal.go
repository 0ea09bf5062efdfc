// ABOUTME: Journal operations shared by the CLI and the MCP server
// ABOUTME: One session per operation, sentiment scored from content when not given
package journal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/harper/moodjournal/internal/analysis"
	"github.com/harper/moodjournal/internal/db"
)

// Journal runs entry operations against one engine.
type Journal struct {
	engine   *db.Engine
	analyzer *analysis.Analyzer
}

// New returns a journal over engine.
func New(engine *db.Engine) *Journal {
	return &Journal{engine: engine, analyzer: analysis.NewAnalyzer()}
}

// Engine returns the underlying engine.
func (j *Journal) Engine() *db.Engine {
	return j.engine
}

// Add creates an entry. When sentiment is nil it is scored from content.
func (j *Journal) Add(ctx context.Context, content string, mood int, sentiment *float64) (*db.Entry, error) {
	entry := &db.Entry{Content: content, Mood: mood}
	if sentiment != nil {
		entry.Sentiment = *sentiment
	} else {
		entry.Sentiment = j.analyzer.Score(content)
	}

	err := db.WithSession(ctx, j.engine, func(s *db.Session) error {
		return db.CreateEntry(ctx, s, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Get returns one entry, or sql.ErrNoRows.
func (j *Journal) Get(ctx context.Context, id int64) (*db.Entry, error) {
	s := j.engine.NewSession()
	defer func() { _ = s.Close() }()
	return db.GetEntry(ctx, s, id)
}

// List returns the most recent entries.
func (j *Journal) List(ctx context.Context, limit int) ([]db.Entry, error) {
	s := j.engine.NewSession()
	defer func() { _ = s.Close() }()
	return db.ListEntries(ctx, s, limit)
}

// Search returns entries matching params.
func (j *Journal) Search(ctx context.Context, params db.SearchParams) ([]db.Entry, error) {
	s := j.engine.NewSession()
	defer func() { _ = s.Close() }()
	return db.SearchEntries(ctx, s, params)
}

// Changes lists the fields an edit sets. Nil fields are left alone.
type Changes struct {
	Content   *string
	Mood      *int
	Sentiment *float64
}

// Edit applies changes to an entry. New content without an explicit
// sentiment is re-scored.
func (j *Journal) Edit(ctx context.Context, id int64, changes Changes) (*db.Entry, error) {
	var updated *db.Entry

	err := db.WithSession(ctx, j.engine, func(s *db.Session) error {
		entry, err := db.GetEntry(ctx, s, id)
		if err != nil {
			return err
		}

		if changes.Content != nil {
			entry.Content = *changes.Content
			entry.Sentiment = j.analyzer.Score(entry.Content)
		}
		if changes.Mood != nil {
			entry.Mood = *changes.Mood
		}
		if changes.Sentiment != nil {
			entry.Sentiment = *changes.Sentiment
		}

		if err := db.UpdateEntry(ctx, s, *entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an entry, or returns sql.ErrNoRows.
func (j *Journal) Delete(ctx context.Context, id int64) error {
	return db.WithSession(ctx, j.engine, func(s *db.Session) error {
		return db.DeleteEntry(ctx, s, id)
	})
}

// Restore inserts entries whose IDs are not in the store yet, keeping their
// IDs and timestamps. It returns how many were inserted.
func (j *Journal) Restore(ctx context.Context, entries []db.Entry) (int, error) {
	restored := 0

	err := db.WithSession(ctx, j.engine, func(s *db.Session) error {
		for i := range entries {
			_, err := db.GetEntry(ctx, s, entries[i].ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}

			entry := entries[i]
			if err := s.Add(&entry); err != nil {
				return err
			}
			restored++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return restored, nil
}
