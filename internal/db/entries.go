// ABOUTME: Entry creation and management
// ABOUTME: Create, read, search, update and delete entries through a session
package db

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

const entryColumns = "id, content, mood, sentiment, created_at"

// CreateEntry queues entry on the session and flushes it so its ID and defaults are set.
// The entry is not durable until the session commits.
func CreateEntry(ctx context.Context, s *Session, entry *Entry) error {
	if err := s.Add(entry); err != nil {
		return err
	}
	return s.Flush(ctx)
}

// GetEntry returns the entry with the given ID, or sql.ErrNoRows.
func GetEntry(ctx context.Context, s *Session, id int64) (*Entry, error) {
	var entry Entry
	err := s.Get(ctx, &entry, "SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns the most recent entries, limited by limit (0 for all)
func ListEntries(ctx context.Context, s *Session, limit int) ([]Entry, error) {
	return SearchEntries(ctx, s, SearchParams{Limit: limit})
}

type SearchParams struct {
	Text    string
	MinMood int
	MaxMood int
	Since   *time.Time
	Until   *time.Time
	Limit   int
}

// SearchEntries searches entries based on parameters, newest first
func SearchEntries(ctx context.Context, s *Session, params SearchParams) ([]Entry, error) {
	query := "SELECT " + entryColumns + " FROM entries"
	var conditions []string
	var args []any

	// Case-insensitive substring match
	if params.Text != "" {
		conditions = append(conditions, "content LIKE '%' || ? || '%'")
		args = append(args, params.Text)
	}

	// Mood range
	if params.MinMood > 0 {
		conditions = append(conditions, "mood >= ?")
		args = append(args, params.MinMood)
	}
	if params.MaxMood > 0 {
		conditions = append(conditions, "mood <= ?")
		args = append(args, params.MaxMood)
	}

	// Date range
	if params.Since != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, params.Since.UTC())
	}
	if params.Until != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, params.Until.UTC())
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	if params.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, params.Limit)
	}

	entries := []Entry{}
	if err := s.Select(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntry rewrites content, mood and sentiment of an existing entry.
// ID and CreatedAt are never changed. Returns sql.ErrNoRows if the entry does not exist.
func UpdateEntry(ctx context.Context, s *Session, entry Entry) error {
	result, err := s.Exec(ctx,
		"UPDATE entries SET content = ?, mood = ?, sentiment = ? WHERE id = ?",
		entry.Content, entry.Mood, entry.Sentiment, entry.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// DeleteEntry removes an entry. Returns sql.ErrNoRows if the entry does not exist.
func DeleteEntry(ctx context.Context, s *Session, id int64) error {
	result, err := s.Exec(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
