// ABOUTME: Entry record and its table descriptor
// ABOUTME: id, content, mood, sentiment and created_at with per-insert defaults
package db

import (
	"time"
)

// EntriesTable is the table name for journal entries.
const EntriesTable = "entries"

// Entry is one journal entry.
type Entry struct {
	ID        int64     `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	Mood      int       `db:"mood" json:"mood"`
	Sentiment float64   `db:"sentiment" json:"sentiment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EntrySchema returns the descriptor of the entries table.
func EntrySchema() *Table {
	return &Table{
		Name: EntriesTable,
		Columns: []Column{
			{Name: "id", Type: Integer, PrimaryKey: true, Index: true},
			{Name: "content", Type: Text},
			{Name: "mood", Type: Integer},
			{Name: "sentiment", Type: Float, Default: func() any { return 0.0 }},
			{Name: "created_at", Type: Timestamp, Default: func() any { return time.Now().UTC() }},
		},
	}
}

// RegisterEntry registers the entries table on meta.
func RegisterEntry(meta *Metadata) error {
	return meta.Register(EntrySchema())
}

// TableName implements Record.
func (e *Entry) TableName() string {
	return EntriesTable
}

// Values implements Record. Zero id, sentiment and created_at count as omitted.
func (e *Entry) Values() map[string]any {
	values := map[string]any{
		"content": e.Content,
		"mood":    e.Mood,
	}
	if e.ID != 0 {
		values["id"] = e.ID
	}
	if e.Sentiment != 0 {
		values["sentiment"] = e.Sentiment
	}
	if !e.CreatedAt.IsZero() {
		values["created_at"] = e.CreatedAt.UTC()
	}
	return values
}

// Assign implements Record.
func (e *Entry) Assign(values map[string]any) {
	if v, ok := values["id"].(int64); ok {
		e.ID = v
	}
	if v, ok := values["sentiment"].(float64); ok {
		e.Sentiment = v
	}
	if v, ok := values["created_at"].(time.Time); ok {
		e.CreatedAt = v
	}
}
