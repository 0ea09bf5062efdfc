// ABOUTME: Connection provider for the journal store
// ABOUTME: Opens the SQLite file, materializes registered tables and issues sessions
package db

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is the store location, relative to the working directory.
const DefaultPath = "journal.db"

// Engine owns the store handle and the schema registry it materializes.
// It may be shared across goroutines; writers must be serialized by the caller.
type Engine struct {
	db   *sqlx.DB
	path string
	meta *Metadata
}

// Open connects to the SQLite file at path, creating it on first use.
func Open(path string, meta *Metadata) (*Engine, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return nil, err
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := path + "?_loc=UTC&_busy_timeout=5000&_journal_mode=WAL"
	conn, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if meta == nil {
		meta = NewMetadata()
	}

	return &Engine{db: conn, path: path, meta: meta}, nil
}

// OpenJournal opens the store at path with the entries table registered and materialized.
func OpenJournal(ctx context.Context, path string) (*Engine, error) {
	meta := NewMetadata()
	if err := RegisterEntry(meta); err != nil {
		return nil, err
	}

	engine, err := Open(path, meta)
	if err != nil {
		return nil, err
	}

	if err := engine.CreateAll(ctx); err != nil {
		_ = engine.Close()
		return nil, err
	}

	return engine, nil
}

// CreateAll materializes every table registered on the engine's metadata.
func (e *Engine) CreateAll(ctx context.Context) error {
	return e.meta.CreateAll(ctx, e.db)
}

// NewSession returns a new unit of work bound to the engine.
// Nothing touches the store until the session is first used.
func (e *Engine) NewSession() *Session {
	return newSession(e)
}

// Path returns the store file path.
func (e *Engine) Path() string {
	return e.path
}

// Metadata returns the schema registry used by the engine.
func (e *Engine) Metadata() *Metadata {
	return e.meta
}

// DB returns the underlying connection pool.
func (e *Engine) DB() *sqlx.DB {
	return e.db
}

// Close releases the connection pool.
func (e *Engine) Close() error {
	return e.db.Close()
}
