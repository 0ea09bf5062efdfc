// ABOUTME: Session (unit of work) over the journal store
// ABOUTME: Explicit flush and commit; nothing is persisted implicitly
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrSessionClosed is returned when a closed session is used.
var ErrSessionClosed = errors.New("session is closed")

// Record is a row that can be queued on a session for insertion.
type Record interface {
	// TableName names the registered table the record belongs to.
	TableName() string
	// Values returns the column values the caller set. Omitted columns are absent.
	Values() map[string]any
	// Assign receives every inserted value, including the primary key and defaults.
	Assign(values map[string]any)
}

// Session is a short-lived unit of work. It is not safe for concurrent use.
//
// The transaction begins lazily. Add only queues records; they reach the
// store on Flush or Commit, and become durable only on Commit. Reads never
// flush pending records.
type Session struct {
	id      uuid.UUID
	engine  *Engine
	tx      *sqlx.Tx
	pending []Record
	closed  bool
}

func newSession(e *Engine) *Session {
	return &Session{id: uuid.New(), engine: e}
}

// ID identifies the session in diagnostics.
func (s *Session) ID() string {
	return s.id.String()
}

// Pending returns how many records are queued but not yet flushed.
func (s *Session) Pending() int {
	return len(s.pending)
}

// begin returns the open transaction, starting one if needed.
func (s *Session) begin(ctx context.Context) (*sqlx.Tx, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.tx == nil {
		tx, err := s.engine.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, err
		}
		s.tx = tx
	}
	return s.tx, nil
}

// Add queues a record for insertion.
func (s *Session) Add(rec Record) error {
	if s.closed {
		return ErrSessionClosed
	}
	if _, ok := s.engine.meta.Table(rec.TableName()); !ok {
		return fmt.Errorf("table %q is not registered", rec.TableName())
	}
	s.pending = append(s.pending, rec)
	return nil
}

// Flush writes queued records inside the session's transaction.
// Records that were written are removed from the queue even if a later one fails.
func (s *Session) Flush(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	for len(s.pending) > 0 {
		rec := s.pending[0]
		table, _ := s.engine.meta.Table(rec.TableName())

		values := rec.Values()
		if values == nil {
			values = make(map[string]any)
		}
		table.applyDefaults(values)

		query, args := table.insertSQL(values)
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		if pk := table.PrimaryKey(); pk != "" {
			if _, set := values[pk]; !set {
				id, err := result.LastInsertId()
				if err != nil {
					return err
				}
				values[pk] = id
			}
		}

		rec.Assign(values)
		s.pending = s.pending[1:]
	}
	return nil
}

// Commit flushes pending records and commits the transaction.
// The next use of the session starts a new transaction.
func (s *Session) Commit(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit()
}

// Rollback discards pending records and any uncommitted writes.
func (s *Session) Rollback() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.pending = nil
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Rollback()
}

// Close discards anything uncommitted and releases the connection.
// Closing an already closed session is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	err := s.Rollback()
	s.closed = true
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// Get runs a single-row query into dest within the session's transaction.
func (s *Session) Get(ctx context.Context, dest any, query string, args ...any) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	return tx.GetContext(ctx, dest, query, args...)
}

// Select runs a multi-row query into dest within the session's transaction.
func (s *Session) Select(ctx context.Context, dest any, query string, args ...any) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	return tx.SelectContext(ctx, dest, query, args...)
}

// Exec runs a statement within the session's transaction.
func (s *Session) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx.ExecContext(ctx, query, args...)
}

// WithSession runs fn in a new session, commits if fn succeeds and always closes.
func WithSession(ctx context.Context, engine *Engine, fn func(s *Session) error) error {
	s := engine.NewSession()
	defer func() { _ = s.Close() }()

	if err := fn(s); err != nil {
		return err
	}
	return s.Commit(ctx)
}
