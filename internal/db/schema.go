// ABOUTME: Schema registry for persisted record types
// ABOUTME: Declares tables, columns, per-insert defaults and generates DDL
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
)

// ColumnType is the semantic type of a column.
type ColumnType int

const (
	Integer ColumnType = iota
	Text
	Float
	Timestamp
)

// SQL returns the SQLite declared type for the column type.
func (t ColumnType) SQL() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Timestamp:
		// DATETIME makes go-sqlite3 scan the column into time.Time
		return "DATETIME"
	default:
		return "TEXT"
	}
}

// Column describes one column of a table.
// Default, when set, is called once per inserted row that omits the column.
type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	Index      bool
	Default    func() any
}

// Table describes the shape of one persisted record type.
type Table struct {
	Name    string
	Columns []Column
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// PrimaryKey returns the name of the primary key column, or "" if there is none.
func (t *Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// DDL returns the statements that materialize the table and its indexes.
func (t *Table) DDL() []string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := c.Name + " " + c.Type.SQL()
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}

	stmts := []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    %s\n)", t.Name, strings.Join(defs, ",\n    ")),
	}
	for _, c := range t.Columns {
		if c.Index {
			stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS ix_%s_%s ON %s (%s)", t.Name, c.Name, t.Name, c.Name))
		}
	}
	return stmts
}

// applyDefaults fills every omitted column that has a default provider.
func (t *Table) applyDefaults(values map[string]any) {
	for _, c := range t.Columns {
		if c.Default == nil {
			continue
		}
		if _, ok := values[c.Name]; !ok {
			values[c.Name] = c.Default()
		}
	}
}

// insertSQL builds an INSERT for the given values in column declaration order.
func (t *Table) insertSQL(values map[string]any) (string, []any) {
	var names, marks []string
	var args []any
	for _, c := range t.Columns {
		v, ok := values[c.Name]
		if !ok {
			continue
		}
		names = append(names, c.Name)
		marks = append(marks, "?")
		args = append(args, v)
	}
	if len(names) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", t.Name), nil
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(names, ", "), strings.Join(marks, ", "))
	return query, args
}

// ErrTableRegistered is returned when a table name is registered twice.
var ErrTableRegistered = errors.New("table already registered")

// Metadata is the registry of every table the store should materialize.
type Metadata struct {
	mu     sync.RWMutex
	tables []*Table
	byName map[string]*Table
}

// NewMetadata returns an empty registry.
func NewMetadata() *Metadata {
	return &Metadata{byName: make(map[string]*Table)}
}

// Register adds a table to the registry.
func (m *Metadata) Register(t *Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byName[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrTableRegistered, t.Name)
	}
	m.tables = append(m.tables, t)
	m.byName[t.Name] = t
	return nil
}

// Table looks up a registered table by name.
func (m *Metadata) Table(name string) (*Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.byName[name]
	return t, ok
}

// Tables returns the registered tables in registration order.
func (m *Metadata) Tables() []*Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Table, len(m.tables))
	copy(out, m.tables)
	return out
}

// CreateAll materializes every registered table. It is safe to call repeatedly.
func (m *Metadata) CreateAll(ctx context.Context, db sqlx.ExecerContext) error {
	for _, t := range m.Tables() {
		for _, stmt := range t.DDL() {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}
