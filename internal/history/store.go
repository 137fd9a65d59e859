// Package history records the outcome of organize operations in a
// local sqlite database.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Outcomes for history records.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

//go:embed schema.sql
var schemaSQL string

// Entry represents one recorded organize attempt.
type Entry struct {
	ID          int64
	Source      string
	Destination string
	Mode        string
	Outcome     string
	Error       string // empty on success
	CreatedAt   time.Time
}

// Filter specifies criteria for listing history.
type Filter struct {
	Outcome string // empty matches all
	Limit   int
}

// Store persists history records.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and its parent directory) if needed
// and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new history entry and fills in its ID and timestamp.
func (s *Store) Add(e *Entry) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO history (source, destination, mode, outcome, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Source, e.Destination, e.Mode, e.Outcome, e.Error, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	e.ID = id
	e.CreatedAt = now
	return nil
}

// List returns history entries matching the filter, most recent first.
func (s *Store) List(f Filter) ([]*Entry, error) {
	var conditions []string
	var args []any

	if f.Outcome != "" {
		conditions = append(conditions, "outcome = ?")
		args = append(args, f.Outcome)
	}

	query := `SELECT id, source, destination, mode, outcome, error, created_at FROM history`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.Destination, &e.Mode, &e.Outcome, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}
