// Package history persists completed calculations to SQLite. The store is
// optional: the CLI and server run without one, they just keep no record
// of past runs.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Calculation kinds stored in the history log.
const (
	KindSingle = "single"
	KindMixed  = "mixed"
)

// Entry is one recorded calculation. Result holds the full JSON-encoded
// outcome; the other columns are denormalized for listing.
type Entry struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	UseTypes       string          `json:"use_types"`
	RequiredSpaces int             `json:"required_spaces"`
	ADASpaces      int             `json:"ada_spaces"`
	Result         json.RawMessage `json:"result"`
	CreatedAt      int64           `json:"created_at"`
}

// Store keeps calculation history in a SQLite database.
type Store struct {
	db *sql.DB
}

// New opens the history database at dbPath, creating the file, its parent
// directories, and the schema as needed.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists a calculation. ID and CreatedAt are filled in when unset.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO calculations (id, kind, use_types, required_spaces, ada_spaces, result, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Kind, e.UseTypes, e.RequiredSpaces, e.ADASpaces, string(e.Result), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}
	return nil
}

// Recent returns the latest calculations, newest first. A limit of 0 or
// less means the default of 20. Entries recorded in the same second come
// back in reverse insertion order.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, use_types, required_spaces, ada_spaces, result, created_at FROM calculations ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		// The driver returns TEXT columns as string, which database/sql
		// cannot convert to json.RawMessage directly; go through []byte.
		var result []byte
		if err := rows.Scan(&e.ID, &e.Kind, &e.UseTypes, &e.RequiredSpaces, &e.ADASpaces, &result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		e.Result = result
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calculations: %w", err)
	}

	return entries, nil
}
