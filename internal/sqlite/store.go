package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Store wraps the SQLite database handle. It is created once at startup and
// passed explicitly to the cleaning orchestrator, the creation service, and
// the HTTP handlers.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database file, and
// applies the table and foreign-key index DDL.
func Open(dataDir, dbFile string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// The creation transaction spans multiple statements; a single
	// connection keeps SQLite's locking behavior predictable.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply indexes: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DB exposes the raw handle for the cleaning orchestrator, which issues
// table-driven statements the typed accessors do not cover.
func (s *Store) DB() *sql.DB {
	return s.db
}

// BeginTx starts a transaction for the multi-step creation flow.
func (s *Store) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return s.db.BeginTx(ctx, nil)
}

// EnsureNameIndexes applies the unique canonical-name indexes. Called after
// cleaning has merged duplicates; fails if duplicates remain.
func (s *Store) EnsureNameIndexes(ctx context.Context) error {
	for _, ddl := range canonicalIndexDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("apply canonical index: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure, the loser's signal in a concurrent-insert race.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// mapInsertErr converts a unique-constraint failure to ErrAlreadyExists and
// wraps anything else.
func mapInsertErr(op string, err error) error {
	if isUniqueViolation(err) {
		return types.ErrAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
