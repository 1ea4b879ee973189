// Package store owns the persisted state of the quiz application: the user
// table, the append-only answer ledger, and the per-session result table.
// All access goes through repositories handed out by Store.
package store

import (
	"database/sql"
	"fmt"

	"github.com/lfreitas/quizdeck/internal/config"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db   *sql.DB
	salt string
}

// Open runs the schema guard for cfg.DBPath and connects to the database.
// The guard runs before anything else touches the file; a failure here is
// fatal to startup and is returned, not recovered.
func Open(cfg config.Config) (*Store, error) {
	if err := ensureCompatible(cfg.DBPath, cfg.BackupPath); err != nil {
		return nil, fmt.Errorf("schema guard: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db, salt: cfg.PasswordSalt}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns the credential repository backed by this store.
func (s *Store) Users() *UserRepo {
	return &UserRepo{db: s.db, salt: s.salt}
}

// Answers returns the answer ledger backed by this store.
func (s *Store) Answers() *AnswerRepo {
	return &AnswerRepo{db: s.db}
}

// Results returns the result repository backed by this store.
func (s *Store) Results() *ResultRepo {
	return &ResultRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
