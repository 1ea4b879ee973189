package store

import (
	"database/sql"
	"fmt"
	"os"
)

// Schema guard.
//
// Early releases of the original app tracked answers and results without a
// username column. A database written by one of those releases cannot be
// extended in place without guessing which rows belong to whom, so the guard
// archives the whole file to the backup path and starts fresh. Old rows are
// not migrated forward; the backup stays on disk for manual recovery. This
// column sniff is a one-time compatibility shim, not a general migration
// mechanism.

// ensureCompatible inspects an existing database file and archives it when
// its respostas or resultado table predates per-user tracking. It performs
// at most one rename and one delete, and must run before any other
// component opens the database.
func ensureCompatible(dbPath, backupPath string) error {
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil // nothing on disk, Open will create it
		}
		return fmt.Errorf("stat %s: %w", dbPath, err)
	}

	incompatible, err := inspectSchema(dbPath)
	if err != nil {
		return err
	}
	if !incompatible {
		return nil
	}

	// Overwrite any prior backup, then move the live file aside.
	if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old backup: %w", err)
	}
	if err := os.Rename(dbPath, backupPath); err != nil {
		return fmt.Errorf("archive database: %w", err)
	}
	return nil
}

// inspectSchema reports whether the database at dbPath lacks the usuario
// column in either legacy-relevant table.
func inspectSchema(dbPath string) (incompatible bool, err error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return false, fmt.Errorf("open for inspection: %w", err)
	}
	defer db.Close()

	for _, table := range []string{"respostas", "resultado"} {
		exists, err := tableExists(db, table)
		if err != nil {
			return false, err
		}
		if !exists {
			continue
		}
		hasUser, err := tableHasColumn(db, table, "usuario")
		if err != nil {
			return false, err
		}
		if !hasUser {
			return true, nil
		}
	}
	return false, nil
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var found string
	err := db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name,
	).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return true, nil
}

func tableHasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			typ       string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// createTables ensures all three tables exist, leaving existing data alone.
func createTables(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nome_completo TEXT,
			usuario TEXT UNIQUE,
			senha_hash TEXT,
			data_nascimento TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS respostas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			usuario TEXT,
			pergunta TEXT,
			resposta_criptografada TEXT,
			correta BOOLEAN
		)`,
		`CREATE TABLE IF NOT EXISTS resultado (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			usuario TEXT,
			total_perguntas INTEGER,
			pontuacao INTEGER
		)`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
