package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lfreitas/quizdeck/internal/cryptox"

	sqlite "modernc.org/sqlite"
)

// SQLite result codes for constraint violations. The driver reports the
// extended code for UNIQUE conflicts; the primary code is matched too in
// case extended result codes are disabled.
const (
	sqliteConstraint       = 19
	sqliteConstraintUnique = 2067
)

// UserRepo owns the usuarios table: registration and authentication.
type UserRepo struct {
	db   *sql.DB
	salt string
}

// Register inserts a new user row. It reports false when the username is
// already taken; the uniqueness violation is absorbed here, never surfaced
// as an error. No constraints apply to fullName or birthdate content.
func (r *UserRepo) Register(ctx context.Context, fullName, username, password, birthdate string) (bool, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO usuarios (nome_completo, usuario, senha_hash, data_nascimento)
		 VALUES (?, ?, ?, ?)`,
		fullName, username, cryptox.HashPassword(password, r.salt), birthdate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert user: %w", err)
	}
	return true, nil
}

// Authenticate reports whether username exists and password matches its
// stored hash. An unknown username and a wrong password are deliberately
// indistinguishable to the caller.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var storedHash string
	err := r.db.QueryRowContext(ctx,
		`SELECT senha_hash FROM usuarios WHERE usuario = ?`, username,
	).Scan(&storedHash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return storedHash == cryptox.HashPassword(password, r.salt), nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqliteConstraintUnique || se.Code() == sqliteConstraint
}
