package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ResultRow is one completed-session summary. A user accumulates one row per
// run; rows are never merged or deduplicated.
type ResultRow struct {
	Usuario string
	Total   int
	Pontos  int
}

// ResultRepo is the append-only store of session results.
type ResultRepo struct {
	db *sql.DB
}

// Append records the outcome of one completed session.
func (r *ResultRepo) Append(ctx context.Context, username string, total, score int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO resultado (usuario, total_perguntas, pontuacao)
		 VALUES (?, ?, ?)`,
		username, total, score,
	)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

// All returns every recorded result in insertion order.
func (r *ResultRepo) All(ctx context.Context) ([]ResultRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT usuario, total_perguntas, pontuacao FROM resultado ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}
	defer rows.Close()

	var result []ResultRow
	for rows.Next() {
		var row ResultRow
		if err := rows.Scan(&row.Usuario, &row.Total, &row.Pontos); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
