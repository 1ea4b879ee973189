package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lfreitas/quizdeck/internal/cryptox"
)

// AnswerRow is one submitted answer as seen by the read side. The chosen
// option text itself is not readable back; only its hash is stored.
type AnswerRow struct {
	Usuario  string
	Pergunta string
	Correta  bool
}

// AnswerRepo is the append-only ledger of submitted answers. No update or
// delete operations exist.
type AnswerRepo struct {
	db *sql.DB
}

// Append records one answer: the question text, the hash of the literal
// option text chosen, and whether it was correct.
func (r *AnswerRepo) Append(ctx context.Context, username, question, chosenText string, correct bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO respostas (usuario, pergunta, resposta_criptografada, correta)
		 VALUES (?, ?, ?, ?)`,
		username, question, cryptox.HashAnswer(chosenText), correct,
	)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	return nil
}

// All returns every recorded answer in insertion order.
func (r *AnswerRepo) All(ctx context.Context) ([]AnswerRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT usuario, pergunta, correta FROM respostas ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select answers: %w", err)
	}
	defer rows.Close()

	var result []AnswerRow
	for rows.Next() {
		var row AnswerRow
		if err := rows.Scan(&row.Usuario, &row.Pergunta, &row.Correta); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
