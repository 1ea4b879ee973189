// Package quizbank loads the static question bank consumed by a quiz
// session. The file format is the original app's JSON: an ordered array of
// question records with Portuguese field names.
package quizbank

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultExplanation is shown when a question carries no explanation text.
const DefaultExplanation = "Não há explicação disponível para este tópico."

// Question is one immutable record from the question bank.
type Question struct {
	Titulo     string   `json:"titulo"`
	Explicacao string   `json:"explicacao,omitempty"`
	Pergunta   string   `json:"pergunta"`
	Opcoes     []string `json:"opcoes"`
	// Resposta is the 1-based index of the correct option. The bank is
	// trusted to keep it within range; the loader checks shape, not truth.
	Resposta int `json:"resposta"`
}

// Explanation returns the explanatory text, or the default placeholder when
// the record has none.
func (q Question) Explanation() string {
	if q.Explicacao == "" {
		return DefaultExplanation
	}
	return q.Explicacao
}

// Load reads the question bank at path. A missing file is an error the
// caller should surface, but the returned empty slice is still usable: a
// session over zero questions simply finishes immediately.
func Load(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Question{}, fmt.Errorf("question bank %s not found", path)
		}
		return []Question{}, fmt.Errorf("read question bank: %w", err)
	}

	if err := validate(raw); err != nil {
		return []Question{}, fmt.Errorf("question bank %s: %w", path, err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return []Question{}, fmt.Errorf("parse question bank: %w", err)
	}
	return questions, nil
}
