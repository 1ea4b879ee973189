package quizbank

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Quiz_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

const validBank = `[
  {
    "titulo": "Capitais",
    "explicacao": "Capitais são as sedes de governo.",
    "pergunta": "Qual é a capital da França?",
    "opcoes": ["Paris", "Londres", "Roma"],
    "resposta": 1
  },
  {
    "titulo": "Matemática",
    "pergunta": "Quanto é 2 + 2?",
    "opcoes": ["3", "4"],
    "resposta": 2
  }
]`

func TestLoadValidBank(t *testing.T) {
	qs, err := Load(writeBank(t, validBank))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Titulo != "Capitais" {
		t.Errorf("titulo = %q", qs[0].Titulo)
	}
	if qs[0].Resposta != 1 {
		t.Errorf("resposta = %d, want 1", qs[0].Resposta)
	}
	if len(qs[0].Opcoes) != 3 {
		t.Errorf("opcoes len = %d, want 3", len(qs[0].Opcoes))
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	qs, err := Load(writeBank(t, validBank))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if qs[0].Titulo != "Capitais" || qs[1].Titulo != "Matemática" {
		t.Errorf("questions out of order: %q, %q", qs[0].Titulo, qs[1].Titulo)
	}
}

func TestLoadMissingFile(t *testing.T) {
	qs, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if qs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(qs) != 0 {
		t.Errorf("expected 0 questions, got %d", len(qs))
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	if _, err := Load(writeBank(t, `{not json`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"titulo": "x"}`},
		{"missing pergunta", `[{"titulo": "x", "opcoes": ["a"], "resposta": 1}]`},
		{"resposta zero", `[{"titulo": "x", "pergunta": "y", "opcoes": ["a"], "resposta": 0}]`},
		{"resposta string", `[{"titulo": "x", "pergunta": "y", "opcoes": ["a"], "resposta": "1"}]`},
		{"empty opcoes", `[{"titulo": "x", "pergunta": "y", "opcoes": [], "resposta": 1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeBank(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExplanationFallback(t *testing.T) {
	q := Question{Titulo: "x"}
	if q.Explanation() != DefaultExplanation {
		t.Errorf("expected placeholder, got %q", q.Explanation())
	}
	q.Explicacao = "porque sim"
	if q.Explanation() != "porque sim" {
		t.Errorf("expected own explanation, got %q", q.Explanation())
	}
}
