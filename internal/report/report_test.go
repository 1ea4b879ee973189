package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lfreitas/quizdeck/internal/store"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{0, 0, "0%"},
		{7, 10, "70.0%"},
		{1, 3, "33.3%"},
		{2, 2, "100.0%"},
		{0, 5, "0.0%"},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestWriteAnswersCSVHeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	rows := []store.AnswerRow{
		{Usuario: "ana", Pergunta: "Capital da França?", Correta: true},
		{Usuario: "bob", Pergunta: "Quanto é 2+2?", Correta: false},
	}
	if err := WriteAnswersCSV(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Usuario,Pergunta,Correta" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "ana,Capital da França?,1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "bob,Quanto é 2+2?,0" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteResultsCSVHeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	rows := []store.ResultRow{
		{Usuario: "ana", Total: 2, Pontos: 1},
	}
	if err := WriteResultsCSV(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Usuario,Total,Acertos" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "ana,2,1" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportFilesWritesBoth(t *testing.T) {
	dir := t.TempDir()
	err := ExportFiles(dir,
		[]store.AnswerRow{{Usuario: "ana", Pergunta: "q", Correta: true}},
		[]store.ResultRow{{Usuario: "ana", Total: 1, Pontos: 1}},
	)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, name := range []string{AnswersFileName, ResultsFileName} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestChartEmptyResults(t *testing.T) {
	out := Chart(nil, 80)
	if !strings.Contains(out, "Sem resultados") {
		t.Errorf("empty chart should show placeholder, got %q", out)
	}
}

func TestChartClipsLongAccentedLabel(t *testing.T) {
	results := []store.ResultRow{
		{Usuario: "joão_conceição_da_silva", Total: 10, Pontos: 7},
	}
	out := Chart(results, 80)

	if !utf8.ValidString(out) {
		t.Fatalf("clipped label produced invalid UTF-8: %q", out)
	}
	if !strings.Contains(out, "joão_conceiçã…") {
		t.Errorf("label should be clipped on rune boundaries, got %q", out)
	}
}

func TestChartScalesBars(t *testing.T) {
	results := []store.ResultRow{
		{Usuario: "ana", Total: 10, Pontos: 10},
		{Usuario: "bob", Total: 10, Pontos: 5},
		{Usuario: "eva", Total: 10, Pontos: 0},
	}
	out := Chart(results, 80)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 bars, got %d lines", len(lines))
	}

	count := func(s string) int { return strings.Count(s, "█") }
	if count(lines[0]) <= count(lines[1]) {
		t.Errorf("ana's bar (%d) should be longer than bob's (%d)", count(lines[0]), count(lines[1]))
	}
	if count(lines[2]) != 0 {
		t.Errorf("zero score should draw no bar, got %d cells", count(lines[2]))
	}
	if !strings.Contains(lines[1], "5/10") {
		t.Errorf("bar should carry the score, got %q", lines[1])
	}
}
