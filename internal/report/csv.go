package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lfreitas/quizdeck/internal/store"
)

// File names written by ExportFiles, matching the original app.
const (
	AnswersFileName = "respostas.csv"
	ResultsFileName = "resultados.csv"
)

// Column headers are a compatibility contract with downstream consumers of
// the exported files; order matters.
var (
	answersHeader = []string{"Usuario", "Pergunta", "Correta"}
	resultsHeader = []string{"Usuario", "Total", "Acertos"}
)

// WriteAnswersCSV writes the answer ledger as CSV to w.
func WriteAnswersCSV(w io.Writer, rows []store.AnswerRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(answersHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		// Correta is rendered 1/0, the form sqlite gives the stored flag.
		record := []string{row.Usuario, row.Pergunta, boolFlag(row.Correta)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write answer row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResultsCSV writes the session results as CSV to w.
func WriteResultsCSV(w io.Writer, rows []store.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Usuario, strconv.Itoa(row.Total), strconv.Itoa(row.Pontos)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFiles writes respostas.csv and resultados.csv into dir.
func ExportFiles(dir string, answers []store.AnswerRow, results []store.ResultRow) error {
	if err := writeFile(filepath.Join(dir, AnswersFileName), func(w io.Writer) error {
		return WriteAnswersCSV(w, answers)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, ResultsFileName), func(w io.Writer) error {
		return WriteResultsCSV(w, results)
	})
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
