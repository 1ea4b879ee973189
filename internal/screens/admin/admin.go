// Package admin implements the administrator results view: the answer and
// result tables, the score chart, and CSV export.
package admin

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lfreitas/quizdeck/internal/report"
	"github.com/lfreitas/quizdeck/internal/router"
	"github.com/lfreitas/quizdeck/internal/screen"
	"github.com/lfreitas/quizdeck/internal/store"
	"github.com/lfreitas/quizdeck/internal/ui/layout"
	"github.com/lfreitas/quizdeck/internal/ui/theme"
)

type tab int

const (
	tabResults tab = iota
	tabChart
)

type loadedMsg struct {
	answers []store.AnswerRow
	results []store.ResultRow
	err     error
}

type exportedMsg struct{ err error }

// AdminScreen shows aggregate results across all users.
type AdminScreen struct {
	answers *store.AnswerRepo
	results *store.ResultRepo
	// exportDir receives the CSV files; the working directory in practice.
	exportDir string

	answerRows []store.AnswerRow
	resultRows []store.ResultRow
	active     tab
	loaded     bool
	status     string
	errMsg     string
}

var _ screen.Screen = (*AdminScreen)(nil)
var _ screen.KeyHintProvider = (*AdminScreen)(nil)

// New creates the administrator screen.
func New(answers *store.AnswerRepo, results *store.ResultRepo, exportDir string) *AdminScreen {
	return &AdminScreen{answers: answers, results: results, exportDir: exportDir}
}

func (s *AdminScreen) Init() tea.Cmd {
	answers, results := s.answers, s.results
	return func() tea.Msg {
		ctx := context.Background()
		aRows, err := answers.All(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		rRows, err := results.All(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{answers: aRows, results: rRows}
	}
}

func (s *AdminScreen) Title() string {
	return "Administrador - Resultados"
}

func (s *AdminScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Gráfico/Tabelas"},
		{Key: "E", Description: "Exportar CSV"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AdminScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.answerRows = msg.answers
			s.resultRows = msg.results
		}
		s.loaded = true
		return s, nil

	case exportedMsg:
		if msg.err != nil {
			s.status = "Falha na exportação: " + msg.err.Error()
		} else {
			s.status = fmt.Sprintf("Exportado: %s, %s", report.AnswersFileName, report.ResultsFileName)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if s.active == tabResults {
				s.active = tabChart
			} else {
				s.active = tabResults
			}
			return s, nil
		case "e":
			return s, s.export()
		}
	}
	return s, nil
}

// export writes the two CSV files from the rows already loaded.
func (s *AdminScreen) export() tea.Cmd {
	dir, aRows, rRows := s.exportDir, s.answerRows, s.resultRows
	return func() tea.Msg {
		return exportedMsg{err: report.ExportFiles(dir, aRows, rRows)}
	}
}

func (s *AdminScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Erro: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Carregando resultados..."))
	}

	var b strings.Builder
	if s.active == tabChart {
		b.WriteString(theme.Title.Width(width).Render("Desempenho dos Usuários"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			report.Chart(s.resultRows, min(width-4, 80))))
	} else {
		b.WriteString(s.viewTables(width))
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.status))
	}
	return b.String()
}

func (s *AdminScreen) viewTables(width int) string {
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	row := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Respostas dos usuários"))
	b.WriteString("\n\n")
	b.WriteString(header.Render(fmt.Sprintf("  %-14s %-40s %s", "Usuario", "Pergunta", "Correta")))
	b.WriteString("\n")
	if len(s.answerRows) == 0 {
		b.WriteString(theme.Hint.Render("  (vazio)"))
		b.WriteString("\n")
	}
	for _, r := range s.answerRows {
		correta := "Não"
		if r.Correta {
			correta = "Sim"
		}
		b.WriteString(row.Render(fmt.Sprintf("  %-14s %-40s %s", clip(r.Usuario, 14), clip(r.Pergunta, 40), correta)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Pontuação Final"))
	b.WriteString("\n\n")
	b.WriteString(header.Render(fmt.Sprintf("  %-14s %-8s %-8s %s", "Usuario", "Total", "Pontos", "Media")))
	b.WriteString("\n")
	if len(s.resultRows) == 0 {
		b.WriteString(theme.Hint.Render("  (vazio)"))
		b.WriteString("\n")
	}
	for _, r := range s.resultRows {
		media := report.Percentage(r.Pontos, r.Total)
		b.WriteString(row.Render(fmt.Sprintf("  %-14s %-8d %-8d %s", clip(r.Usuario, 14), r.Total, r.Pontos, media)))
		b.WriteString("\n")
	}

	return b.String()
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
