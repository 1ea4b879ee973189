package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lfreitas/quizdeck/internal/store"
	"github.com/lfreitas/quizdeck/internal/ui/theme"
)

const labelWidth = 14

// Chart renders a horizontal bar chart of session scores, one bar per
// result row. Bars are scaled to the highest score so the widest bar fills
// the available width.
func Chart(results []store.ResultRow, width int) string {
	if len(results) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Sem resultados para exibir.")
	}

	maxScore := 0
	for _, r := range results {
		if r.Pontos > maxScore {
			maxScore = r.Pontos
		}
	}

	barSpace := width - labelWidth - 8
	if barSpace < 10 {
		barSpace = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(labelWidth)
	barStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	var b strings.Builder
	for _, r := range results {
		barLen := 0
		if maxScore > 0 {
			barLen = r.Pontos * barSpace / maxScore
		}
		if r.Pontos > 0 && barLen == 0 {
			barLen = 1
		}

		label := r.Usuario
		if runes := []rune(label); len(runes) > labelWidth {
			label = string(runes[:labelWidth-1]) + "…"
		}

		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(scoreStyle.Render(fmt.Sprintf(" %d/%d", r.Pontos, r.Total)))
		b.WriteString("\n")
	}
	return b.String()
}
