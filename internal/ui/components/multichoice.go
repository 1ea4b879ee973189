package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lfreitas/quizdeck/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Options are presented with
// 1-based numbering to match how the question bank indexes its answers.
type MultiChoice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
	// ChosenPos is the 1-based position the user confirmed, 0 before submit.
	ChosenPos int
	// CorrectPos is the 1-based correct position, revealed after submit.
	CorrectPos int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctPos int) MultiChoice {
	return MultiChoice{
		Question:   question,
		Options:    options,
		CorrectPos: correctPos,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenPos = m.Selected + 1
	}

	return m, nil
}

// View renders the question and its options. After submission the correct
// option shows green and a wrong choice shows red.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		pos := i + 1
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, pos, opt)

		switch {
		case m.Submitted && pos == m.CorrectPos:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && pos == m.ChosenPos:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// ChosenText returns the literal text of the confirmed option.
func (m MultiChoice) ChosenText() string {
	if m.ChosenPos < 1 || m.ChosenPos > len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenPos-1]
}

// IsCorrect returns true if the user chose the correct option.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenPos == m.CorrectPos
}
