// Package quiz implements the screen driving one user's quiz session. The
// screen is a thin adapter: every transition lives in internal/session, and
// this code only translates key events into state machine calls and renders
// the returned view data.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lfreitas/quizdeck/internal/quizbank"
	"github.com/lfreitas/quizdeck/internal/router"
	"github.com/lfreitas/quizdeck/internal/screen"
	"github.com/lfreitas/quizdeck/internal/session"
	"github.com/lfreitas/quizdeck/internal/ui/components"
	"github.com/lfreitas/quizdeck/internal/ui/layout"
	"github.com/lfreitas/quizdeck/internal/ui/theme"
)

// Deps carries the quiz screen dependencies.
type Deps struct {
	Username  string
	Questions []quizbank.Question
	// BankErr is the question bank load failure, if any. The session still
	// runs (and immediately finishes) over the empty set.
	BankErr error

	Answers session.AnswerWriter
	Results session.ResultWriter

	// LoginFactory rebuilds the login screen when the session ends.
	LoginFactory func() screen.Screen
}

type sessionReadyMsg struct {
	state *session.State
	err   error
}

type questionSelectedMsg struct{ index int }

// QuizScreen renders the running quiz session.
type QuizScreen struct {
	deps Deps

	state   *session.State
	menu    components.Menu
	focused quizbank.Question
	mc      components.MultiChoice
	outcome *session.Outcome
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for an authenticated user.
func New(deps Deps) *QuizScreen {
	return &QuizScreen{deps: deps}
}

func (s *QuizScreen) Init() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		st, err := session.New(context.Background(), deps.Username, deps.Questions, deps.Answers, deps.Results)
		return sessionReadyMsg{state: st, err: err}
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.outcome != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	if s.state == nil {
		return nil
	}
	switch s.state.Phase() {
	case session.PhaseSelecting:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	case session.PhaseExplanation:
		return []layout.KeyHint{{Key: "Enter", Description: "Responder"}}
	case session.PhaseOptions:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Responder"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Sair"}}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.state = msg.state
		s.rebuildMenu()
		return s, nil

	case questionSelectedMsg:
		q, err := s.state.Select(msg.index)
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.focused = q
		return s, nil
	}

	if s.state == nil {
		return s, nil
	}

	// Feedback overlay: any key moves on.
	if s.outcome != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			s.outcome = nil
			if s.state.Phase() == session.PhaseSelecting {
				s.rebuildMenu()
			}
		}
		return s, nil
	}

	switch s.state.Phase() {
	case session.PhaseSelecting:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case session.PhaseExplanation:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			q, err := s.state.ShowOptions()
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.mc = components.NewMultiChoice(q.Pergunta, q.Opcoes, q.Resposta)
		}
		return s, nil

	case session.PhaseOptions:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			out, err := s.state.Answer(context.Background(), s.mc.ChosenPos, s.mc.ChosenText())
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.outcome = &out
		}
		return s, cmd

	case session.PhaseFinished:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			login := s.deps.LoginFactory()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: login} }
		}
		return s, nil
	}

	return s, nil
}

// rebuildMenu refreshes the title menu from the remaining questions.
func (s *QuizScreen) rebuildMenu() {
	titles := s.state.Titles()
	items := make([]components.MenuItem, len(titles))
	for i, title := range titles {
		idx := i
		items[i] = components.MenuItem{
			Label:  title,
			Action: func() tea.Cmd { return func() tea.Msg { return questionSelectedMsg{index: idx} } },
		}
	}
	s.menu = components.NewMenu(items)
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Erro: "+s.errMsg))
	}
	if s.state == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Carregando..."))
	}
	if s.outcome != nil {
		return s.viewFeedback(width, height)
	}

	switch s.state.Phase() {
	case session.PhaseSelecting:
		return s.viewSelecting(width, height)
	case session.PhaseExplanation:
		return s.viewExplanation(width, height)
	case session.PhaseOptions:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.mc.View())
	default:
		return s.viewFinished(width, height)
	}
}

func (s *QuizScreen) viewSelecting(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("Bem-vindo, %s!", s.deps.Username)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Escolha a pergunta para responder:"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) viewExplanation(width, height int) string {
	wrap := lipgloss.NewStyle().Width(min(width-8, 70))

	var b strings.Builder
	b.WriteString(theme.Title.Render("Tópico: " + s.focused.Titulo))
	b.WriteString("\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render(s.focused.Explanation()))
	b.WriteString("\n\n")
	b.WriteString(theme.Selected.Render("▸ [ Responder Pergunta ]"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) viewFeedback(width, height int) string {
	var b strings.Builder
	b.WriteString(s.mc.View())
	b.WriteString("\n")
	if s.outcome.Correct {
		b.WriteString(theme.Correct.Render("✔ Resposta correta!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✘ Errado.") +
			theme.Body.Render(" Correta: "+s.outcome.CorrectText))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("pressione qualquer tecla para continuar"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) viewFinished(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Fim!"))
	b.WriteString("\n\n")
	if s.deps.BankErr != nil {
		b.WriteString(theme.Incorrect.Render(s.deps.BankErr.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Body.Render(
		fmt.Sprintf("Acertou %d de %d.", s.state.Score(), s.state.Total())))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter para sair"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
