// Package register implements the user registration form.
package register

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lfreitas/quizdeck/internal/router"
	"github.com/lfreitas/quizdeck/internal/screen"
	"github.com/lfreitas/quizdeck/internal/store"
	"github.com/lfreitas/quizdeck/internal/ui/components"
	"github.com/lfreitas/quizdeck/internal/ui/layout"
	"github.com/lfreitas/quizdeck/internal/ui/theme"
)

const (
	focusFullName = iota
	focusUsername
	focusPassword
	focusBirthdate
	focusSubmit
	focusCount
)

type registerResultMsg struct {
	ok  bool
	err error
}

// RegisterScreen collects the four registration fields and submits them.
type RegisterScreen struct {
	users *store.UserRepo

	inputs [4]components.TextInput
	focus  int

	errMsg string
	done   bool
}

var _ screen.Screen = (*RegisterScreen)(nil)
var _ screen.KeyHintProvider = (*RegisterScreen)(nil)

// New creates the registration screen.
func New(users *store.UserRepo) *RegisterScreen {
	s := &RegisterScreen{users: users}
	s.inputs[focusFullName] = components.NewTextInput("Nome completo", "")
	s.inputs[focusUsername] = components.NewTextInput("Nome de usuário", "")
	s.inputs[focusPassword] = components.NewPasswordInput("Senha")
	s.inputs[focusBirthdate] = components.NewTextInput("Data de nascimento", "DD/MM/AAAA")
	return s
}

func (s *RegisterScreen) Init() tea.Cmd {
	return s.inputs[focusFullName].Focus()
}

func (s *RegisterScreen) Title() string {
	return "Cadastro de Usuário"
}

func (s *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		if msg.err != nil {
			s.errMsg = "Erro: " + msg.err.Error()
			return s, nil
		}
		if !msg.ok {
			s.errMsg = "Usuário já existe."
			return s, nil
		}
		s.done = true
		return s, nil

	case tea.KeyMsg:
		if s.done {
			// Any key returns to the login screen.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "enter":
			if s.focus < focusSubmit {
				return s, s.setFocus(s.focus + 1)
			}
			return s, s.submit()
		}
	}

	if s.focus < len(s.inputs) {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit validates and inserts the new user.
func (s *RegisterScreen) submit() tea.Cmd {
	fullName := strings.TrimSpace(s.inputs[focusFullName].Value())
	username := strings.TrimSpace(s.inputs[focusUsername].Value())
	password := s.inputs[focusPassword].Value()
	birthdate := s.inputs[focusBirthdate].Value()

	if username == "" || password == "" {
		s.errMsg = "Preencha usuário e senha."
		return nil
	}

	users := s.users
	return func() tea.Msg {
		ok, err := users.Register(context.Background(), fullName, username, password, birthdate)
		return registerResultMsg{ok: ok, err: err}
	}
}

func (s *RegisterScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.errMsg = ""
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	if focus < len(s.inputs) {
		return s.inputs[focus].Focus()
	}
	return nil
}

func (s *RegisterScreen) View(width, height int) string {
	if s.done {
		msg := theme.Correct.Render("Usuário cadastrado com sucesso!") +
			"\n\n" +
			theme.Hint.Render("pressione qualquer tecla para voltar")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	button := "  [ Cadastrar ]"
	if s.focus == focusSubmit {
		button = theme.Selected.Render("▸ [ Cadastrar ]")
	} else {
		button = theme.Unselected.Render(button)
	}

	rows := make([]string, 0, len(s.inputs)*2+1)
	for i := range s.inputs {
		rows = append(rows, s.inputs[i].View(), "")
	}
	rows = append(rows, button)

	form := strings.Join(rows, "\n")

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}
	return b.String()
}
