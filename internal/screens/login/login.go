// Package login implements the entry screen: user authentication,
// a path to registration, and the administrator gate.
package login

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

// Focusable rows, top to bottom.
const (
	focusUsername = iota
	focusPassword
	focusLogin
	focusRegister
	focusAdminPassword
	focusAdmin
	focusCount
)

// Deps carries everything the login screen needs. Factories keep this
// package from importing the screens it navigates to.
type Deps struct {
	Users         *store.UserRepo
	AdminPassword string

	// QuizFactory builds the quiz screen for an authenticated user.
	QuizFactory func(username string) screen.Screen
	// RegisterFactory builds the registration screen.
	RegisterFactory func() screen.Screen
	// AdminFactory builds the administrator results screen.
	AdminFactory func() screen.Screen
}

type authResultMsg struct {
	username string
	ok       bool
	err      error
}

// LoginScreen is the first screen of the application.
type LoginScreen struct {
	deps Deps

	username      components.TextInput
	password      components.TextInput
	adminPassword components.TextInput
	focus         int
	errMsg        string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(deps Deps) *LoginScreen {
	s := &LoginScreen{
		deps:          deps,
		username:      components.NewTextInput("Usuário", ""),
		password:      components.NewPasswordInput("Senha"),
		adminPassword: components.NewPasswordInput("Senha de administrador"),
	}
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.username.Focus()
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		if msg.err != nil {
			s.errMsg = "Erro: " + msg.err.Error()
			return s, nil
		}
		if !msg.ok {
			s.errMsg = "Usuário ou senha inválidos."
			return s, nil
		}
		quiz := s.deps.QuizFactory(msg.username)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: quiz} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "enter":
			return s.activate()
		}
	}

	return s, s.updateInputs(msg)
}

// activate handles enter on the focused row.
func (s *LoginScreen) activate() (screen.Screen, tea.Cmd) {
	switch s.focus {
	case focusUsername:
		return s, s.setFocus(focusPassword)
	case focusPassword, focusLogin:
		return s, s.authenticate()
	case focusRegister:
		reg := s.deps.RegisterFactory()
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: reg} }
	case focusAdminPassword, focusAdmin:
		return s.enterAdmin()
	}
	return s, nil
}

// authenticate checks the credentials off the update loop.
func (s *LoginScreen) authenticate() tea.Cmd {
	username := strings.TrimSpace(s.username.Value())
	password := s.password.Value()
	users := s.deps.Users
	return func() tea.Msg {
		ok, err := users.Authenticate(context.Background(), username, password)
		return authResultMsg{username: username, ok: ok, err: err}
	}
}

// enterAdmin gates the administrator view on the fixed shared secret.
func (s *LoginScreen) enterAdmin() (screen.Screen, tea.Cmd) {
	if s.adminPassword.Value() != s.deps.AdminPassword {
		s.errMsg = "Senha incorreta."
		return s, nil
	}
	admin := s.deps.AdminFactory()
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: admin} }
}

func (s *LoginScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.errMsg = ""
	s.username.Blur()
	s.password.Blur()
	s.adminPassword.Blur()
	switch focus {
	case focusUsername:
		return s.username.Focus()
	case focusPassword:
		return s.password.Focus()
	case focusAdminPassword:
		return s.adminPassword.Focus()
	}
	return nil
}

func (s *LoginScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusUsername:
		s.username, cmd = s.username.Update(msg)
	case focusPassword:
		s.password, cmd = s.password.Update(msg)
	case focusAdminPassword:
		s.adminPassword, cmd = s.adminPassword.Update(msg)
	}
	return cmd
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Sistema de Quiz"))
	b.WriteString("\n\n")

	button := func(label string, focused bool) string {
		if focused {
			return theme.Selected.Render("▸ [ " + label + " ]")
		}
		return theme.Unselected.Render("  [ " + label + " ]")
	}

	form := strings.Join([]string{
		s.username.View(),
		"",
		s.password.View(),
		"",
		button("Login", s.focus == focusLogin),
		button("Cadastrar", s.focus == focusRegister),
		"",
		theme.Subtitle.Render("— Administrador —"),
		"",
		s.adminPassword.View(),
		"",
		button("Entrar como Admin", s.focus == focusAdmin),
	}, "\n")

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
