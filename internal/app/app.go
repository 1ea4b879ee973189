// Package app wires the screens together and hosts the root Bubble Tea
// model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lfreitas/quizdeck/internal/config"
	"github.com/lfreitas/quizdeck/internal/quizbank"
	"github.com/lfreitas/quizdeck/internal/router"
	"github.com/lfreitas/quizdeck/internal/screen"
	"github.com/lfreitas/quizdeck/internal/screens/admin"
	"github.com/lfreitas/quizdeck/internal/screens/login"
	"github.com/lfreitas/quizdeck/internal/screens/quiz"
	"github.com/lfreitas/quizdeck/internal/screens/register"
	"github.com/lfreitas/quizdeck/internal/store"
	"github.com/lfreitas/quizdeck/internal/ui/layout"
)

// Options carries the application dependencies.
type Options struct {
	Config config.Config
	Store  *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	username string
	width    int
	height   int
}

// newAppModel creates the root model starting at the login screen.
func newAppModel(opts Options) *AppModel {
	m := &AppModel{}
	m.router = router.New(m.newLoginScreen(opts))
	return m
}

// newLoginScreen builds the login screen with factories for every screen it
// can navigate to. The question bank is loaded lazily, per quiz run, so
// fixing the file does not require a restart.
func (m *AppModel) newLoginScreen(opts Options) screen.Screen {
	return login.New(login.Deps{
		Users:         opts.Store.Users(),
		AdminPassword: opts.Config.AdminPassword,
		RegisterFactory: func() screen.Screen {
			return register.New(opts.Store.Users())
		},
		AdminFactory: func() screen.Screen {
			return admin.New(opts.Store.Answers(), opts.Store.Results(), ".")
		},
		QuizFactory: func(username string) screen.Screen {
			m.username = username
			questions, bankErr := quizbank.Load(opts.Config.QuestionsFile)
			if bankErr != nil {
				fmt.Fprintln(os.Stderr, "question bank:", bankErr)
			}
			return quiz.New(quiz.Deps{
				Username:  username,
				Questions: questions,
				BankErr:   bankErr,
				Answers:   opts.Store.Answers(),
				Results:   opts.Store.Results(),
				LoginFactory: func() screen.Screen {
					m.username = ""
					return m.newLoginScreen(opts)
				},
			})
		},
	})
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own Esc themselves; there is deliberately no global
		// "back" from a running quiz.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
