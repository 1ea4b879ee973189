package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/lfreitas/quizdeck/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and quizdeck styling.
type TextInput struct {
	Label string
	Model textinput.Model
}

// NewTextInput creates a new labeled text input.
func NewTextInput(label, placeholder string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return TextInput{Label: label, Model: ti}
}

// NewPasswordInput creates a text input that masks typed characters.
func NewPasswordInput(label string) TextInput {
	t := NewTextInput(label, "")
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.EchoCharacter = '*'
	return t
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input field.
func (t TextInput) View() string {
	labelStyle := theme.Body
	if t.Focused() {
		labelStyle = theme.Selected
	}
	return labelStyle.Render(t.Label) + "\n" + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
