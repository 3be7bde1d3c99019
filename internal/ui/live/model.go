package live

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel reads a single answer line with Bubble Tea.
type InputModel struct {
	input     textinput.Model
	noColor   bool
	submitted bool
	aborted   bool
}

// NewInputModel constructs a focused input line.
func NewInputModel(noColor bool) InputModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "empty line submits"
	input.CharLimit = 512
	if !noColor {
		input.PromptStyle = input.PromptStyle.Foreground(colorAccent)
		input.PlaceholderStyle = input.PlaceholderStyle.Foreground(colorMuted)
	}
	input.Focus()
	return InputModel{input: input, noColor: noColor}
}

// Init starts the cursor blinking.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.input.Blur()
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input line. Once submitted it shows the plain text.
func (m InputModel) View() string {
	if m.submitted {
		return "> " + m.input.Value() + "\n"
	}
	if m.aborted {
		return ""
	}
	return m.input.View() + "\n"
}

// Value returns the typed text.
func (m InputModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether enter was pressed.
func (m InputModel) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user cancelled input.
func (m InputModel) Aborted() bool {
	return m.aborted
}
