package live

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels input.
var ErrAborted = errors.New("input aborted")

// LineSource reads answer lines through an interactive input program.
type LineSource struct {
	noColor bool
	run     func(model tea.Model) (tea.Model, error)
}

// NewLineSource builds a line source bound to a terminal's input and output.
func NewLineSource(in io.Reader, out io.Writer, noColor bool) *LineSource {
	return &LineSource{
		noColor: noColor,
		run: func(model tea.Model) (tea.Model, error) {
			return tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
		},
	}
}

// ReadLine runs the input program until enter is pressed.
func (s *LineSource) ReadLine() (string, error) {
	final, err := s.run(NewInputModel(s.noColor))
	if err != nil {
		return "", fmt.Errorf("run input: %w", err)
	}
	model, ok := final.(InputModel)
	if !ok {
		return "", fmt.Errorf("unexpected input model %T", final)
	}
	if model.Aborted() || !model.Submitted() {
		return "", ErrAborted
	}
	return model.Value(), nil
}
