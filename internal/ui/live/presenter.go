package live

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"quizmark/internal/session"
)

const tutorialText = `Answer on the input line and press enter.
An empty line submits the question. For typed answers the last line wins.
Pick options by number; several numbers may be separated by spaces or commas.
Press esc or ctrl+c to stop.`

// Presenter renders questions as cards and keeps a running tally.
type Presenter struct {
	out     io.Writer
	noColor bool
	state   State
}

// NewPresenter builds a presenter writing to out.
func NewPresenter(out io.Writer, noColor bool) *Presenter {
	return &Presenter{out: out, noColor: noColor}
}

// Tutorial prints answering instructions.
func (p *Presenter) Tutorial() {
	fmt.Fprintln(p.out, stylize(tutorialText, p.noColor, colorMuted))
}

// Question prints the question card.
func (p *Presenter) Question(prompt session.Prompt) {
	p.state = Begin(p.state, prompt)
	fmt.Fprintln(p.out, renderCard(prompt, p.noColor))
}

// Outcome prints feedback and the updated tally.
func (p *Presenter) Outcome(outcome session.Outcome) {
	p.state = Reduce(p.state, outcome)
	fmt.Fprintln(p.out, renderOutcome(outcome, p.noColor))
	fmt.Fprintln(p.out, renderStatus(p.state, p.noColor))
}

// State returns the current tally.
func (p *Presenter) State() State {
	return p.state
}

// Summary prints the final score.
func (p *Presenter) Summary(result session.Result) {
	line := fmt.Sprintf("Final score: %s/%s (%.0f%%)", formatPoints(result.Score), formatPoints(result.Total), result.Percentage())
	fmt.Fprintln(p.out, lipgloss.NewStyle().Bold(!p.noColor).Render(line))
}
