package console

import (
	"fmt"
	"io"
	"strings"

	"quizmark/internal/quiz"
	"quizmark/internal/session"
)

// Presenter writes a quiz session as plain text.
type Presenter struct {
	out     io.Writer
	noColor bool
}

// NewPresenter builds a presenter writing to out.
func NewPresenter(out io.Writer, noColor bool) *Presenter {
	return &Presenter{out: out, noColor: noColor}
}

// Tutorial prints answering instructions.
func (p *Presenter) Tutorial() {
	lines := []string{
		"How to answer:",
		"  Typed questions: type your answer and press enter on an empty line to submit.",
		"  A new line replaces the previous one.",
		"  (n) options: enter the number of the one correct option.",
		"  [n] options: enter every correct number, separated by spaces or commas.",
		"  Press enter on an empty line to submit.",
	}
	fmt.Fprintln(p.out, stylize(strings.Join(lines, "\n"), p.noColor, colorHint))
}

// Question prints a question header, its title and the numbered options.
func (p *Presenter) Question(prompt session.Prompt) {
	fmt.Fprintln(p.out)
	header := fmt.Sprintf("Question %d/%d (%s)", prompt.Number, prompt.Total, pointsLabel(prompt.Value))
	fmt.Fprintln(p.out, stylize(header, p.noColor, colorMeta))
	fmt.Fprintln(p.out, bold(stylize(prompt.Title, p.noColor, colorTitle), p.noColor))
	for _, option := range prompt.Options {
		fmt.Fprintf(p.out, "  %s %s\n", optionLabel(prompt.Kind, option.Number), option.Text)
	}
	fmt.Fprint(p.out, stylize(hintFor(prompt.Kind), p.noColor, colorHint)+"\n")
}

// Outcome prints whether the last answer was right.
func (p *Presenter) Outcome(outcome session.Outcome) {
	if outcome.Correct {
		fmt.Fprintln(p.out, stylize("Correct! +"+formatPoints(outcome.Awarded), p.noColor, colorCorrect))
		return
	}
	expected := strings.Join(outcome.Expected, ", ")
	fmt.Fprintln(p.out, stylize("Wrong. Correct answer: "+expected, p.noColor, colorWrong))
}

// Summary prints the final score.
func (p *Presenter) Summary(result session.Result) {
	fmt.Fprintln(p.out)
	line := fmt.Sprintf("Final score: %s/%s (%.0f%%)", formatPoints(result.Score), formatPoints(result.Total), result.Percentage())
	fmt.Fprintln(p.out, bold(line, p.noColor))
}

// hintFor returns the input hint shown under a question.
func hintFor(kind quiz.Kind) string {
	switch kind {
	case quiz.FreeText:
		return "> type your answer, then an empty line"
	case quiz.SingleChoice:
		return "> pick one number, then an empty line"
	default:
		return "> pick every correct number, then an empty line"
	}
}
