package live

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizmark/internal/quiz"
	"quizmark/internal/session"
)

var (
	colorAccent  = lipgloss.Color("63")
	colorMuted   = lipgloss.Color("245")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("203")
)

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// renderCard renders a question inside a bordered box.
func renderCard(prompt session.Prompt, noColor bool) string {
	lines := []string{
		stylize(fmt.Sprintf("Question %d of %d", prompt.Number, prompt.Total), noColor, colorMuted),
		lipgloss.NewStyle().Bold(!noColor).Render(prompt.Title),
	}
	if len(prompt.Options) > 0 {
		lines = append(lines, "")
	}
	for _, option := range prompt.Options {
		lines = append(lines, renderOption(prompt.Kind, option))
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !noColor {
		style = style.BorderForeground(colorAccent)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderOption renders one numbered option.
func renderOption(kind quiz.Kind, option session.Option) string {
	number := strconv.Itoa(option.Number)
	if kind == quiz.SingleChoice {
		return "(" + number + ") " + option.Text
	}
	return "[" + number + "] " + option.Text
}

// renderStatus renders the running tally line.
func renderStatus(state State, noColor bool) string {
	line := fmt.Sprintf("score %s/%s | correct %d/%d | %d to go",
		formatPoints(state.Score),
		formatPoints(state.Possible),
		state.Correct,
		state.Answered,
		state.Remaining(),
	)
	return stylize(line, noColor, colorMuted)
}

// renderOutcome renders feedback for a graded question.
func renderOutcome(outcome session.Outcome, noColor bool) string {
	if outcome.Correct {
		return stylize("✓ correct (+"+formatPoints(outcome.Awarded)+")", noColor, colorCorrect)
	}
	return stylize("✗ wrong, expected: "+strings.Join(outcome.Expected, ", "), noColor, colorWrong)
}

// formatPoints renders a point value without trailing zeros.
func formatPoints(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
