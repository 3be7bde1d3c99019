package console

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"quizmark/internal/quiz"
)

// Palette colors used by the console presenter.
var (
	colorTitle   = lipgloss.Color("33")
	colorMeta    = lipgloss.Color("242")
	colorHint    = lipgloss.Color("244")
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

// bold applies optional bold styling.
func bold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// optionLabel renders an option number in the bracket style of the question
// kind: (n) when one answer is right, [n] when several may be.
func optionLabel(kind quiz.Kind, number int) string {
	if kind == quiz.SingleChoice {
		return "(" + strconv.Itoa(number) + ")"
	}
	return "[" + strconv.Itoa(number) + "]"
}

// formatPoints renders a point value without trailing zeros.
func formatPoints(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// pointsLabel renders "1 point" or "N points".
func pointsLabel(value float64) string {
	if value == 1 {
		return "1 point"
	}
	return formatPoints(value) + " points"
}
