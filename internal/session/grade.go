package session

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"quizmark/internal/quiz"
)

// selectionSeparators split a multiple-choice response into numbers.
const selectionSeparators = " .;,"

// ParseSelection extracts option numbers from a response line. Tokens that
// are not integers are ignored.
func ParseSelection(line string) []int {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(selectionSeparators, r)
	})
	var numbers []int
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// normalizeSelection sorts numbers and drops duplicates.
func normalizeSelection(numbers []int) []int {
	out := slices.Clone(numbers)
	slices.Sort(out)
	return slices.Compact(out)
}

// GradeSelection reports whether the selected numbers are exactly the correct
// ones. Order and duplicates do not matter; subsets and supersets fail.
func GradeSelection(selected, correct []int) bool {
	return slices.Equal(normalizeSelection(selected), normalizeSelection(correct))
}

// GradeText reports whether a typed response matches the expected answer.
// Unless caseSensitive is set both sides are case folded first.
func GradeText(response, expected string, caseSensitive bool) bool {
	response = strings.TrimSpace(response)
	if !caseSensitive {
		folder := cases.Fold()
		response = folder.String(response)
		expected = folder.String(expected)
	}
	return response == expected
}

// correctNumbers returns the 1-based display numbers of the correct answers,
// sorted ascending.
func correctNumbers(answers []quiz.Answer) []int {
	var numbers []int
	for i, answer := range answers {
		if answer.Correct {
			numbers = append(numbers, i+1)
		}
	}
	return numbers
}
