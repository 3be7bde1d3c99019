package session

import "quizmark/internal/quiz"

// LineSource supplies raw answer lines, blocking until one is available.
type LineSource interface {
	ReadLine() (string, error)
}

// Presenter shows a session to the person taking the quiz.
type Presenter interface {
	// Tutorial explains how to answer, once per session.
	Tutorial()
	// Question shows a question and its numbered options.
	Question(prompt Prompt)
	// Outcome shows the grading of the last question.
	Outcome(outcome Outcome)
}

// Option is an answer as displayed, numbered from 1.
type Option struct {
	Number int
	Text   string
}

// Prompt is what the presenter needs to show one question.
type Prompt struct {
	Number  int
	Total   int
	Title   string
	Kind    quiz.Kind
	Value   float64
	Options []Option
}

// Outcome records how one question was answered and graded.
type Outcome struct {
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Kind     quiz.Kind `json:"kind"`
	Response string    `json:"response"`
	Expected []string  `json:"expected"`
	Correct  bool      `json:"correct"`
	Awarded  float64   `json:"awarded"`
	Value    float64   `json:"value"`
}

// Result is the outcome of a whole session.
type Result struct {
	Seed     uint64    `json:"seed"`
	Score    float64   `json:"score"`
	Total    float64   `json:"total"`
	Outcomes []Outcome `json:"outcomes"`
}

// Percentage returns the score as a share of the total, or 0 for an empty quiz.
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return r.Score / r.Total * 100
}
