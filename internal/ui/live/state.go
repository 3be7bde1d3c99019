package live

import "quizmark/internal/session"

// State tracks the running tally shown under each question.
type State struct {
	Number   int
	Total    int
	Answered int
	Correct  int
	Score    float64
	Possible float64
}

// Begin records the question now being asked.
func Begin(state State, prompt session.Prompt) State {
	state.Number = prompt.Number
	state.Total = prompt.Total
	return state
}

// Reduce applies a graded outcome to the tally.
func Reduce(state State, outcome session.Outcome) State {
	state.Answered++
	state.Possible += outcome.Value
	if outcome.Correct {
		state.Correct++
		state.Score += outcome.Awarded
	}
	return state
}

// Remaining returns how many questions are still to come after the current one.
func (s State) Remaining() int {
	return max(s.Total-s.Number, 0)
}
