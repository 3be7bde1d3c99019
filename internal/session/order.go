package session

import (
	"math/rand/v2"

	"quizmark/internal/quiz"
)

// Shuffle permutes items in place with a Fisher-Yates pass: each index i,
// ascending, swaps with a uniformly chosen index in [i, n).
func Shuffle[T any](items []T, rng *rand.Rand) {
	n := len(items)
	for i := 0; i < n-1; i++ {
		j := i + rng.IntN(n-i)
		items[i], items[j] = items[j], items[i]
	}
}

// Order returns the delivery order for questions: unordered questions first,
// shuffled, then ordered questions in document order. The input is not
// modified.
func Order(questions []quiz.Question, rng *rand.Rand) []quiz.Question {
	var ordered, unordered []quiz.Question
	for _, q := range questions {
		if q.Config.Ordered {
			ordered = append(ordered, q)
		} else {
			unordered = append(unordered, q)
		}
	}
	Shuffle(unordered, rng)
	return append(unordered, ordered...)
}

// displayAnswers returns the answers in the order they are shown, shuffled
// unless the question keeps its answer order.
func displayAnswers(q quiz.Question, rng *rand.Rand) []quiz.Answer {
	answers := make([]quiz.Answer, len(q.Answers))
	copy(answers, q.Answers)
	if !q.Config.OrderedAnswers {
		Shuffle(answers, rng)
	}
	return answers
}

// NewRand returns a PCG source seeded from seed. A zero seed picks a random
// seed; the chosen seed is returned so sessions can be replayed.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
