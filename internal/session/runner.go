package session

import (
	"context"
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"

	"quizmark/internal/quiz"
)

// Options configures a Runner.
type Options struct {
	// Seed fixes the shuffle order; zero picks a random seed.
	Seed uint64
	// ShowFeedback reports each outcome to the presenter.
	ShowFeedback bool
	Logger       *zap.Logger
}

// Runner takes a parsed quiz through one interactive session.
type Runner struct {
	source    LineSource
	presenter Presenter
	rng       *rand.Rand
	seed      uint64
	feedback  bool
	logger    *zap.Logger
}

// NewRunner builds a Runner reading answers from source and showing questions
// through presenter.
func NewRunner(source LineSource, presenter Presenter, opts Options) (*Runner, error) {
	if source == nil {
		return nil, errors.New("line source is required")
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng, seed := NewRand(opts.Seed)
	return &Runner{
		source:    source,
		presenter: presenter,
		rng:       rng,
		seed:      seed,
		feedback:  opts.ShowFeedback,
		logger:    logger,
	}, nil
}

// Seed returns the seed driving this runner's shuffles.
func (r *Runner) Seed() uint64 { return r.seed }

// Run presents every question, grades the responses and returns the score.
// The quiz itself is not modified. Read failures end the session with the
// outcomes gathered so far.
func (r *Runner) Run(ctx context.Context, q quiz.Quiz) (Result, error) {
	result := Result{Seed: r.seed, Total: q.TotalScore}
	questions := Order(q.Questions, r.rng)
	r.logger.Info("session started",
		zap.Int("questions", len(questions)),
		zap.Float64("total", q.TotalScore),
		zap.Uint64("seed", r.seed),
	)

	if q.Config.Tutorial && len(questions) > 0 {
		r.presenter.Tutorial()
	}

	for i, question := range questions {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		outcome, err := r.ask(i+1, len(questions), question)
		if err != nil {
			r.logger.Warn("session aborted", zap.Int("question", i+1), zap.Error(err))
			return result, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
		result.Score += outcome.Awarded
		r.logger.Debug("question graded",
			zap.Int("question", outcome.Number),
			zap.Bool("correct", outcome.Correct),
			zap.Float64("awarded", outcome.Awarded),
		)
		if r.feedback {
			r.presenter.Outcome(outcome)
		}
	}

	r.logger.Info("session finished",
		zap.Float64("score", result.Score),
		zap.Float64("total", result.Total),
	)
	return result, nil
}

// ask presents one question, collects the response and grades it.
func (r *Runner) ask(number, total int, question quiz.Question) (Outcome, error) {
	prompt := Prompt{
		Number: number,
		Total:  total,
		Title:  question.Title,
		Kind:   question.Kind(),
		Value:  question.Config.Value,
	}
	outcome := Outcome{
		Number: number,
		Title:  question.Title,
		Kind:   prompt.Kind,
		Value:  question.Config.Value,
	}

	if prompt.Kind == quiz.FreeText {
		expected := question.Answers[0].Text
		r.presenter.Question(prompt)
		response, err := CollectText(r.source)
		if err != nil {
			return Outcome{}, err
		}
		outcome.Response = response
		outcome.Expected = []string{expected}
		outcome.Correct = GradeText(response, expected, question.Config.CaseSensitive)
	} else {
		answers := displayAnswers(question, r.rng)
		for i, answer := range answers {
			prompt.Options = append(prompt.Options, Option{Number: i + 1, Text: answer.Text})
			if answer.Correct {
				outcome.Expected = append(outcome.Expected, answer.Text)
			}
		}
		r.presenter.Question(prompt)
		selected, raw, err := CollectSelection(r.source)
		if err != nil {
			return Outcome{}, err
		}
		outcome.Response = raw
		outcome.Correct = GradeSelection(selected, correctNumbers(answers))
	}

	if outcome.Correct {
		outcome.Awarded = question.Config.Value
	}
	return outcome, nil
}
