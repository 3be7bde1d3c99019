package quiz

import (
	"errors"
	"strings"
)

// Answer is one answer option of a question.
type Answer struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Kind classifies how a question is answered.
type Kind string

const (
	// FreeText questions have a single answer that is typed in.
	FreeText Kind = "free_text"
	// SingleChoice questions have several options and exactly one correct one.
	SingleChoice Kind = "single_choice"
	// MultiChoice questions have several options and more than one correct one.
	MultiChoice Kind = "multi_choice"
)

// Question is a parsed question block.
type Question struct {
	Title   string   `json:"title" yaml:"title"`
	Answers []Answer `json:"answers" yaml:"answers"`
	Config  Config   `json:"config" yaml:"config"`
}

// Kind reports how the question is answered.
func (q Question) Kind() Kind {
	if len(q.Answers) == 1 {
		return FreeText
	}
	if len(q.Correct()) == 1 {
		return SingleChoice
	}
	return MultiChoice
}

// Correct returns the correct answers in document order.
func (q Question) Correct() []Answer {
	var correct []Answer
	for _, answer := range q.Answers {
		if answer.Correct {
			correct = append(correct, answer)
		}
	}
	return correct
}

// ParseQuestion builds a question from one block of text, using base as the
// starting config. Blocks that contain only comments or directives fail with
// ErrOnlyConfig, which callers treat as "skip".
func ParseQuestion(base Config, text string) (Question, error) {
	parts := splitBlock(text)
	bodyContext := contextOf(parts.body)

	cfg, err := ParseConfig(base, parts.config)
	if err != nil {
		var configErr *ConfigError
		if !errors.As(err, &configErr) {
			return Question{}, err
		}
		if configErr.Kind == ErrMissingDelimiter && parts.body == "" {
			return Question{}, &QuestionError{
				Kind:        ErrMissingQuestionMarker,
				Context:     bodyContext,
				LinesParsed: configErr.LinesParsed,
				Err:         configErr,
			}
		}
		return Question{}, &QuestionError{
			Kind:        ErrInvalidConfig,
			Context:     bodyContext,
			LinesParsed: configErr.LinesParsed,
			Err:         configErr,
		}
	}

	linesParsed := strings.Count(parts.config, "\n")
	if parts.markerLine {
		linesParsed++
	}
	if parts.body == "" {
		return Question{}, &QuestionError{
			Kind:        ErrOnlyConfig,
			Context:     contextOf(parts.config),
			LinesParsed: linesParsed,
		}
	}

	question := Question{Config: cfg}
	for i, seg := range segmentBody(parts.body) {
		if i == 0 {
			question.Title = seg.text
			continue
		}
		question.Answers = append(question.Answers, Answer{
			Text:    seg.text,
			Correct: seg.marker == correctMarker,
		})
	}

	if len(question.Correct()) == 0 {
		return Question{}, &QuestionError{
			Kind:        ErrNoCorrectAnswer,
			Context:     bodyContext,
			LinesParsed: linesParsed,
		}
	}
	return question, nil
}
