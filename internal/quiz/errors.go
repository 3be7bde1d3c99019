package quiz

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxContextLen bounds the source fragment attached to parse errors.
const maxContextLen = 32

// Config-level error kinds.
var (
	// ErrInvalidOption indicates a directive name that is not recognized.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidValue indicates a directive value of the wrong type.
	ErrInvalidValue = errors.New("invalid value")
	// ErrMissingDelimiter indicates a config line without the ';' prefix.
	ErrMissingDelimiter = errors.New("missing ';' delimiter")
)

// Question-level error kinds.
var (
	// ErrMissingQuestionMarker indicates a block that looks like a question
	// but has no '?' marker.
	ErrMissingQuestionMarker = errors.New("missing '?' question marker")
	// ErrInvalidConfig indicates that the block's config lines failed to parse.
	ErrInvalidConfig = errors.New("invalid question config")
	// ErrNoCorrectAnswer indicates a question without any '+' answer.
	ErrNoCorrectAnswer = errors.New("no correct answer")
	// ErrOnlyConfig indicates a block holding only comments or directives.
	ErrOnlyConfig = errors.New("block has no question")
)

// Quiz-level error kinds.
var (
	// ErrQuizConfig indicates that the quiz-wide config failed to parse.
	ErrQuizConfig = errors.New("invalid quiz config")
	// ErrQuizQuestion indicates that one of the questions failed to parse.
	ErrQuizQuestion = errors.New("invalid question")
)

// ConfigError reports a failure while parsing directive lines.
type ConfigError struct {
	Kind        error
	Context     string
	LinesParsed int
	Err         error
}

// Error renders the config failure with its context.
func (err *ConfigError) Error() string {
	msg := err.Kind.Error()
	if err.Context != "" {
		msg += fmt.Sprintf(" %q", err.Context)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

// Unwrap returns the primitive parse failure, if any.
func (err *ConfigError) Unwrap() error { return err.Err }

// Is matches the error kind.
func (err *ConfigError) Is(target error) bool { return target == err.Kind }

// QuestionError reports a failure while building one question.
type QuestionError struct {
	Kind        error
	Context     string
	LinesParsed int
	Err         error
}

func (err *QuestionError) Error() string {
	msg := err.Kind.Error()
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	} else if err.Context != "" {
		msg += fmt.Sprintf(" %q", err.Context)
	}
	return msg
}

func (err *QuestionError) Unwrap() error { return err.Err }

func (err *QuestionError) Is(target error) bool { return target == err.Kind }

// QuizError reports a failure while parsing a whole document. LinesParsed is
// relative to the start of the document.
type QuizError struct {
	Kind        error
	LinesParsed int
	Err         error
}

func (err *QuizError) Error() string {
	msg := fmt.Sprintf("line %d: %s", err.Line(), err.Kind.Error())
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *QuizError) Unwrap() error { return err.Err }

func (err *QuizError) Is(target error) bool { return target == err.Kind }

// Line returns the 1-based line number of the failure.
func (err *QuizError) Line() int { return err.LinesParsed + 1 }

// Context returns the innermost non-empty source fragment of the failure.
func (err *QuizError) Context() string {
	context := ""
	var questionErr *QuestionError
	if errors.As(err.Err, &questionErr) && questionErr.Context != "" {
		context = questionErr.Context
	}
	var configErr *ConfigError
	if errors.As(err.Err, &configErr) && configErr.Context != "" {
		context = configErr.Context
	}
	return context
}

// Reason joins the error kinds from the document level down, such as
// "invalid question: invalid question config: invalid value".
func (err *QuizError) Reason() string {
	kinds := []string{err.Kind.Error()}
	var questionErr *QuestionError
	if errors.As(err.Err, &questionErr) {
		kinds = append(kinds, questionErr.Kind.Error())
	}
	var configErr *ConfigError
	if errors.As(err.Err, &configErr) {
		kinds = append(kinds, configErr.Kind.Error())
	}
	return strings.Join(kinds, ": ")
}

// contextOf returns the first line of text, cut to maxContextLen runes.
func contextOf(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimRight(text, "\r")
	if utf8.RuneCountInString(text) <= maxContextLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxContextLen])
}
