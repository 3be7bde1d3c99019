package cli

import (
	"errors"
	"fmt"

	"quizmark/internal/quiz"
)

// describeLoadError renders a quiz load failure as path:line: reason.
func describeLoadError(path string, err error) string {
	var quizErr *quiz.QuizError
	if !errors.As(err, &quizErr) {
		return fmt.Sprintf("%s: %v", path, err)
	}
	msg := fmt.Sprintf("%s:%d: %s", path, quizErr.Line(), quizErr.Reason())
	if context := quizErr.Context(); context != "" {
		msg += fmt.Sprintf(" near %q", context)
	}
	return msg
}
