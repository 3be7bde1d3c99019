package quiz

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Quiz is a parsed quiz document.
type Quiz struct {
	Config     Config     `json:"config" yaml:"config"`
	Questions  []Question `json:"questions" yaml:"questions"`
	TotalScore float64    `json:"total_score" yaml:"total_score"`
}

// Len returns the number of questions.
func (q Quiz) Len() int { return len(q.Questions) }

// Parse parses a whole quiz document. The optional config section ends at the
// first "---" line; questions follow as blank-line separated blocks that
// inherit the quiz config. Comment-only blocks are skipped.
func Parse(text string) (Quiz, error) {
	configText, body, fenced := splitDocument(text)

	cfg, err := ParseConfig(DefaultConfig(), configText)
	if err != nil {
		var configErr *ConfigError
		linesParsed := 0
		if errors.As(err, &configErr) {
			linesParsed = configErr.LinesParsed
		}
		return Quiz{}, &QuizError{Kind: ErrQuizConfig, LinesParsed: linesParsed, Err: err}
	}

	quiz := Quiz{Config: cfg}
	linesParsed := strings.Count(configText, "\n")
	if fenced {
		linesParsed++
	}

	for _, block := range splitBlocks(body) {
		if strings.TrimSpace(block) != "" {
			question, err := ParseQuestion(cfg, block)
			switch {
			case errors.Is(err, ErrOnlyConfig):
			case err != nil:
				var questionErr *QuestionError
				offset := 0
				if errors.As(err, &questionErr) {
					offset = questionErr.LinesParsed
				}
				return Quiz{}, &QuizError{Kind: ErrQuizQuestion, LinesParsed: linesParsed + offset, Err: err}
			default:
				quiz.Questions = append(quiz.Questions, question)
			}
		}
		linesParsed += 2 + strings.Count(block, "\n")
	}

	for _, question := range quiz.Questions {
		quiz.TotalScore += question.Config.Value
	}
	return quiz, nil
}

// LoadFile reads and parses a quiz document from disk.
func LoadFile(path string) (Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Quiz{}, fmt.Errorf("read quiz: %w", err)
	}
	return Parse(string(data))
}
