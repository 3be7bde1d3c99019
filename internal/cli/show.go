package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"quizmark/internal/quiz"
)

// showDocument is the printed form of a parsed quiz.
type showDocument struct {
	Config     quiz.Config    `json:"config" yaml:"config"`
	TotalScore float64        `json:"total_score" yaml:"total_score"`
	Questions  []showQuestion `json:"questions" yaml:"questions"`
}

type showQuestion struct {
	Title   string        `json:"title" yaml:"title"`
	Kind    quiz.Kind     `json:"kind" yaml:"kind"`
	Config  quiz.Config   `json:"config" yaml:"config"`
	Answers []quiz.Answer `json:"answers" yaml:"answers"`
}

func newShowDocument(parsed quiz.Quiz) showDocument {
	doc := showDocument{
		Config:     parsed.Config,
		TotalScore: parsed.TotalScore,
		Questions:  make([]showQuestion, 0, parsed.Len()),
	}
	for _, question := range parsed.Questions {
		doc.Questions = append(doc.Questions, showQuestion{
			Title:   question.Title,
			Kind:    question.Kind(),
			Config:  question.Config,
			Answers: question.Answers,
		})
	}
	return doc
}

// runShow builds the handler for the show command.
func runShow(cmd *Command) Handler {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		format := fs.String("format", "json", "Output format: json|yaml")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, fs, 1, 1, stderr) {
			return ExitUsage
		}
		normalized := strings.ToLower(strings.TrimSpace(*format))
		if normalized != "json" && normalized != "yaml" {
			fmt.Fprintf(stderr, "invalid format %q (expected json|yaml)\n", *format)
			return ExitUsage
		}

		path := fs.Arg(0)
		parsed, err := quiz.LoadFile(path)
		if err != nil {
			fmt.Fprintln(stderr, describeLoadError(path, err))
			return ExitError
		}
		if err := writeDocument(stdout, normalized, newShowDocument(parsed)); err != nil {
			fmt.Fprintf(stderr, "Show failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func writeDocument(w io.Writer, format string, doc any) error {
	if format == "yaml" {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
