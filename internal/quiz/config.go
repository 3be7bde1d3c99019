package quiz

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Config holds the options that apply to a quiz or to a single question.
// Question configs start as a copy of the quiz config.
type Config struct {
	// Value is the number of points a question is worth.
	Value float64 `json:"value" yaml:"value"`
	// CaseSensitive makes free-text answers compare without case folding.
	CaseSensitive bool `json:"case_sensitive" yaml:"case_sensitive"`
	// Ordered keeps a question in its document position instead of shuffling it.
	Ordered bool `json:"ordered" yaml:"ordered"`
	// OrderedAnswers keeps the displayed answer order instead of shuffling it.
	OrderedAnswers bool `json:"ordered_answers" yaml:"ordered_answers"`
	// Tutorial prints answering instructions before the first question.
	Tutorial bool `json:"tutorial" yaml:"tutorial"`
}

// DefaultConfig returns the options used when a document sets none.
func DefaultConfig() Config {
	return Config{
		Value:          1,
		CaseSensitive:  false,
		Ordered:        true,
		OrderedAnswers: true,
		Tutorial:       true,
	}
}

// ParseConfig applies the directive lines in text on top of base. Blank lines
// and '#' comments are skipped. base is never modified.
func ParseConfig(base Config, text string) (Config, error) {
	cfg := base
	for index, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, ";") {
			return Config{}, &ConfigError{
				Kind:        ErrMissingDelimiter,
				Context:     contextOf(line),
				LinesParsed: index,
			}
		}
		if err := applyDirective(&cfg, line[1:], index); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// applyDirective sets a single option from a "name[:value]" directive body.
func applyDirective(cfg *Config, directive string, index int) error {
	name, value, _ := strings.Cut(directive, ":")
	name = normalizeOptionName(name)
	value = strings.ToLower(strings.TrimSpace(value))

	invalidValue := func(err error) error {
		return &ConfigError{
			Kind:        ErrInvalidValue,
			Context:     contextOf(value),
			LinesParsed: index,
			Err:         err,
		}
	}

	switch name {
	case "value":
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalidValue(err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return invalidValue(&strconv.NumError{Func: "ParseFloat", Num: value, Err: strconv.ErrRange})
		}
		cfg.Value = parsed
	case "casesensitive":
		parsed, err := parseBool(value)
		if err != nil {
			return invalidValue(err)
		}
		cfg.CaseSensitive = parsed
	case "ordered":
		parsed, err := parseBool(value)
		if err != nil {
			return invalidValue(err)
		}
		cfg.Ordered = parsed
	case "orderedanswers":
		parsed, err := parseBool(value)
		if err != nil {
			return invalidValue(err)
		}
		cfg.OrderedAnswers = parsed
	case "tutorial":
		parsed, err := parseBool(value)
		if err != nil {
			return invalidValue(err)
		}
		cfg.Tutorial = parsed
	default:
		return &ConfigError{
			Kind:        ErrInvalidOption,
			Context:     contextOf(name),
			LinesParsed: index,
		}
	}
	return nil
}

// normalizeOptionName drops separators and case so "Case-Sensitive",
// "case_sensitive" and "casesensitive" all match.
func normalizeOptionName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	return strings.ToLower(name)
}

// parseBool accepts only the literals true and false.
func parseBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &strconv.NumError{Func: "ParseBool", Num: value, Err: strconv.ErrSyntax}
	}
}

// splitLines splits text on '\n' and drops a trailing '\r' from each line.
// Empty text has no lines; a trailing newline does not add an empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// String renders the config as directive lines.
func (cfg Config) String() string {
	return fmt.Sprintf(";value: %g\n;case-sensitive: %t\n;ordered: %t\n;ordered-answers: %t\n;tutorial: %t",
		cfg.Value, cfg.CaseSensitive, cfg.Ordered, cfg.OrderedAnswers, cfg.Tutorial)
}
