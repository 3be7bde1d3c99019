package config

import (
	"fmt"
	"slices"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config and reports every issue at once.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if !slices.Contains(uiModes, cfg.UI.Mode) {
		collector.add("ui.mode", fmt.Sprintf("must be one of %s, got %q", strings.Join(uiModes, "|"), cfg.UI.Mode))
	}
	if !slices.Contains(logLevels, cfg.Log.Level) {
		collector.add("log.level", fmt.Sprintf("must be one of %s, got %q", strings.Join(logLevels, "|"), cfg.Log.Level))
	}
	if strings.HasSuffix(cfg.Log.Path, "/") {
		collector.add("log.path", "must name a file, not a directory")
	}

	return collector.result()
}
