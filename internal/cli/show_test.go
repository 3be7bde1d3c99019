package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestShowJSON verifies the parsed quiz is printed as JSON.
func TestShowJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quiz.txt", sampleQuiz)
	code, out, errOut := run([]string{"show", path}, "")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	var doc showDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.TotalScore != 2 || len(doc.Questions) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Questions[0].Kind != "free_text" || doc.Questions[1].Kind != "single_choice" {
		t.Fatalf("unexpected kinds: %+v", doc.Questions)
	}
	if doc.Config.Tutorial {
		t.Fatalf("expected tutorial disabled in quiz config")
	}
}

// TestShowYAML verifies the yaml format.
func TestShowYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quiz.txt", sampleQuiz)
	code, out, _ := run([]string{"show", "--format", "yaml", path}, "")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	for _, want := range []string{"total_score: 2", "Capital of France", "kind: single_choice"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestShowRejectsUnknownFormat verifies format validation.
func TestShowRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quiz.txt", sampleQuiz)
	code, _, errOut := run([]string{"show", "--format", "xml", path}, "")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "invalid format") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}
