package cli

import (
	"strings"
	"testing"
)

// TestCheckReportsEachFile verifies OK lines and located errors.
func TestCheckReportsEachFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", sampleQuiz)
	bad := writeFile(t, dir, "bad.txt", "?q1\n+a\n\n?q2\n-b\n")

	code, out, errOut := run([]string{"check", good, bad}, "")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(out, good+": OK (2 questions, total 2)") {
		t.Fatalf("unexpected stdout %q", out)
	}
	want := bad + `:4: invalid question: no correct answer near "q2"`
	if !strings.Contains(errOut, want) {
		t.Fatalf("expected %q in stderr, got %q", want, errOut)
	}
}

// TestCheckAllValid verifies a clean run exits zero.
func TestCheckAllValid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quiz.txt", ";value: 1.5\n---\n?q\n+a\n")
	code, out, _ := run([]string{"check", path}, "")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "OK (1 questions, total 1.5)") {
		t.Fatalf("unexpected stdout %q", out)
	}
}

// TestCheckMissingFile verifies read failures are reported.
func TestCheckMissingFile(t *testing.T) {
	code, _, errOut := run([]string{"check", "does-not-exist.txt"}, "")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "read quiz") {
		t.Fatalf("expected read error, got %q", errOut)
	}
}
