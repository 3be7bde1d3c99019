package testutil

import (
	"errors"
	"io"
	"testing"
)

// TestLinesReplay verifies lines are returned in order before io.EOF.
func TestLinesReplay(t *testing.T) {
	lines := NewLines("a", "", "b")
	for _, want := range []string{"a", "", "b"} {
		got, err := lines.ReadLine()
		if err != nil || got != want {
			t.Fatalf("expected %q, got %q (%v)", want, got, err)
		}
	}
	if _, err := lines.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if lines.Reads() != 4 || lines.Remaining() != 0 {
		t.Fatalf("unexpected counters: reads=%d remaining=%d", lines.Reads(), lines.Remaining())
	}
}

// TestContextHasDeadline verifies the returned context expires.
func TestContextHasDeadline(t *testing.T) {
	ctx := Context(t, 0)
	if _, ok := ctx.Deadline(); !ok {
		t.Fatalf("expected deadline")
	}
}
