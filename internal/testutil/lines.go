package testutil

import "io"

// Lines replays fixed answer lines and then fails with io.EOF.
type Lines struct {
	lines []string
	reads int
}

// NewLines returns a line source over lines.
func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines}
}

// ReadLine returns the next scripted line.
func (l *Lines) ReadLine() (string, error) {
	l.reads++
	if len(l.lines) == 0 {
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}

// Remaining reports how many scripted lines were never read.
func (l *Lines) Remaining() int {
	return len(l.lines)
}

// Reads reports how many times ReadLine was called.
func (l *Lines) Reads() int {
	return l.reads
}
