package console

import (
	"bufio"
	"io"
	"strings"
)

// ReaderSource reads answer lines from a reader such as stdin.
type ReaderSource struct {
	reader *bufio.Reader
}

// NewReaderSource wraps in for line reads.
func NewReaderSource(in io.Reader) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(in)}
}

// ReadLine returns the next line without its line ending. A final line that
// lacks a newline is returned before io.EOF.
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
