package quiz

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	quizFence      = "---"
	questionMarker = '?'
	correctMarker  = '+'
	wrongMarker    = '-'
)

// blankLine separates question blocks; it tolerates CRLF line endings.
var blankLine = regexp.MustCompile(`\r?\n\r?\n`)

// splitDocument separates the quiz-wide config from the question body at the
// first "\n---". A leading fence is dropped first so documents may open with
// "---". found reports whether a fence closed the config section.
func splitDocument(text string) (configText, body string, found bool) {
	text = strings.TrimPrefix(text, quizFence)
	idx := strings.Index(text, "\n"+quizFence)
	if idx < 0 {
		return "", text, false
	}
	return text[:idx], text[idx+len("\n"+quizFence):], true
}

// splitBlocks splits a question body on blank lines. Empty chunks are kept so
// callers can account for their lines.
func splitBlocks(body string) []string {
	return blankLine.Split(body, -1)
}

// blockParts is the result of splitting one block at its question marker.
type blockParts struct {
	config string
	body   string
	// markerLine reports whether the marker followed a newline, consuming a
	// line of the block.
	markerLine bool
}

// splitBlock separates per-question config from the question body at the
// first "\n?". A block that opens with '?' has no config. Without a marker the
// whole block is config text.
func splitBlock(block string) blockParts {
	if idx := strings.Index(block, "\n"+string(questionMarker)); idx >= 0 {
		return blockParts{
			config:     block[:idx],
			body:       trimBody(block[idx+2:]),
			markerLine: true,
		}
	}
	if len(block) > 0 && block[0] == questionMarker {
		return blockParts{body: trimBody(block[1:])}
	}
	return blockParts{config: block}
}

// trimBody trims a question body but keeps a newline right after the marker,
// so an answer on the next line is not mistaken for the title.
func trimBody(body string) string {
	return strings.TrimLeft(strings.TrimRightFunc(body, unicode.IsSpace), " \t")
}

// segment is one piece of a question body: the title or a tagged answer.
type segment struct {
	marker byte
	text   string
}

// segmentBody splits a question body, with its '?' already removed, into the
// title followed by one segment per "\n+" or "\n-" boundary. The boundary
// newline belongs to neither segment; the marker starts the next one.
func segmentBody(body string) []segment {
	if body == "" {
		return nil
	}
	var segments []segment
	start := 0
	for i := 0; i+1 < len(body); i++ {
		if body[i] != '\n' || !isAnswerMarker(body[i+1]) {
			continue
		}
		segments = append(segments, newSegment(body[start:i], len(segments) == 0))
		start = i + 1
	}
	segments = append(segments, newSegment(body[start:], len(segments) == 0))
	return segments
}

func newSegment(raw string, title bool) segment {
	if title {
		return segment{text: strings.TrimSpace(raw)}
	}
	return segment{marker: raw[0], text: foldAnswerText(raw[1:])}
}

func isAnswerMarker(b byte) bool {
	return b == correctMarker || b == wrongMarker
}

// foldAnswerText joins answer lines with single spaces and trims the result.
func foldAnswerText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}
