package textproc

import (
	"strings"
)

// DefaultMinWords is the minimum word count for a segment to count as a
// sentence. Shorter fragments (headings, stray abbreviations) are dropped.
const DefaultMinWords = 5

// Segment splits text into sentence-like units at boundaries immediately
// following '.', '!' or '?' followed by whitespace, preserving order and
// discarding segments with fewer than minWords words. minWords <= 0 falls
// back to DefaultMinWords. Empty or all-short input returns an empty slice;
// callers must treat that as a valid outcome, not an error.
func Segment(text string, minWords int) []string {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}

	var sentences []string
	var b strings.Builder
	runes := []rune(text)

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s == "" {
			return
		}
		if len(strings.Fields(s)) >= minWords {
			sentences = append(sentences, s)
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if isTerminator(r) && i+1 < len(runes) && isSpace(runes[i+1]) {
			flush()
			// swallow the boundary whitespace
			for i+1 < len(runes) && isSpace(runes[i+1]) {
				i++
			}
		}
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
