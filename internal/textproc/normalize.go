// Package textproc provides pure text preparation for the analysis
// pipeline: whitespace/character normalization and sentence segmentation.
// None of it performs I/O; everything is request-scoped.
package textproc

import (
	"regexp"
	"strings"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	// Keep letters and digits in any script, spaces, and basic
	// punctuation; everything else (emoji, control chars, markup
	// remnants) is stripped.
	reDisallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?\-:;]`)
)

// Normalize collapses whitespace runs to single spaces, strips characters
// outside the alphanumeric/space/basic-punctuation set, and trims the
// result. Empty input yields empty output; Normalize never fails.
func Normalize(raw string) string {
	text := reWhitespace.ReplaceAllString(raw, " ")
	text = reDisallowed.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
