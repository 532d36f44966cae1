package llm

import (
	"strings"
	"unicode/utf8"

	"github.com/docutrack/analyzer/constants"
)

// DefaultPromptWindow is the content truncation bound for the user prompt,
// in characters. Tunable via config; this default suits small-context
// models.
const DefaultPromptWindow = 6000

// sectionLabels are the labels the backend is instructed to use in
// labeled-section mode. Parsing accepts them case-insensitively and in any
// order.
var sectionLabels = []string{
	"SUMMARY",
	"KEY_POINTS",
	"SUGGESTED_ACTIONS",
	"IMPORTANCE",
	"READABILITY_SCORE",
}

// BuildSystemPrompt composes the fixed system instruction: what to produce
// and the two response formats the parser understands.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a document analyst for a document-tracking product.",
		"Analyze the provided document and produce a concise summary (max 500 characters), up to 5 key points, up to 3 suggested actions, an importance level, and a readability score.",
		"Importance must be exactly one of: low, medium, high, critical.",
		"Readability score is a number from 0 to 100.",
		"Respond EITHER with labeled sections (" + strings.Join(sectionLabels, ":, ") + ":), listing key points and suggested actions as '-' bullets,",
		"OR with a single JSON object with keys: summary, key_points, suggested_actions, importance, readability_score.",
		"Do not add commentary outside the sections or the JSON object.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages category and a truncated window of the document
// content. window <= 0 falls back to DefaultPromptWindow.
func BuildUserPrompt(content string, category constants.Category, window int) string {
	if window <= 0 {
		window = DefaultPromptWindow
	}
	content = strings.TrimSpace(content)

	var b strings.Builder
	b.WriteString("Document category: ")
	b.WriteString(string(category))
	b.WriteString("\n\nDocument text:\n")
	if len(content) > window {
		cut := window
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		b.WriteString(content[:cut])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(content)
	}
	return b.String()
}
