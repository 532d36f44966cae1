package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/docutrack/analyzer/constants"
)

func TestBuildSystemPromptMentionsBothFormats(t *testing.T) {
	sys := BuildSystemPrompt()
	for _, label := range sectionLabels {
		assert.Contains(t, sys, label)
	}
	assert.Contains(t, sys, "JSON object")
	assert.Contains(t, sys, "low, medium, high, critical")
}

func TestBuildUserPromptTruncatesToWindow(t *testing.T) {
	content := strings.Repeat("a", 10_000)
	prompt := BuildUserPrompt(content, constants.License, 6000)

	assert.Contains(t, prompt, "Document category: license")
	assert.Contains(t, prompt, "…(truncated)")
	// the embedded content must not exceed the window
	assert.Less(t, len(prompt), 6200)
}

func TestBuildUserPromptTruncatesOnRuneBoundary(t *testing.T) {
	content := strings.Repeat("保", 100)
	prompt := BuildUserPrompt(content, constants.Other, 50)

	assert.Contains(t, prompt, "…(truncated)")
	assert.True(t, utf8.ValidString(prompt))
}

func TestBuildUserPromptShortContentUntouched(t *testing.T) {
	prompt := BuildUserPrompt("short document body", constants.Tax, 6000)
	assert.Contains(t, prompt, "short document body")
	assert.NotContains(t, prompt, "truncated")
}

func TestBuildUserPromptZeroWindowUsesDefault(t *testing.T) {
	content := strings.Repeat("b", DefaultPromptWindow+500)
	prompt := BuildUserPrompt(content, constants.Other, 0)
	assert.Contains(t, prompt, "…(truncated)")
}
