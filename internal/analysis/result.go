// Package analysis produces the canonical document analysis result, either
// extractively (deterministic, dependency-free) or as the normalization
// target for AI-generated output. Every path through the system converges on
// the Result contract defined here.
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/docutrack/analyzer/constants"
)

// Contract bounds for every produced Result, AI-backed or extractive.
const (
	MaxSummaryChars = 500
	MaxKeyPoints    = 5
	MaxActions      = 3
)

// Result is the single output contract of the analysis pipeline.
type Result struct {
	Summary          string               `json:"summary"`
	KeyPoints        []string             `json:"key_points"`
	SuggestedActions []string             `json:"suggested_actions"`
	Importance       constants.Importance `json:"importance"`
	ReadabilityScore float64              `json:"readability_score"`
}

// Normalize enforces the contract invariant in place: every field is
// populated with a policy-conformant value, bounds are applied, and empty
// fields are filled with category defaults. A normalized Result never
// exposes an empty field to a caller.
func (r *Result) Normalize(category constants.Category) {
	r.Summary = strings.TrimSpace(r.Summary)
	if r.Summary == "" {
		r.Summary = DefaultSummary(category)
	}
	r.Summary = truncate(r.Summary, MaxSummaryChars)

	r.KeyPoints = cleanList(r.KeyPoints, MaxKeyPoints)
	if len(r.KeyPoints) == 0 {
		r.KeyPoints = DefaultKeyPoints(category)
	}

	r.SuggestedActions = cleanList(r.SuggestedActions, MaxActions)
	if len(r.SuggestedActions) == 0 {
		r.SuggestedActions = ActionsFor(category)
	}

	r.Importance, _ = constants.CanonicalizeImportance(string(r.Importance))
	r.ReadabilityScore = clampScore(r.ReadabilityScore)
}

// cleanList trims entries, drops empties, and truncates to max while
// preserving order.
func cleanList(items []string, max int) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		s := strings.TrimSpace(it)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
