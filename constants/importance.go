package constants

import "strings"

// Importance is the document importance tier.
type Importance string

const (
	ImportanceLow      Importance = "low"
	ImportanceMedium   Importance = "medium"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// ImportanceTiers lists tiers in classification priority order:
// the first tier with a keyword hit wins.
var ImportanceTiers = []Importance{
	ImportanceCritical,
	ImportanceHigh,
	ImportanceMedium,
	ImportanceLow,
}

// CanonicalizeImportance maps free-form input to a known tier.
// Anything unrecognized maps to medium, the contractual default.
func CanonicalizeImportance(input string) (Importance, bool) {
	switch Importance(strings.ToLower(strings.TrimSpace(input))) {
	case ImportanceLow:
		return ImportanceLow, true
	case ImportanceMedium:
		return ImportanceMedium, true
	case ImportanceHigh:
		return ImportanceHigh, true
	case ImportanceCritical:
		return ImportanceCritical, true
	default:
		return ImportanceMedium, false
	}
}
