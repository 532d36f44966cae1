package analysis

import (
	"strings"

	"github.com/docutrack/analyzer/constants"
)

// defaultImportanceKeywords maps each tier to the substrings that trigger
// it. Tiers are tested in constants.ImportanceTiers order and the first hit
// wins, so "expired" is claimed by critical before high's "expir" stem can
// see it. Membership is a tunable parameter (Config.ImportanceKeywords);
// the priority order and the medium default are contractual.
var defaultImportanceKeywords = map[constants.Importance][]string{
	constants.ImportanceCritical: {"urgent", "immediate", "critical", "expired", "penalty", "violation"},
	constants.ImportanceHigh:     {"important", "required", "mandatory", "deadline", "expir", "renew"},
	constants.ImportanceMedium:   {"review", "necessary", "recommended", "update"},
	constants.ImportanceLow:      {"optional", "information", "reference", "archive"},
}

// classifyImportance assigns the highest-priority tier with any keyword
// present in the lower-cased text, defaulting to medium.
func classifyImportance(text string, keywords map[constants.Importance][]string) constants.Importance {
	if keywords == nil {
		keywords = defaultImportanceKeywords
	}
	lower := strings.ToLower(text)
	for _, tier := range constants.ImportanceTiers {
		for _, kw := range keywords[tier] {
			if strings.Contains(lower, kw) {
				return tier
			}
		}
	}
	return constants.ImportanceMedium
}
