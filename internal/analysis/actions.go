package analysis

import "github.com/docutrack/analyzer/constants"

// categoryActions is the static category -> suggested-actions table.
var categoryActions = map[constants.Category][]string{
	constants.License: {
		"Set reminder 30 days before expiry",
		"Verify all details are correct",
		"Keep digital and physical copies",
	},
	constants.Certificate: {
		"Verify with issuing authority if needed",
		"Add to professional portfolio",
		"Set renewal reminder if applicable",
	},
	constants.Permit: {
		"Note all permit conditions",
		"Set expiry reminder",
		"Keep accessible for inspections",
	},
	constants.Insurance: {
		"Review coverage annually",
		"Set premium payment reminders",
		"Update beneficiary information if needed",
	},
	constants.Contract: {
		"Review all terms carefully",
		"Note key deadlines and milestones",
		"Consult legal advice if unclear",
	},
	constants.Tax: {
		"Keep for minimum 7 years",
		"Organize by tax year",
		"Consult tax professional if needed",
	},
	constants.Identity: {
		"Renew before expiration",
		"Keep secure backup copies",
		"Update address if moved",
	},
}

// genericActions is the default list for unknown categories.
var genericActions = []string{
	"Review document carefully",
	"Store safely",
	"Check expiration dates",
}

// ActionsFor looks up the suggested actions for a category; unknown
// categories get the generic default list.
func ActionsFor(category constants.Category) []string {
	if actions, ok := categoryActions[category]; ok {
		out := make([]string, len(actions))
		copy(out, actions)
		return out
	}
	out := make([]string, len(genericActions))
	copy(out, genericActions)
	return out
}
