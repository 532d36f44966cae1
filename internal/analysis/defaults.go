package analysis

import "github.com/docutrack/analyzer/constants"

// PlaceholderSummary is returned by the extractive summarizer when the
// input yields no usable sentences.
const PlaceholderSummary = "Unable to generate summary from provided text."

// categorySummaries are the per-category default summary sentences used for
// per-field fill when a producing step yields an empty summary.
var categorySummaries = map[constants.Category]string{
	constants.License:     "This is a license document. Please ensure it remains valid and renew before expiration.",
	constants.Certificate: "This certificate has been uploaded for record-keeping. Verify authenticity as needed.",
	constants.Permit:      "This permit document grants specific authorization. Track expiry dates carefully.",
	constants.Insurance:   "Insurance document uploaded. Review coverage details and premium due dates.",
	constants.Contract:    "Legal contract stored for reference. Review terms and important deadlines.",
	constants.Tax:         "Tax-related document. Keep for records and future reference during tax filing.",
	constants.Identity:    "Identity document stored securely. Ensure it is renewed before expiration.",
	constants.Other:       "Document uploaded successfully. Review and categorize for better organization.",
}

// categoryPoints seed the default key-point list per category.
var categoryPoints = map[constants.Category][]string{
	constants.License:     {"Verify license number and validity", "Check renewal requirements"},
	constants.Certificate: {"Confirm issuing authority", "Verify certificate authenticity"},
	constants.Permit:      {"Note permit conditions", "Track permit expiration"},
	constants.Insurance:   {"Review coverage limits", "Note premium due dates"},
	constants.Contract:    {"Review key terms and conditions", "Note important deadlines"},
	constants.Tax:         {"Keep for tax filing purposes", "Note relevant tax year"},
	constants.Identity:    {"Ensure document is current", "Store securely"},
	constants.Other:       {"Review document contents", "Categorize appropriately"},
}

// DefaultSummary returns the fixed fallback summary for a category.
func DefaultSummary(category constants.Category) string {
	if s, ok := categorySummaries[category]; ok {
		return s
	}
	return categorySummaries[constants.Other]
}

// DefaultKeyPoints returns a fixed three-item key-point list for a category.
func DefaultKeyPoints(category constants.Category) []string {
	points, ok := categoryPoints[category]
	if !ok {
		points = categoryPoints[constants.Other]
	}
	out := make([]string, 0, 3)
	out = append(out, points...)
	out = append(out, "Document stored for future reference")
	return out
}
