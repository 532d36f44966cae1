package constants

import (
	"strings"
)

// Category is a canonical document category.
type Category string

const (
	License     Category = "license"
	Certificate Category = "certificate"
	Permit      Category = "permit"
	Insurance   Category = "insurance"
	Contract    Category = "contract"
	Tax         Category = "tax"
	Identity    Category = "identity"
	Other       Category = "other"
)

var allCategories = []Category{
	License,
	Certificate,
	Permit,
	Insurance,
	Contract,
	Tax,
	Identity,
	Other,
}

// AsStringSlice returns every known category as a plain string slice.
func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps free-form input to a known category.
// Unknown or empty input maps to Other; the second return reports
// whether the input matched something known.
func CanonicalizeCategory(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"licence":        License,
		"registration":   License,
		"cert":           Certificate,
		"certification":  Certificate,
		"diploma":        Certificate,
		"authorization":  Permit,
		"policy":         Insurance,
		"coverage":       Insurance,
		"agreement":      Contract,
		"lease":          Contract,
		"invoice":        Tax,
		"receipt":        Tax,
		"passport":       Identity,
		"id":             Identity,
		"identification": Identity,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return Other, false
}
