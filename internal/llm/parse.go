package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Fields is the payload recovered from a backend response. Parsing is
// best-effort: absent fields stay zero. ReadabilityScore is a pointer so
// absence is distinguishable from a literal 0.
type Fields struct {
	Summary          string
	KeyPoints        []string
	SuggestedActions []string
	Importance       string
	ReadabilityScore *float64
}

func (f Fields) isEmpty() bool {
	return f.Summary == "" &&
		len(f.KeyPoints) == 0 &&
		len(f.SuggestedActions) == 0 &&
		f.Importance == "" &&
		f.ReadabilityScore == nil
}

var (
	reLabel  = regexp.MustCompile(`(?i)\b(SUMMARY|KEY[_ ]POINTS|SUGGESTED[_ ]ACTIONS|IMPORTANCE|READABILITY[_ ]SCORE)\s*:`)
	reNumber = regexp.MustCompile(`-?\d+(\.\d+)?`)
)

// ParseMode identifies which path recovered the fields. Callers record it
// so schema-conformant payloads, coerced payloads, and labeled-section
// responses remain distinguishable in logs.
type ParseMode string

const (
	// ParseModeJSONStrict: the embedded object satisfied the response
	// schema and decoded directly.
	ParseModeJSONStrict ParseMode = "json_strict"
	// ParseModeJSONLenient: an object was found but violated the schema;
	// fields were recovered by per-key coercion.
	ParseModeJSONLenient ParseMode = "json_lenient"
	// ParseModeLabeled: fields came from labeled sections.
	ParseModeLabeled ParseMode = "labeled"
	// ParseModeNone: nothing usable; callers fall back wholesale.
	ParseModeNone ParseMode = "none"
)

// ParseResponse recovers analysis fields from a backend completion. It
// tolerates prose around the structured payload, section reordering, and
// label casing variance, and it never fails: ParseModeNone means nothing
// usable was found, which callers treat as a full-fallback signal rather
// than an error.
func ParseResponse(raw string) (Fields, ParseMode) {
	if candidate := extractJSONObject(raw); candidate != "" {
		if fields, mode := parseJSON(candidate); mode != ParseModeNone {
			return fields, mode
		}
	}

	fields := parseLabeledSections(raw)
	if fields.isEmpty() {
		return Fields{}, ParseModeNone
	}
	return fields, ParseModeLabeled
}

// extractJSONObject returns the first balanced {...} substring, honoring
// JSON string and escape state, or "" when none closes.
func extractJSONObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}

// parseJSON decodes a candidate object. Payloads that satisfy the response
// schema take the strict typed path; anything else goes through lenient
// per-key coercion, so a key_points string or a quoted score still counts.
// The two outcomes carry distinct modes so callers can see when a backend
// is drifting off-schema.
func parseJSON(candidate string) (Fields, ParseMode) {
	data := []byte(candidate)

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Fields{}, ParseModeNone
	}

	if err := ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), data); err == nil {
		var strict struct {
			Summary          string   `json:"summary"`
			KeyPoints        []string `json:"key_points"`
			SuggestedActions []string `json:"suggested_actions"`
			Importance       string   `json:"importance"`
			ReadabilityScore *float64 `json:"readability_score"`
		}
		if err := json.Unmarshal(data, &strict); err == nil {
			f := Fields{
				Summary:          strings.TrimSpace(strict.Summary),
				KeyPoints:        trimAll(strict.KeyPoints),
				SuggestedActions: trimAll(strict.SuggestedActions),
				Importance:       strings.TrimSpace(strict.Importance),
				ReadabilityScore: strict.ReadabilityScore,
			}
			if f.isEmpty() {
				return Fields{}, ParseModeNone
			}
			return f, ParseModeJSONStrict
		}
	}

	f := Fields{
		Summary:          coerceString(m["summary"]),
		KeyPoints:        coerceStringList(m["key_points"]),
		SuggestedActions: coerceStringList(m["suggested_actions"]),
		Importance:       coerceString(m["importance"]),
		ReadabilityScore: coerceScore(m["readability_score"]),
	}
	if f.isEmpty() {
		return Fields{}, ParseModeNone
	}
	return f, ParseModeJSONLenient
}

// parseLabeledSections slices the response at known labels and interprets
// each segment: free text for SUMMARY, bullet lines for the list sections,
// a single token for IMPORTANCE, the first number for READABILITY_SCORE.
func parseLabeledSections(raw string) Fields {
	matches := reLabel.FindAllStringSubmatchIndex(raw, -1)
	var fields Fields

	for i, m := range matches {
		label := normalizeLabel(raw[m[2]:m[3]])
		segStart := m[1]
		segEnd := len(raw)
		if i+1 < len(matches) {
			segEnd = matches[i+1][0]
		}
		segment := strings.TrimSpace(raw[segStart:segEnd])
		if segment == "" {
			continue
		}

		switch label {
		case "SUMMARY":
			fields.Summary = strings.Join(strings.Fields(segment), " ")
		case "KEY_POINTS":
			fields.KeyPoints = parseBullets(segment)
		case "SUGGESTED_ACTIONS":
			fields.SuggestedActions = parseBullets(segment)
		case "IMPORTANCE":
			if words := strings.Fields(segment); len(words) > 0 {
				fields.Importance = strings.Trim(words[0], ".,;")
			}
		case "READABILITY_SCORE":
			if num := reNumber.FindString(segment); num != "" {
				if v, err := strconv.ParseFloat(num, 64); err == nil {
					fields.ReadabilityScore = &v
				}
			}
		}
	}
	return fields
}

func normalizeLabel(label string) string {
	return strings.ReplaceAll(strings.ToUpper(label), " ", "_")
}

// parseBullets extracts lines prefixed with "-" or "*"; surrounding prose
// lines are ignored.
func parseBullets(segment string) []string {
	var items []string
	for _, line := range strings.Split(segment, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 2 {
			continue
		}
		if line[0] != '-' && line[0] != '*' {
			continue
		}
		item := strings.TrimSpace(line[1:])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func trimAll(items []string) []string {
	var out []string
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceStringList accepts an array of strings, an array of mixed scalars,
// or a single string holding bullets/newlines.
func coerceStringList(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			switch s := item.(type) {
			case string:
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			case float64:
				out = append(out, strconv.FormatFloat(s, 'f', -1, 64))
			}
		}
		return out
	case string:
		if bullets := parseBullets(t); len(bullets) > 0 {
			return bullets
		}
		var out []string
		for _, line := range strings.Split(t, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}

func coerceScore(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		if num := reNumber.FindString(t); num != "" {
			if parsed, err := strconv.ParseFloat(num, 64); err == nil {
				return &parsed
			}
		}
	}
	return nil
}
