package analysis

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/docutrack/analyzer/constants"
	"github.com/docutrack/analyzer/internal/textproc"
)

var reSentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Config holds the extractive analyzer tunables.
type Config struct {
	MinSentenceWords    int // minimum words per sentence, default 5
	MaxSummarySentences int // sentences joined into the summary, 3..5
	MaxKeyPoints        int // default 5
	MaxActions          int // default 3

	// ImportanceKeywords overrides the default tier table; nil keeps the
	// built-in membership. Priority order is fixed regardless.
	ImportanceKeywords map[constants.Importance][]string
}

func (c *Config) defaults() {
	if c.MinSentenceWords <= 0 {
		c.MinSentenceWords = textproc.DefaultMinWords
	}
	if c.MaxSummarySentences < 3 || c.MaxSummarySentences > 5 {
		c.MaxSummarySentences = 5
	}
	if c.MaxKeyPoints <= 0 || c.MaxKeyPoints > MaxKeyPoints {
		c.MaxKeyPoints = MaxKeyPoints
	}
	if c.MaxActions <= 0 || c.MaxActions > MaxActions {
		c.MaxActions = MaxActions
	}
}

// Analyzer is the deterministic extractive analyzer: the system's safety
// net. It has no external dependencies and always produces a conformant
// Result.
type Analyzer struct {
	cfg Config
	log *slog.Logger
}

func NewAnalyzer(cfg Config, logger *slog.Logger) *Analyzer {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cfg: cfg, log: logger}
}

// Analyze runs the full extractive pipeline: normalize, segment, then
// derive every Result field from the sentence sequence and category table.
// Identical input always yields identical output.
func (a *Analyzer) Analyze(content string, category constants.Category) Result {
	text := textproc.Normalize(content)
	sentences := textproc.Segment(text, a.cfg.MinSentenceWords)

	a.log.Debug("analysis.extractive",
		"category", category,
		"text_len", len(text),
		"sentences", len(sentences),
	)

	result := Result{
		Summary:          a.Summarize(sentences),
		KeyPoints:        a.KeyPoints(sentences),
		SuggestedActions: a.Actions(category),
		Importance:       a.Importance(text),
		ReadabilityScore: Readability(text),
	}
	result.Normalize(category)
	return result
}

// Summarize joins the first MaxSummarySentences sentences with single
// spaces, truncated to the summary bound. No sentences yields the fixed
// placeholder.
func (a *Analyzer) Summarize(sentences []string) string {
	if len(sentences) == 0 {
		return PlaceholderSummary
	}
	n := a.cfg.MaxSummarySentences
	if n > len(sentences) {
		n = len(sentences)
	}
	return truncate(strings.Join(sentences[:n], " "), MaxSummaryChars)
}

// KeyPoints returns the first MaxKeyPoints sentences verbatim, in order.
func (a *Analyzer) KeyPoints(sentences []string) []string {
	n := a.cfg.MaxKeyPoints
	if n > len(sentences) {
		n = len(sentences)
	}
	points := make([]string, n)
	copy(points, sentences[:n])
	return points
}

// Actions returns the category's suggested actions, capped at MaxActions.
func (a *Analyzer) Actions(category constants.Category) []string {
	actions := ActionsFor(category)
	if len(actions) > a.cfg.MaxActions {
		actions = actions[:a.cfg.MaxActions]
	}
	return actions
}

// Importance classifies the text against the configured keyword tiers.
func (a *Analyzer) Importance(text string) constants.Importance {
	return classifyImportance(text, a.cfg.ImportanceKeywords)
}

// Readability approximates a Flesch-Kincaid grade level from average words
// per sentence and average characters per word, clamped to [0, 100].
// Degenerate input (no words, no sentence boundaries) yields 0.
func Readability(text string) float64 {
	words := strings.Fields(text)
	boundaries := len(reSentenceBoundary.FindAllString(text, -1))
	if len(words) == 0 || boundaries == 0 {
		return 0
	}

	var chars int
	for _, w := range words {
		chars += len(w)
	}
	avgWordsPerSentence := float64(len(words)) / float64(boundaries)
	avgCharsPerWord := float64(chars) / float64(len(words))

	score := 0.39*avgWordsPerSentence + 11.8*(avgCharsPerWord/5) - 15.59
	return clampScore(score)
}
