package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docutrack/analyzer/constants"
	"github.com/docutrack/analyzer/internal/analysis"
	"github.com/docutrack/analyzer/internal/common"
)

// DefaultReadability fills the readability score when the backend response
// carries none.
const DefaultReadability = 75

// Analyzer is the AI-assisted analysis path. It prompts the configured
// completion backend and maps its semi-structured reply onto the result
// contract; whenever the backend is unconfigured, unreachable, or
// unparsable it defers to the embedded extractive analyzer. Analyze never
// fails visibly.
type Analyzer struct {
	backend    CompletionBackend
	extractive *analysis.Analyzer
	cfg        common.LLMConfig
	log        *slog.Logger
}

// NewAnalyzer wires the AI path. backend may be nil, which pins every
// request to the extractive fallback; extractive must not be nil.
func NewAnalyzer(backend CompletionBackend, extractive *analysis.Analyzer, cfg common.LLMConfig, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PromptWindow <= 0 {
		cfg.PromptWindow = DefaultPromptWindow
	}
	return &Analyzer{
		backend:    backend,
		extractive: extractive,
		cfg:        cfg,
		log:        logger,
	}
}

// Analyze produces a conformant result for the content. Backend failures
// fall back wholesale to the extractive analyzer; partial parses are
// repaired per-field, not discarded.
func (a *Analyzer) Analyze(ctx context.Context, content string, category constants.Category) analysis.Result {
	reqID := uuid.New().String()

	if a.backend == nil {
		a.log.Info("llm.analyze.fallback", "req_id", reqID, "reason", "no backend configured")
		return a.extractive.Analyze(content, category)
	}
	if strings.TrimSpace(content) == "" {
		a.log.Info("llm.analyze.fallback", "req_id", reqID, "reason", "empty content")
		return a.extractive.Analyze(content, category)
	}

	start := time.Now()
	raw, err := a.backend.Complete(ctx, CompletionRequest{
		System:      BuildSystemPrompt(),
		User:        BuildUserPrompt(content, category, a.cfg.PromptWindow),
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		a.log.Warn("llm.analyze.backend_error",
			"req_id", reqID,
			"backend", a.backend.Name(),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return a.extractive.Analyze(content, category)
	}

	fields, mode := ParseResponse(raw)
	if mode == ParseModeNone {
		a.log.Warn("llm.analyze.unparsable",
			"req_id", reqID,
			"backend", a.backend.Name(),
			"response_len", len(raw),
		)
		return a.extractive.Analyze(content, category)
	}
	if mode == ParseModeJSONLenient {
		// The backend produced JSON that violates its own instructions;
		// worth surfacing even though coercion recovered it.
		a.log.Warn("llm.parse.schema_invalid",
			"req_id", reqID,
			"backend", a.backend.Name(),
		)
	}

	result := a.mapFields(fields, category)
	a.log.Info("llm.analyze.ok",
		"req_id", reqID,
		"backend", a.backend.Name(),
		"parse_mode", mode,
		"importance", result.Importance,
		"key_points", len(result.KeyPoints),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}

// mapFields converts parsed fields to a normalized Result. Missing fields
// get fixed textual defaults for that field only — never a whole-result
// fallback.
func (a *Analyzer) mapFields(fields Fields, category constants.Category) analysis.Result {
	score := float64(DefaultReadability)
	if fields.ReadabilityScore != nil {
		score = *fields.ReadabilityScore
	}

	result := analysis.Result{
		Summary:          fields.Summary,
		KeyPoints:        fields.KeyPoints,
		SuggestedActions: fields.SuggestedActions,
		Importance:       constants.Importance(fields.Importance),
		ReadabilityScore: score,
	}
	result.Normalize(category)
	return result
}
