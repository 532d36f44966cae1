// Package processor coordinates the document analysis pipeline: optional
// remote text acquisition, content assembly, and the AI-assisted analyzer
// (which embeds its own extractive fallback). It is the process_document
// entry point the transport layer calls.
package processor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docutrack/analyzer/constants"
	"github.com/docutrack/analyzer/internal/analysis"
	"github.com/docutrack/analyzer/internal/common"
)

// TextFetcher acquires raw text from a remote file reference. An empty
// string is a valid, silent outcome.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) string
}

// DocumentAnalyzer produces a conformant result for non-empty content; it
// never fails.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, content string, category constants.Category) analysis.Result
}

// Request is one document analysis request. At least one of Content and
// FileURL must resolve to non-empty text.
type Request struct {
	Content  string
	FileURL  string
	Category string
}

// Processor coordinates fetch (text acquisition) then analysis.
type Processor struct {
	Logger   *slog.Logger
	Fetcher  TextFetcher
	Analyzer DocumentAnalyzer
}

func NewProcessor(logger *slog.Logger, fetcher TextFetcher, analyzer DocumentAnalyzer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Fetcher: fetcher, Analyzer: analyzer}
}

// ProcessDocument assembles the request's text and runs the analyzer.
// The only caller-visible failure is common.ErrNoUsableContent: neither the
// inline content nor the fetched file yielded text. Every downstream stage
// degrades internally, so a non-empty assembly always produces a result.
func (p *Processor) ProcessDocument(ctx context.Context, req Request) (analysis.Result, error) {
	reqID := common.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}

	category, known := constants.CanonicalizeCategory(req.Category)
	if !known && req.Category != "" {
		p.Logger.Info("processor.category.unknown", "req_id", reqID, "category", req.Category)
	}

	var fileText string
	if req.FileURL != "" && p.Fetcher != nil {
		fileText = p.Fetcher.FetchText(ctx, req.FileURL)
		p.Logger.Info("processor.fetch.done",
			"req_id", reqID,
			"url", req.FileURL,
			"chars", len(fileText),
		)
	}

	content := assembleContent(req.Content, fileText)
	if content == "" {
		p.Logger.Warn("processor.no_usable_content", "req_id", reqID)
		return analysis.Result{}, common.ErrNoUsableContent
	}

	result := p.Analyzer.Analyze(ctx, content, category)
	p.Logger.Info("processor.analyze.ok",
		"req_id", reqID,
		"category", category,
		"importance", result.Importance,
	)
	return result, nil
}

// assembleContent merges inline content with fetched file text. When both
// are present each gets a label block so the analyzer sees the source
// split; a single source passes through untouched.
func assembleContent(inline, fileText string) string {
	inline = strings.TrimSpace(inline)
	fileText = strings.TrimSpace(fileText)

	switch {
	case inline != "" && fileText != "":
		return "Document content:\n" + inline + "\n\nExtracted file text:\n" + fileText
	case inline != "":
		return inline
	default:
		return fileText
	}
}
