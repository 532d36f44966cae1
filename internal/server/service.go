// Package server exposes the document analysis pipeline over JSON HTTP.
// The surface is intentionally thin: request decoding, the single 400 case,
// and response encoding. Everything interesting happens in the processor.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/docutrack/analyzer/internal/analysis"
	"github.com/docutrack/analyzer/internal/common"
	"github.com/docutrack/analyzer/internal/processor"
	"github.com/docutrack/analyzer/internal/textproc"
)

const serviceName = "document-analyzer"
const serviceVersion = "1.0.0"

// maxContentChars bounds inline request content; the LLM prompt truncates
// far below this, so anything bigger is abuse rather than a document.
const maxContentChars = 100_000

// Service wires the HTTP routes to the processing pipeline. The extractive
// analyzer is held directly for the two analysis-only endpoints that bypass
// document fetching.
type Service struct {
	log        *slog.Logger
	processor  *processor.Processor
	extractive *analysis.Analyzer
	cfg        common.ServerConfig
}

func NewService(logger *slog.Logger, p *processor.Processor, extractive *analysis.Analyzer, cfg common.ServerConfig) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{log: logger, processor: p, extractive: extractive, cfg: cfg}
}

// Router builds the chi router with the standard middleware stack.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/summarize", s.handleSummarize)
		r.Post("/extract-key-points", s.handleExtractKeyPoints)
		r.Post("/analyze-text", s.handleAnalyzeText)
	})
	return r
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"service": serviceName,
		"version": serviceVersion,
	})
}

type summarizeRequest struct {
	Content  string `json:"content"`
	FileURL  string `json:"file_url"`
	Category string `json:"category"`
}

func (s *Service) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// content is optional here (file_url may carry the document), but a
	// present value is still bounded
	if v := common.NewValidator().Field("content", req.Content, common.MaxLength(maxContentChars)); v.HasErrors() {
		writeError(w, http.StatusBadRequest, v.ErrorMessage())
		return
	}

	ctx := common.WithRequestID(r.Context(), chimiddleware.GetReqID(r.Context()))
	result, err := s.processor.ProcessDocument(ctx, processor.Request{
		Content:  req.Content,
		FileURL:  req.FileURL,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, common.ErrNoUsableContent) {
			writeError(w, http.StatusBadRequest, "document content is required")
			return
		}
		s.log.Error("server.summarize.error", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type extractKeyPointsRequest struct {
	Content   string `json:"content"`
	NumPoints int    `json:"num_points"`
}

func (s *Service) handleExtractKeyPoints(w http.ResponseWriter, r *http.Request) {
	var req extractKeyPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if v := common.NewValidator().Field("content", req.Content, common.Required, common.MaxLength(maxContentChars)); v.HasErrors() {
		writeError(w, http.StatusBadRequest, v.ErrorMessage())
		return
	}

	n := req.NumPoints
	if n <= 0 || n > analysis.MaxKeyPoints {
		n = analysis.MaxKeyPoints
	}

	text := textproc.Normalize(req.Content)
	sentences := textproc.Segment(text, textproc.DefaultMinWords)
	if n > len(sentences) {
		n = len(sentences)
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"key_points": sentences[:n],
	})
}

type analyzeTextRequest struct {
	Content string `json:"content"`
}

func (s *Service) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if v := common.NewValidator().Field("content", req.Content, common.Required, common.MaxLength(maxContentChars)); v.HasErrors() {
		writeError(w, http.StatusBadRequest, v.ErrorMessage())
		return
	}

	text := textproc.Normalize(req.Content)
	writeJSON(w, http.StatusOK, map[string]any{
		"readability_score": analysis.Readability(text),
		"importance":        s.extractive.Importance(text),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
