package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docutrack/analyzer/constants"
	"github.com/docutrack/analyzer/internal/analysis"
	"github.com/docutrack/analyzer/internal/common"
)

type mockBackend struct {
	response string
	err      error
	calls    int
	lastReq  CompletionRequest
}

func (m *mockBackend) Name() string { return "mock" }

func (m *mockBackend) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

const docText = "This license expires December 2025. It must be renewed within 30 days of expiry. The fee is $50."

func newTestAnalyzer(backend CompletionBackend) *Analyzer {
	extractive := analysis.NewAnalyzer(analysis.Config{}, nil)
	return NewAnalyzer(backend, extractive, common.LLMConfig{MaxTokens: 256, Temperature: 0.2}, nil)
}

func TestAnalyzeNoBackendFallsBack(t *testing.T) {
	a := newTestAnalyzer(nil)
	got := a.Analyze(context.Background(), docText, constants.License)

	want := analysis.NewAnalyzer(analysis.Config{}, nil).Analyze(docText, constants.License)
	assert.Equal(t, want, got)
}

func TestAnalyzeEmptyContentSkipsBackend(t *testing.T) {
	backend := &mockBackend{response: "should not be called"}
	a := newTestAnalyzer(backend)

	got := a.Analyze(context.Background(), "   ", constants.Other)
	assert.Equal(t, 0, backend.calls)
	assert.NotEmpty(t, got.Summary)
}

func TestAnalyzeBackendErrorFallsBack(t *testing.T) {
	backend := &mockBackend{err: errors.New("connection refused")}
	a := newTestAnalyzer(backend)

	got := a.Analyze(context.Background(), docText, constants.License)
	assert.Equal(t, 1, backend.calls)
	// extractive result, not an error
	assert.Equal(t, constants.ImportanceHigh, got.Importance)
	assert.Equal(t, analysis.ActionsFor(constants.License), got.SuggestedActions)
}

func TestAnalyzeUnparsableResponseFallsBack(t *testing.T) {
	backend := &mockBackend{response: "I am unable to help with that."}
	a := newTestAnalyzer(backend)

	got := a.Analyze(context.Background(), docText, constants.License)
	want := analysis.NewAnalyzer(analysis.Config{}, nil).Analyze(docText, constants.License)
	assert.Equal(t, want, got)
}

func TestAnalyzeWellFormedJSONResponse(t *testing.T) {
	backend := &mockBackend{response: `{
		"summary": "License expiring at end of 2025; renew within 30 days.",
		"key_points": ["Expiry December 2025", "30-day renewal window", "Fee of 50 dollars"],
		"suggested_actions": ["Book renewal appointment"],
		"importance": "HIGH",
		"readability_score": 41
	}`}
	a := newTestAnalyzer(backend)

	got := a.Analyze(context.Background(), docText, constants.License)
	assert.Equal(t, "License expiring at end of 2025; renew within 30 days.", got.Summary)
	assert.Len(t, got.KeyPoints, 3)
	assert.Equal(t, []string{"Book renewal appointment"}, got.SuggestedActions)
	assert.Equal(t, constants.ImportanceHigh, got.Importance)
	assert.Equal(t, 41.0, got.ReadabilityScore)
}

func TestAnalyzePartialJSONGetsPerFieldDefaults(t *testing.T) {
	// Only a summary comes back: that summary is kept, everything else is
	// default-filled rather than falling back to the extractive result.
	backend := &mockBackend{response: `Here you go: {"summary": "Only a summary came back."}`}
	a := newTestAnalyzer(backend)

	got := a.Analyze(context.Background(), docText, constants.License)
	assert.Equal(t, "Only a summary came back.", got.Summary)
	assert.Equal(t, analysis.DefaultKeyPoints(constants.License), got.KeyPoints)
	assert.Equal(t, analysis.ActionsFor(constants.License), got.SuggestedActions)
	assert.Equal(t, constants.ImportanceMedium, got.Importance)
	assert.Equal(t, float64(DefaultReadability), got.ReadabilityScore)
}

func TestAnalyzeClampsAndTruncates(t *testing.T) {
	backend := &mockBackend{response: `{
		"summary": "ok summary",
		"key_points": ["1", "2", "3", "4", "5", "6", "7"],
		"suggested_actions": ["a", "b", "c", "d"],
		"importance": "catastrophic",
		"readability_score": 250
	}`}
	a := newTestAnalyzer(backend)

	got := a.Analyze(context.Background(), docText, constants.Other)
	assert.Len(t, got.KeyPoints, 5)
	assert.Len(t, got.SuggestedActions, 3)
	assert.Equal(t, constants.ImportanceMedium, got.Importance)
	assert.Equal(t, 100.0, got.ReadabilityScore)
}

func TestAnalyzeSendsBoundedPrompt(t *testing.T) {
	backend := &mockBackend{response: `{"summary": "fine"}`}
	extractive := analysis.NewAnalyzer(analysis.Config{}, nil)
	a := NewAnalyzer(backend, extractive, common.LLMConfig{PromptWindow: 50, MaxTokens: 128}, nil)

	long := docText + " " + docText + " " + docText
	a.Analyze(context.Background(), long, constants.License)

	require.Equal(t, 1, backend.calls)
	assert.Contains(t, backend.lastReq.User, "…(truncated)")
	assert.Equal(t, 128, backend.lastReq.MaxTokens)
	assert.NotEmpty(t, backend.lastReq.System)
}
