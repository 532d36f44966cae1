// Package llm holds the AI-assisted analysis path: a provider-agnostic
// completion backend contract, prompt construction, tolerant parsing of the
// backend's semi-structured output, and the analyzer that folds it all into
// the canonical result shape with the extractive analyzer as its safety net.
package llm

import "context"

// CompletionRequest is the single request shape every backend accepts: one
// system instruction, one user prompt, bounded output, fixed sampling
// temperature.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// CompletionBackend is the black-box text-completion capability. Any
// provider exposing a chat-style call with bounded output is substitutable;
// provider specifics live in adapters, never in the pipeline.
type CompletionBackend interface {
	// Name identifies the backend in logs.
	Name() string
	// Complete returns the raw completion text for the request.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
