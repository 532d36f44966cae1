package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docutrack/analyzer/constants"
	"github.com/docutrack/analyzer/internal/analysis"
	"github.com/docutrack/analyzer/internal/common"
)

type stubFetcher struct {
	text   string
	called bool
}

func (s *stubFetcher) FetchText(context.Context, string) string {
	s.called = true
	return s.text
}

type recordingAnalyzer struct {
	content  string
	category constants.Category
}

func (r *recordingAnalyzer) Analyze(_ context.Context, content string, category constants.Category) analysis.Result {
	r.content = content
	r.category = category
	res := analysis.Result{Summary: "analyzed"}
	res.Normalize(category)
	return res
}

func TestProcessDocumentNoContentNoFile(t *testing.T) {
	p := NewProcessor(nil, &stubFetcher{}, &recordingAnalyzer{})

	_, err := p.ProcessDocument(context.Background(), Request{Content: "", Category: "license"})
	assert.ErrorIs(t, err, common.ErrNoUsableContent)
}

func TestProcessDocumentWhitespaceOnlyIsRejected(t *testing.T) {
	p := NewProcessor(nil, &stubFetcher{}, &recordingAnalyzer{})

	_, err := p.ProcessDocument(context.Background(), Request{Content: "   \n\t "})
	assert.ErrorIs(t, err, common.ErrNoUsableContent)
}

func TestProcessDocumentInlineContentOnly(t *testing.T) {
	analyzer := &recordingAnalyzer{}
	fetcher := &stubFetcher{}
	p := NewProcessor(nil, fetcher, analyzer)

	res, err := p.ProcessDocument(context.Background(), Request{
		Content:  "Plain inline document body.",
		Category: "contract",
	})
	require.NoError(t, err)
	assert.Equal(t, "analyzed", res.Summary)
	// no file reference: the fetcher must not run and the content passes
	// through without label blocks
	assert.False(t, fetcher.called)
	assert.Equal(t, "Plain inline document body.", analyzer.content)
	assert.Equal(t, constants.Contract, analyzer.category)
}

func TestProcessDocumentMergesFileText(t *testing.T) {
	analyzer := &recordingAnalyzer{}
	p := NewProcessor(nil, &stubFetcher{text: "[Page 1]\nfetched text"}, analyzer)

	_, err := p.ProcessDocument(context.Background(), Request{
		Content:  "inline part",
		FileURL:  "https://files.example.com/doc.pdf",
		Category: "license",
	})
	require.NoError(t, err)
	assert.Contains(t, analyzer.content, "Document content:\ninline part")
	assert.Contains(t, analyzer.content, "Extracted file text:\n[Page 1]\nfetched text")
}

func TestProcessDocumentFetchFailureFallsThroughToInline(t *testing.T) {
	analyzer := &recordingAnalyzer{}
	fetcher := &stubFetcher{text: ""} // OCR errored, fetch degraded to empty
	p := NewProcessor(nil, fetcher, analyzer)

	_, err := p.ProcessDocument(context.Background(), Request{
		Content: "remaining inline content",
		FileURL: "https://files.example.com/scan.png",
	})
	require.NoError(t, err)
	assert.True(t, fetcher.called)
	assert.Equal(t, "remaining inline content", analyzer.content)
}

func TestProcessDocumentFetchFailureAndNoInline(t *testing.T) {
	p := NewProcessor(nil, &stubFetcher{text: ""}, &recordingAnalyzer{})

	_, err := p.ProcessDocument(context.Background(), Request{
		FileURL: "https://files.example.com/scan.png",
	})
	assert.ErrorIs(t, err, common.ErrNoUsableContent)
}

func TestProcessDocumentUnknownCategoryBecomesOther(t *testing.T) {
	analyzer := &recordingAnalyzer{}
	p := NewProcessor(nil, nil, analyzer)

	_, err := p.ProcessDocument(context.Background(), Request{
		Content:  "some document text",
		Category: "spaceship",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.Other, analyzer.category)
}
