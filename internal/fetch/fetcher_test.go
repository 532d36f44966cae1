package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docutrack/analyzer/internal/common"
)

type fakePDF struct {
	text string
	err  error
}

func (f fakePDF) ExtractText([]byte) (string, error) { return f.text, f.err }

type fakeOCR struct {
	text   string
	err    error
	called bool
}

func (f *fakeOCR) ParseImage(context.Context, []byte) (string, error) {
	f.called = true
	return f.text, f.err
}

func fileServer(t *testing.T, contentType string, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write(body)
	}))
}

func TestFetchTextPDFByURLSuffix(t *testing.T) {
	srv := fileServer(t, "application/octet-stream", []byte("%PDF-1.4 fake"))
	defer srv.Close()

	ocr := &fakeOCR{text: "should not be used"}
	f := NewFetcher(common.FetchConfig{}, fakePDF{text: "[Page 1]\nextracted pdf text"}, ocr, nil)

	got := f.FetchText(context.Background(), srv.URL+"/docs/report.pdf")
	assert.Equal(t, "[Page 1]\nextracted pdf text", got)
	// PDF extraction succeeded, so OCR must never have been attempted.
	assert.False(t, ocr.called)
}

func TestFetchTextScannedPDFFallsBackToOCR(t *testing.T) {
	// A scanned PDF has no text layer: extraction succeeds but yields
	// nothing, and OCR must still get a chance at the bytes.
	srv := fileServer(t, "application/pdf", []byte("%PDF-1.4 image-only"))
	defer srv.Close()

	ocr := &fakeOCR{text: "text recovered by OCR"}
	f := NewFetcher(common.FetchConfig{}, fakePDF{text: ""}, ocr, nil)

	got := f.FetchText(context.Background(), srv.URL+"/docs/scan.pdf")
	assert.Equal(t, "text recovered by OCR", got)
	assert.True(t, ocr.called)
}

func TestFetchTextImageGoesToOCR(t *testing.T) {
	srv := fileServer(t, "image/png", []byte{0x89, 'P', 'N', 'G'})
	defer srv.Close()

	ocr := &fakeOCR{text: "scanned text"}
	f := NewFetcher(common.FetchConfig{}, fakePDF{err: errors.New("not a pdf")}, ocr, nil)

	got := f.FetchText(context.Background(), srv.URL+"/scan.png")
	assert.Equal(t, "scanned text", got)
}

func TestFetchTextImageOCRErrorDegrades(t *testing.T) {
	srv := fileServer(t, "image/jpeg", []byte("jpegbytes"))
	defer srv.Close()

	ocr := &fakeOCR{err: errors.New("service reported processing error")}
	f := NewFetcher(common.FetchConfig{}, fakePDF{}, ocr, nil)

	assert.Equal(t, "", f.FetchText(context.Background(), srv.URL+"/scan.jpg"))
}

func TestFetchTextUnknownTriesPDFThenOCR(t *testing.T) {
	srv := fileServer(t, "application/octet-stream", []byte("mystery"))
	defer srv.Close()

	ocr := &fakeOCR{text: "ocr rescued this"}
	f := NewFetcher(common.FetchConfig{}, fakePDF{err: errors.New("open pdf: bad header")}, ocr, nil)

	got := f.FetchText(context.Background(), srv.URL+"/asset/abc123")
	assert.Equal(t, "ocr rescued this", got)
	assert.True(t, ocr.called)
}

func TestFetchTextContentTypeHintWins(t *testing.T) {
	// No extension on the URL; the transport header identifies a PDF.
	srv := fileServer(t, "application/pdf", []byte("%PDF"))
	defer srv.Close()

	f := NewFetcher(common.FetchConfig{}, fakePDF{text: "from header hint"}, &fakeOCR{}, nil)
	assert.Equal(t, "from header hint", f.FetchText(context.Background(), srv.URL+"/asset/abc123"))
}

func TestFetchTextDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(common.FetchConfig{}, fakePDF{text: "never reached"}, &fakeOCR{}, nil)
	assert.Equal(t, "", f.FetchText(context.Background(), srv.URL+"/missing.pdf"))
}

func TestFetchTextUnreachableHost(t *testing.T) {
	f := NewFetcher(common.FetchConfig{}, fakePDF{}, &fakeOCR{}, nil)
	assert.Equal(t, "", f.FetchText(context.Background(), "http://127.0.0.1:1/nope.pdf"))
}

func TestFetchTextEmptyURL(t *testing.T) {
	f := NewFetcher(common.FetchConfig{}, fakePDF{}, &fakeOCR{}, nil)
	assert.Equal(t, "", f.FetchText(context.Background(), ""))
}

func TestPDFExtractorRejectsGarbage(t *testing.T) {
	ex := NewPDFExtractor()

	_, err := ex.ExtractText(nil)
	assert.Error(t, err)

	_, err = ex.ExtractText([]byte("definitely not a pdf"))
	assert.Error(t, err)
}
