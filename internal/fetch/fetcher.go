package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/docutrack/analyzer/constants"
	"github.com/docutrack/analyzer/internal/common"
)

// Fetcher turns a remote file reference into raw text. It downloads with a
// bounded timeout, classifies the payload from URL suffix and transport
// metadata, and dispatches to PDF extraction or remote OCR, falling back
// between the two when the classification is ambiguous.
type Fetcher struct {
	cfg    common.FetchConfig
	client *http.Client
	pdf    PDFExtractor
	ocr    ImageOCR
	log    *slog.Logger
}

func NewFetcher(cfg common.FetchConfig, pdf PDFExtractor, ocr ImageOCR, logger *slog.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 25 * 1024 * 1024
	}
	if pdf == nil {
		pdf = NewPDFExtractor()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		pdf:    pdf,
		ocr:    ocr,
		log:    logger,
	}
}

// FetchText downloads the reference and extracts whatever text it can.
// Every stage degrades to an empty string: a failed download, an
// unextractable PDF, or an OCR error all yield "" and a log line, never an
// error. Absent text is a valid, silent outcome the caller must tolerate.
func (f *Fetcher) FetchText(ctx context.Context, fileURL string) string {
	if fileURL == "" {
		return ""
	}

	data, contentType, err := f.download(ctx, fileURL)
	if err != nil {
		f.log.Warn("fetch.download.failed", "url", fileURL, "error", err)
		return ""
	}

	urlType := classifyPath(fileURL)
	ctType := constants.ClassifyContentType(contentType)
	f.log.Info("fetch.download.ok",
		"url", fileURL,
		"bytes", len(data),
		"content_type", contentType,
		"url_type", urlType,
	)

	// PDF path: either hint suffices, and non-empty text wins outright.
	// Scanned PDFs without a text layer extract to nothing; those fall
	// through to OCR.
	if urlType == constants.PDF || ctType == constants.PDF {
		if text := f.extractPDF(data); text != "" {
			return text
		}
		return f.runOCR(ctx, data)
	}

	// Image path: OCR is terminal for classified images.
	if urlType == constants.Image || ctType == constants.Image {
		return f.runOCR(ctx, data)
	}

	// No hint at all (common for CDN URLs without extensions):
	// try PDF first, then OCR.
	if text := f.extractPDF(data); text != "" {
		return text
	}
	return f.runOCR(ctx, data)
}

func (f *Fetcher) download(ctx context.Context, fileURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Warn("fetch.response_body_close_error", "error", cerr)
		}
	}()

	if resp.StatusCode/100 != 2 {
		return nil, "", common.NewAppError("FETCH_STATUS", resp.Status, nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBytes))
	if err != nil {
		return nil, "", common.WrapError(err, "read body")
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (f *Fetcher) extractPDF(data []byte) string {
	text, err := f.pdf.ExtractText(data)
	if err != nil {
		f.log.Warn("fetch.pdf.failed", "error", err)
		return ""
	}
	if text != "" {
		f.log.Info("fetch.pdf.ok", "chars", len(text))
	}
	return text
}

func (f *Fetcher) runOCR(ctx context.Context, data []byte) string {
	if f.ocr == nil {
		f.log.Warn("fetch.ocr.unconfigured")
		return ""
	}
	text, err := f.ocr.ParseImage(ctx, data)
	if err != nil {
		f.log.Warn("fetch.ocr.failed", "error", err)
		return ""
	}
	return text
}

// classifyPath inspects only the URL path so query strings cannot spoof the
// suffix check.
func classifyPath(fileURL string) constants.FileFormat {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return constants.ClassifyURL(fileURL)
	}
	return constants.ClassifyURL(parsed.Path)
}
