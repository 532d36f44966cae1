package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/docutrack/analyzer/internal/common"
)

// OCRClient calls an OCR.space-shaped parse endpoint: multipart upload of
// the image bytes plus api key and language form fields, JSON response with
// per-image parsed text.
type OCRClient struct {
	cfg    common.OCRConfig
	client *http.Client
	log    *slog.Logger
}

func NewOCRClient(cfg common.OCRConfig, logger *slog.Logger) *OCRClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.ocr.space/parse/image"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger,
	}
}

// ocrResponse mirrors the service's reply. ErrorMessage is RawMessage
// because the service emits either a string or an array of strings there.
type ocrResponse struct {
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage,omitempty"`
	ParsedResults         []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
}

// ParseImage uploads image bytes and returns the first parsed text. Any
// transport error, non-2xx status, reported processing error, or empty
// result set is an error; callers degrade it to an empty string.
func (c *OCRClient) ParseImage(ctx context.Context, data []byte) (string, error) {
	start := time.Now()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "image.png")
	if err != nil {
		return "", fmt.Errorf("ocr: build form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("ocr: write image bytes: %w", err)
	}
	if err := mw.WriteField("apikey", c.cfg.APIKey); err != nil {
		return "", fmt.Errorf("ocr: write apikey field: %w", err)
	}
	if err := mw.WriteField("language", c.cfg.Language); err != nil {
		return "", fmt.Errorf("ocr: write language field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("ocr: finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("ocr: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr: send request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("ocr.response_body_close_error", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ocr: read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("ocr: non-2xx status: %d", resp.StatusCode)
	}

	var parsed ocrResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("ocr: decode response: %w", err)
	}
	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr: service reported processing error: %s", string(parsed.ErrorMessage))
	}
	if len(parsed.ParsedResults) == 0 {
		return "", fmt.Errorf("ocr: no parsed results")
	}

	text := parsed.ParsedResults[0].ParsedText
	c.log.Info("ocr.parse.ok",
		"bytes_in", len(data),
		"chars_out", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
