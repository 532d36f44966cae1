// Package fetch acquires raw text from remote document references. It
// downloads bytes, classifies the payload (PDF, image, unknown), and runs
// the matching extraction path with fallback between them. Every failure
// degrades to an empty string; the fetcher never surfaces an error to its
// caller.
package fetch

import "context"

// PDFExtractor extracts plain text from raw PDF bytes.
type PDFExtractor interface {
	ExtractText(data []byte) (string, error)
}

// ImageOCR extracts plain text from raw image bytes via a remote OCR
// capability.
type ImageOCR interface {
	ParseImage(ctx context.Context, data []byte) (string, error)
}
