package fetch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfExtractor implements PDFExtractor with ledongthuc/pdf (pure Go).
type pdfExtractor struct{}

// NewPDFExtractor returns the default PDF text extractor. Pages are joined
// with a "[Page N]" marker and a blank-line separator; unreadable pages are
// skipped rather than failing the document.
func NewPDFExtractor() PDFExtractor {
	return pdfExtractor{}
}

func (pdfExtractor) ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty pdf content")
	}

	// The reader panics on some malformed files; the fetcher contract is
	// that extraction degrades instead of crashing the request.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf extraction panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("[Page %d]\n%s", i, pageText))
	}

	return strings.Join(parts, "\n\n"), nil
}
