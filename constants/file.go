package constants

import "strings"

// FileFormat classifies the payload fetched from a remote reference.
type FileFormat string

const (
	PDF     FileFormat = "PDF"
	Image   FileFormat = "IMAGE"
	Unknown FileFormat = "UNKNOWN"
)

// imageExtensions are URL path suffixes treated as images.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

// ClassifyURL infers the file format from a URL path suffix.
func ClassifyURL(path string) FileFormat {
	p := strings.ToLower(path)
	if strings.Contains(p, ".pdf") {
		return PDF
	}
	for _, ext := range imageExtensions {
		if strings.Contains(p, ext) {
			return Image
		}
	}
	return Unknown
}

// ClassifyContentType infers the file format from a transport
// Content-Type header value.
func ClassifyContentType(contentType string) FileFormat {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "pdf"):
		return PDF
	case strings.Contains(ct, "image"):
		return Image
	default:
		return Unknown
	}
}
