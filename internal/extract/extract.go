package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor converts a PDF on disk into its embedded plain text.
type Extractor interface {
	ExtractFile(path string) (string, error)
}

// PDFExtractor extracts text with ledongthuc/pdf. It is stateless and safe
// for concurrent use.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractFile reads all plain text from the PDF at path. The returned text is
// trimmed; a scanned image-only PDF yields an empty string and no error.
func (e *PDFExtractor) ExtractFile(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", fmt.Errorf("read text buffer: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
