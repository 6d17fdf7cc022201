package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeMinimalPDF emits a one-page PDF with a single text run, computing the
// xref table offsets as the objects are laid down.
func writeMinimalPDF(t *testing.T, path, text string) {
	t.Helper()
	var b bytes.Buffer
	offsets := make([]int, 6)
	b.WriteString("%PDF-1.4\n")
	add := func(n int, body string) {
		offsets[n] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", n, body)
	}
	add(1, "<< /Type /Catalog /Pages 2 0 R >>")
	add(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	add(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>")
	add(4, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	add(5, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))

	xrefOff := b.Len()
	b.WriteString("xref\n0 6\n")
	b.WriteString("0000000000 65535 f \n")
	for n := 1; n <= 5; n++ {
		fmt.Fprintf(&b, "%010d %05d n \n", offsets[n], 0)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOff)

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write pdf fixture: %v", err)
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.pdf")
	writeMinimalPDF(t, path, "Hello PDF")

	got, err := NewPDFExtractor().ExtractFile(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got, "Hello") || !strings.Contains(got, "PDF") {
		t.Fatalf("extracted text missing content: %q", got)
	}
}

func TestExtractFileNotPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := NewPDFExtractor().ExtractFile(path); err == nil {
		t.Fatalf("expected error for non-pdf input")
	}
}

func TestExtractFileMissing(t *testing.T) {
	if _, err := NewPDFExtractor().ExtractFile(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
