package services

import (
	"bytes"
	"testing"
)

func TestSanitizePDFRemovesTrailingGarbage(t *testing.T) {
	pdf := []byte("%PDF-1.4\nsome content\n%%EOF\n")
	garbage := append(append([]byte{}, pdf...), []byte("<html>unexpected trailing data</html>")...)

	cleaned := sanitizePDF(garbage)
	if !bytes.Equal(cleaned, pdf) {
		t.Errorf("expected trailing garbage to be removed, got %d bytes", len(cleaned))
	}
}

func TestSanitizePDFKeepsValidPDF(t *testing.T) {
	pdf := []byte("%PDF-1.4\nsome content\n%%EOF\n")

	cleaned := sanitizePDF(pdf)
	if !bytes.Equal(cleaned, pdf) {
		t.Errorf("valid PDF was modified")
	}
}

func TestSanitizePDFNonPDFUntouched(t *testing.T) {
	data := []byte("not a pdf at all")

	cleaned := sanitizePDF(data)
	if !bytes.Equal(cleaned, data) {
		t.Errorf("non-PDF content was modified")
	}
}

func TestExtractTextRejectsEmptyContent(t *testing.T) {
	extractor := NewPDFExtractor()

	if _, err := extractor.ExtractText(nil); err == nil {
		t.Fatal("expected error for empty content")
	}
	if _, err := extractor.ExtractText([]byte("garbage that is not a pdf")); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}
