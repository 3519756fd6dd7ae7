package extract

import (
	"context"
	"path/filepath"
)

// pdfExtractor accepts PDF uploads without reading them.
// It produces a placeholder document naming the file.
type pdfExtractor struct{}

// NewPDFExtractor creates the placeholder extractor for PDF files.
func NewPDFExtractor() Extractor {
	return &pdfExtractor{}
}

func (e *pdfExtractor) Extract(ctx context.Context, filename string, content []byte) (Result, error) {
	text := "# PDF Document\n\n" +
		"This PDF file has been uploaded. Content extraction is not yet implemented.\n\n" +
		"File: " + filepath.Base(filename)
	return Result{Text: text, Kind: KindMarkdown}, nil
}

func (e *pdfExtractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

func (e *pdfExtractor) Name() string {
	return "pdf"
}
