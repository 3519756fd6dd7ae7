package extract

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
)

// htmlExtractor converts HTML pages to Markdown.
// The page is sanitized first so scripts and event handlers never reach
// the converter. Safe for concurrent use.
type htmlExtractor struct {
	policy    *bluemonday.Policy
	converter *md.Converter
}

// NewHTMLExtractor creates the extractor for HTML files.
func NewHTMLExtractor() Extractor {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataURIImages()

	return &htmlExtractor{
		policy:    policy,
		converter: md.NewConverter("", true, nil),
	}
}

func (e *htmlExtractor) Extract(ctx context.Context, filename string, content []byte) (Result, error) {
	page, err := DecodeText(content)
	if err != nil {
		return Result{}, err
	}

	sanitized := e.policy.Sanitize(page)

	markdown, err := e.converter.ConvertString(sanitized)
	if err != nil {
		return Result{}, fmt.Errorf("%w: converting HTML: %v", ErrCorruptDocument, err)
	}
	return Result{Text: strings.TrimSpace(markdown), Kind: KindMarkdown}, nil
}

func (e *htmlExtractor) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

func (e *htmlExtractor) Name() string {
	return "html"
}
