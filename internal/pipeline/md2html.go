package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// defaultDocumentTitle is used when the Markdown has no level-1 heading.
const defaultDocumentTitle = "Document"

// HTMLConverter renders formatted Markdown as a standalone page.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content, title, css string) (string, error)
}

// GoldmarkConverter renders Markdown with goldmark. The goldmark instance
// is immutable after construction and shared by concurrent calls.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter configures GFM, footnotes and chroma highlighting.
// Fenced code gets CSS classes, which the embedded stylesheets color.
// Raw HTML is omitted from the output.
func NewGoldmarkConverter() *GoldmarkConverter {
	return &GoldmarkConverter{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// Hard wraps keep the line structure of the original text.
		goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML()),
	)}
}

// ToHTML renders content inside an HTML5 page titled title, or "Document"
// when title is empty. A non-empty css is embedded in a <style> element.
// Rendering is synchronous and bounded by the input size limit, so the
// context is checked before and after it.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content, title, css string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := c.md.Convert([]byte(content), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return page(title, css, body.String()), nil
}

// page wraps a rendered fragment in a document. The body sits in an
// article.markdown-body so stylesheets can scope their rules.
func page(title, css, body string) string {
	if title == "" {
		title = defaultDocumentTitle
	}

	var b strings.Builder
	b.Grow(len(body) + len(css) + 256)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(sanitizeCSS(css))
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n<article class=\"markdown-body\">\n")
	b.WriteString(body)
	b.WriteString("</article>\n</body>\n</html>")
	return b.String()
}

// sanitizeCSS escapes "</" so a stylesheet cannot close its element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
