package txt2md

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-txt2md/internal/assets"
	"github.com/alnah/go-txt2md/internal/extract"
	"github.com/alnah/go-txt2md/internal/fileutil"
	"github.com/alnah/go-txt2md/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TextFormatter        = (*pipeline.HeuristicFormatter)(nil)
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter turns uploaded files into Markdown.
// Create with NewConverter and call Convert; a Converter holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	extractors    *extract.Registry
	styles        assets.StyleLoader
	formatter     pipeline.TextFormatter
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	now           func() time.Time
}

// NewConverter creates a Converter with default configuration.
// Returns an error if the asset path or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			format:       DefaultOptions(),
			maxInputSize: DefaultMaxInputSize,
		},
		extractors:    extract.NewRegistry(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.styles = resolver
	c.formatter = pipeline.NewHeuristicFormatter(c.cfg.format.formatOptions())

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	return c, nil
}

// Convert extracts the text of input, formats it when it is plain text and
// adds front matter and HTML as configured.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	extracted, err := c.extractors.Extract(ctx, input.Filename, input.Content)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", filepath.Base(input.Filename), err)
	}

	res := &Result{
		Format:          c.extractors.Lookup(filepath.Ext(input.Filename)).Name(),
		AlreadyMarkdown: extracted.Kind == extract.KindMarkdown,
	}

	markdown := extracted.Text
	if extracted.Kind == extract.KindPlainText {
		res.AlreadyMarkdown = pipeline.LooksLikeMarkdown(markdown)
		if !res.AlreadyMarkdown || c.cfg.force {
			markdown = c.formatter.FormatText(ctx, markdown)
			res.Formatted = true
		}
	}
	markdown = extracted.Prefix + markdown
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if input.Metadata != nil {
		markdown, err = prependFrontMatter(input.Metadata, markdown, c.now())
		if err != nil {
			return nil, fmt.Errorf("building front matter: %w", err)
		}
	}
	res.Markdown = markdown

	if !c.cfg.html {
		return res, nil
	}

	body := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, body, documentTitle(input, body), c.cfg.resolvedStyle)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	res.HTML = []byte(htmlContent)
	return res, nil
}

// Styles lists the style names WithStyle accepts.
func (c *Converter) Styles() []string {
	return c.styles.Styles()
}

// SupportedExtensions lists the file extensions Convert accepts.
func (c *Converter) SupportedExtensions() []string {
	return c.extractors.SupportedExtensions()
}

// Detect extracts input and reports whether its text already looks like
// Markdown, without formatting it. Unlike Convert, which trusts Markdown
// extensions, the check runs on the content of every format.
func (c *Converter) Detect(ctx context.Context, input Input) (*Result, error) {
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	extracted, err := c.extractors.Extract(ctx, input.Filename, input.Content)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", filepath.Base(input.Filename), err)
	}

	return &Result{
		Format:          c.extractors.Lookup(filepath.Ext(input.Filename)).Name(),
		AlreadyMarkdown: pipeline.LooksLikeMarkdown(extracted.Text),
	}, nil
}

// Supports reports whether filename has a supported extension.
func (c *Converter) Supports(filename string) bool {
	return c.extractors.Supports(filename)
}

// validateInput is the trust boundary for library users building Input
// by hand; the CLI validates its configuration earlier.
func (c *Converter) validateInput(input Input) error {
	if strings.TrimSpace(input.Filename) == "" {
		return ErrMissingFilename
	}
	if int64(len(input.Content)) > c.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(input.Content), c.cfg.maxInputSize)
	}
	return nil
}

// resolveStyle turns the style input (name, path or CSS) into CSS.
// Without a style input, HTML output uses the default style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		if !c.cfg.html {
			return nil
		}
		input = assets.DefaultStyleName
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.styles.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// documentTitle picks the HTML <title>: the metadata title, the first
// level-1 heading, then the file name without extension.
func documentTitle(input Input, body string) string {
	if input.Metadata != nil {
		if title := strings.TrimSpace(input.Metadata.Title); title != "" {
			return title
		}
	}
	if title := pipeline.DocumentTitle(body); title != "" {
		return title
	}
	return fileutil.ReplaceExt(filepath.Base(input.Filename), "")
}
