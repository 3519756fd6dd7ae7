package txt2md

import "github.com/alnah/go-txt2md/internal/pipeline"

// DefaultMaxInputSize is the largest file Convert accepts by default (10 MiB).
const DefaultMaxInputSize int64 = 10 << 20

// Options toggles the formatting passes.
type Options struct {
	DetectHeadings     bool
	DetectLists        bool
	DetectCodeBlocks   bool
	DetectLinks        bool
	PreserveWhitespace bool // keep blank-line runs and leading/trailing blank lines
}

// DefaultOptions enables every detection pass and blank-line normalization.
func DefaultOptions() Options {
	return Options{
		DetectHeadings:   true,
		DetectLists:      true,
		DetectCodeBlocks: true,
		DetectLinks:      true,
	}
}

func (o Options) formatOptions() pipeline.FormatOptions {
	return pipeline.FormatOptions{
		Headings:           o.DetectHeadings,
		Lists:              o.DetectLists,
		CodeBlocks:         o.DetectCodeBlocks,
		Links:              o.DetectLinks,
		PreserveWhitespace: o.PreserveWhitespace,
	}
}

// Input is one file to convert.
type Input struct {
	Filename string    // selects the extractor by extension (required)
	Content  []byte    // raw file bytes
	Metadata *Metadata // front matter (optional, nil = none)
}

// Result is the outcome of a conversion.
type Result struct {
	Markdown        string
	HTML            []byte // nil unless HTML output is enabled
	Format          string // extractor that read the file: text, markdown, document, html, pdf
	Formatted       bool   // the formatter ran on the extracted text
	AlreadyMarkdown bool   // the extracted text was Markdown already
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings applied by options.
type converterConfig struct {
	format        Options
	force         bool
	maxInputSize  int64
	html          bool
	styleInput    string
	resolvedStyle string
	assetPath     string
}

// WithFormatOptions sets the formatting passes.
func WithFormatOptions(opts Options) Option {
	return func(c *Converter) {
		c.cfg.format = opts
	}
}

// WithForceFormat formats plain text even when it already looks like Markdown.
func WithForceFormat(force bool) Option {
	return func(c *Converter) {
		c.cfg.force = force
	}
}

// WithMaxInputSize sets the largest accepted file in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int64) Option {
	if n <= 0 {
		panic("txt2md: WithMaxInputSize size must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}

// WithHTML enables the HTML page in Result.HTML.
func WithHTML(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.html = enabled
	}
}

// WithStyle sets the CSS of the HTML page: a style name ("github"),
// a path to a .css file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath adds a directory of *.css styles that override and extend
// the built-in ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}
