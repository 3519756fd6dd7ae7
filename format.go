package txt2md

import "github.com/alnah/go-txt2md/internal/pipeline"

// FormatToMarkdown infers Markdown structure in plain text.
// Empty and whitespace-only text is returned unchanged.
// Lines are split on "\n" only; callers normalize line endings first.
func FormatToMarkdown(text string, opts Options) string {
	return pipeline.Format(text, opts.formatOptions())
}

// QuickFormat formats text with DefaultOptions.
func QuickFormat(text string) string {
	return FormatToMarkdown(text, DefaultOptions())
}

// IsAlreadyMarkdown reports whether text already uses Markdown syntax:
// at least two lines that are headings, list items, code fences or that
// contain an inline link.
func IsAlreadyMarkdown(text string) bool {
	return pipeline.LooksLikeMarkdown(text)
}
