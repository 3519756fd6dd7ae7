package pipeline

import (
	"context"
	"strings"
)

// FormatOptions toggles the formatter passes.
type FormatOptions struct {
	Headings           bool
	Lists              bool
	CodeBlocks         bool
	Links              bool
	PreserveWhitespace bool
}

// DefaultFormatOptions enables every detection pass and blank-line normalization.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Headings:   true,
		Lists:      true,
		CodeBlocks: true,
		Links:      true,
	}
}

// Format infers Markdown structure in plain text.
// Passes run in a fixed order, each taking the previous pass's lines:
// headings, lists, code blocks, links, then paragraph normalization.
// Empty and whitespace-only text is returned unchanged.
func Format(text string, opts FormatOptions) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	if opts.Headings {
		lines = detectHeadings(lines)
	}
	if opts.Lists {
		lines = detectLists(lines)
	}
	if opts.CodeBlocks {
		lines = detectCodeBlocks(lines)
	}
	if opts.Links {
		lines = formatLinks(lines)
	}
	if !opts.PreserveWhitespace {
		lines = normalizeParagraphs(lines)
	}
	return strings.Join(lines, "\n")
}

// TextFormatter defines the contract for plain-text to Markdown formatting.
type TextFormatter interface {
	FormatText(ctx context.Context, content string) string
}

// HeuristicFormatter formats plain text with the line heuristics of Format.
type HeuristicFormatter struct {
	Options FormatOptions
}

// NewHeuristicFormatter creates a HeuristicFormatter with the given options.
func NewHeuristicFormatter(opts FormatOptions) *HeuristicFormatter {
	return &HeuristicFormatter{Options: opts}
}

// FormatText formats content, returning it unchanged if ctx is already done.
func (f *HeuristicFormatter) FormatText(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return Format(content, f.Options)
}

// DocumentTitle returns the text of the first level-1 heading outside
// fenced code, or "" if there is none.
func DocumentTitle(markdown string) string {
	lines := strings.Split(markdown, "\n")
	fences := newFenceTracker(lines)
	for _, raw := range lines {
		l := classify(raw)
		if fences.fenced(l) {
			continue
		}
		if l.kind == kindHeading && strings.HasPrefix(l.trimmed, "# ") {
			return strings.TrimSpace(l.trimmed[2:])
		}
	}
	return ""
}
