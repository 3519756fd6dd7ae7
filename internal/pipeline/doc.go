// Package pipeline implements the plain-text to Markdown formatter and the
// optional Markdown to HTML rendering stage.
//
// The formatter is a sequence of line passes, each turning a slice of lines
// into a new slice:
//   - headings: underline, ALL CAPS, colon label and implicit title rules
//   - lists: bullet glyphs and enumerators to canonical list items
//   - code blocks: indented or keyword-led runs wrapped in fences
//   - links: bare URLs wrapped as Markdown links
//   - paragraphs: blank-line collapsing and trimming
//
// Every line is classified once (blank, heading, bullet, numbered, fence,
// text) and passes dispatch on that kind. Lines inside existing fences are
// left alone. Pass state is local to each call, so the formatter is safe for
// concurrent use.
//
// Rendering uses goldmark with GFM extensions and chroma highlighting and
// wraps the result in a standalone page carrying the chosen stylesheet.
package pipeline
