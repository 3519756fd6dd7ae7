package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// codeKeyword matches lines that open with a common statement keyword.
var codeKeyword = regexp.MustCompile(`^(function|const|let|var|class|def|public|private|if|for|while)\s`)

// minCodeIndent is the indentation, in characters, that marks a line as code.
const minCodeIndent = 4

// codeBlock buffers an inferred code region until it is closed.
type codeBlock struct {
	open   bool
	indent int
	lines  []string
}

// add buffers raw, stripping the block indent (or less, if raw is shallower).
func (b *codeBlock) add(raw string, indent int) {
	if !b.open {
		b.open = true
		b.indent = indent
	}
	b.lines = append(b.lines, dropRunes(raw, min(b.indent, indent)))
}

// flush appends the fenced block to result and resets the buffer.
func (b *codeBlock) flush(result []string) []string {
	if !b.open {
		return result
	}
	result = append(result, fenceMarker)
	result = append(result, b.lines...)
	result = append(result, fenceMarker)
	*b = codeBlock{}
	return result
}

// detectCodeBlocks wraps runs of indented or keyword-led lines in ``` fences.
// Any other line, blank lines included, closes the current run.
func detectCodeBlocks(lines []string) []string {
	result := make([]string, 0, len(lines))
	var block codeBlock
	fences := newFenceTracker(lines)

	for _, raw := range lines {
		l := classify(raw)

		if fences.fenced(l) {
			result = block.flush(result)
			result = append(result, raw)
			continue
		}

		indent := leadingWhitespace(raw)
		if looksLikeCode(l, indent) {
			block.add(raw, utf8.RuneCountInString(indent))
			continue
		}

		result = block.flush(result)
		result = append(result, raw)
	}

	return block.flush(result)
}

// looksLikeCode reports whether a non-blank line that is not already a
// heading or list item is indented or starts with a code keyword.
func looksLikeCode(l line, indent string) bool {
	if l.kind == kindBlank || l.isMarkdownSyntax() {
		return false
	}
	indented := utf8.RuneCountInString(indent) >= minCodeIndent || strings.Contains(indent, "\t")
	return indented || codeKeyword.MatchString(l.trimmed)
}
