package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lineKind tags a line with the Markdown construct it already carries.
type lineKind int

const (
	kindBlank lineKind = iota
	kindHeading
	kindBullet
	kindNumbered
	kindFence
	kindText
)

// String returns the kind name, used in test failure messages.
func (k lineKind) String() string {
	switch k {
	case kindBlank:
		return "blank"
	case kindHeading:
		return "heading"
	case kindBullet:
		return "bullet"
	case kindNumbered:
		return "numbered"
	case kindFence:
		return "fence"
	default:
		return "text"
	}
}

// Precompiled regex patterns for performance.
var (
	// Canonical Markdown constructs (matched against the trimmed line)
	atxHeading      = regexp.MustCompile(`^#{1,6}\s`)
	markdownBullet  = regexp.MustCompile(`^[-*+]\s`)
	markdownOrdered = regexp.MustCompile(`^\d+\.\s`)
	inlineLink      = regexp.MustCompile(`\[.+\]\(.+\)`)
)

// fenceMarker opens or closes a fenced code block.
const fenceMarker = "```"

// line is one input line together with its trimmed form and kind.
type line struct {
	raw     string
	trimmed string
	kind    lineKind
}

// classify tags raw with the first matching kind.
// Fences win over the other constructs so "```" is never mistaken for text.
func classify(raw string) line {
	l := line{raw: raw, trimmed: strings.TrimSpace(raw)}
	switch {
	case l.trimmed == "":
		l.kind = kindBlank
	case strings.HasPrefix(l.trimmed, fenceMarker):
		l.kind = kindFence
	case atxHeading.MatchString(l.trimmed):
		l.kind = kindHeading
	case markdownBullet.MatchString(l.trimmed):
		l.kind = kindBullet
	case markdownOrdered.MatchString(l.trimmed):
		l.kind = kindNumbered
	default:
		l.kind = kindText
	}
	return l
}

// isMarkdownSyntax reports whether the line already is a heading or list item.
func (l line) isMarkdownSyntax() bool {
	return l.kind == kindHeading || l.kind == kindBullet || l.kind == kindNumbered
}

// length is the trimmed length in characters.
func (l line) length() int {
	return utf8.RuneCountInString(l.trimmed)
}

// leadingWhitespace returns the run of whitespace that starts s.
func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// fenceTracker follows existing ``` fences so passes leave their content
// alone. A fence line only opens a block when a later fence closes it; an
// unmatched opener is ordinary text, so it cannot hide the rest of the
// document from the passes.
type fenceTracker struct {
	open  bool
	ahead int // fence lines not yet seen
}

// newFenceTracker creates a tracker for one pass over lines.
func newFenceTracker(lines []string) fenceTracker {
	var f fenceTracker
	for _, raw := range lines {
		if classify(raw).kind == kindFence {
			f.ahead++
		}
	}
	return f
}

// fenced reports whether l is a fence line or lies inside a fence,
// updating the open state when l is a fence. Lines must be fed in the
// order given to newFenceTracker.
func (f *fenceTracker) fenced(l line) bool {
	if l.kind != kindFence {
		return f.open
	}
	f.ahead--
	switch {
	case f.open:
		f.open = false
		return true
	case f.ahead > 0:
		f.open = true
		return true
	default:
		return false
	}
}
