package pipeline

import "strings"

// Markdown likelihood thresholds, in qualifying lines.
const (
	markdownEarlyExit = 3
	markdownMinLines  = 2
)

// LooksLikeMarkdown reports whether text already carries enough Markdown
// structure to skip formatting. A line qualifies when it is a heading,
// list item or fence, or contains an inline link. The scan stops once
// markdownEarlyExit lines qualify; otherwise markdownMinLines suffice.
func LooksLikeMarkdown(text string) bool {
	count := 0
	for _, raw := range strings.Split(text, "\n") {
		if isMarkdownLine(classify(raw)) {
			count++
		}
		if count >= markdownEarlyExit {
			return true
		}
	}
	return count >= markdownMinLines
}

func isMarkdownLine(l line) bool {
	switch l.kind {
	case kindHeading, kindBullet, kindNumbered, kindFence:
		return true
	case kindText:
		return inlineLink.MatchString(l.trimmed)
	default:
		return false
	}
}
