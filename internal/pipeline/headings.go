package pipeline

import (
	"regexp"
	"strings"
)

// Heading heuristics.
var (
	underlineLevel1 = regexp.MustCompile(`^={3,}$`)
	underlineLevel2 = regexp.MustCompile(`^-{3,}$`)
	allCapsLine     = regexp.MustCompile(`^[A-Z\s\d]+$`)
	colonLabel      = regexp.MustCompile(`^[A-Z][^.!?]*:$`)
	numberedLead    = regexp.MustCompile(`^\d+[.)\s]`)
	bulletLead      = regexp.MustCompile(`^[-*•]\s`)
	sentenceEnd     = regexp.MustCompile(`[.!?]$`)
)

// Length bounds for heading candidates, in characters.
const (
	maxColonLabelLen    = 60
	minImplicitTitleLen = 5
	maxImplicitTitleLen = 100
)

// headingState is the per-call state of the heading pass.
type headingState struct {
	foundFirstHeading bool
	firstNonEmptyLine bool
}

// detectHeadings promotes title-like lines to ATX headings.
// Rules are tried in order: existing heading, underline, ALL CAPS,
// colon label, then the implicit title on the first non-blank line.
func detectHeadings(lines []string) []string {
	result := make([]string, 0, len(lines))
	state := headingState{firstNonEmptyLine: true}
	fences := newFenceTracker(lines)

	for i := 0; i < len(lines); i++ {
		l := classify(lines[i])

		if l.kind == kindBlank {
			result = append(result, l.raw)
			continue
		}

		first := state.firstNonEmptyLine
		state.firstNonEmptyLine = false

		if fences.fenced(l) {
			result = append(result, l.raw)
			continue
		}

		if l.kind == kindHeading {
			if l.length() > 2 {
				state.foundFirstHeading = true
			}
			result = append(result, l.raw)
			continue
		}

		if i+1 < len(lines) {
			if level := underlineLevel(lines[i+1]); level > 0 {
				if !state.foundFirstHeading {
					level = 1
				}
				result = append(result, heading(level, l.trimmed))
				state.foundFirstHeading = true
				i++ // consume the underline
				continue
			}
		}

		if isAllCaps(l.trimmed) {
			level := 2
			if !state.foundFirstHeading {
				level = 1
			}
			result = append(result, heading(level, l.trimmed))
			state.foundFirstHeading = true
			continue
		}

		if colonLabel.MatchString(l.trimmed) && l.length() < maxColonLabelLen {
			result = append(result, heading(3, strings.TrimSuffix(l.trimmed, ":")))
			continue
		}

		if first && isImplicitTitle(l) {
			result = append(result, heading(1, l.trimmed))
			state.foundFirstHeading = true
			continue
		}

		result = append(result, l.raw)
	}

	return result
}

// underlineLevel returns 1 for a === underline, 2 for ---, and 0 otherwise.
func underlineLevel(next string) int {
	trimmed := strings.TrimSpace(next)
	switch {
	case underlineLevel1.MatchString(trimmed):
		return 1
	case underlineLevel2.MatchString(trimmed):
		return 2
	default:
		return 0
	}
}

// isAllCaps reports whether s is at least two upper-case words made of
// letters, digits and spaces only.
func isAllCaps(s string) bool {
	return s == strings.ToUpper(s) &&
		len(strings.Fields(s)) >= 2 &&
		allCapsLine.MatchString(s)
}

// isImplicitTitle reports whether a first line reads like a document title.
func isImplicitTitle(l line) bool {
	n := l.length()
	return !numberedLead.MatchString(l.trimmed) &&
		!bulletLead.MatchString(l.trimmed) &&
		n > minImplicitTitleLen && n < maxImplicitTitleLen &&
		!sentenceEnd.MatchString(l.trimmed)
}

func heading(level int, text string) string {
	return strings.Repeat("#", level) + " " + text
}
