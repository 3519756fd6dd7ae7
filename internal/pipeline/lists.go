package pipeline

import "regexp"

// List heuristics (matched against the trimmed line).
var (
	bulletGlyph = regexp.MustCompile(`^[•○●◦▪▫■□]\s+(.+)$`)
	enumerator  = regexp.MustCompile(`(?i)^\(?([a-z0-9]+)[.)]\s+(.+)$`)
)

// minEnumeratedLen keeps short clauses such as "a) x" from becoming list items.
const minEnumeratedLen = 3

// detectLists rewrites bullet glyphs to "- " and enumerators such as
// "1)", "(a)" or "b." to "1. ", keeping the original indentation.
// Every enumerated item is numbered 1; renderers count them.
func detectLists(lines []string) []string {
	result := make([]string, 0, len(lines))
	inList := false
	fences := newFenceTracker(lines)

	for _, raw := range lines {
		l := classify(raw)

		if fences.fenced(l) {
			result = append(result, raw)
			continue
		}

		switch {
		case l.kind == kindBullet || l.kind == kindNumbered:
			result = append(result, raw)
			inList = true

		case bulletGlyph.MatchString(l.trimmed):
			m := bulletGlyph.FindStringSubmatch(l.trimmed)
			result = append(result, leadingWhitespace(raw)+"- "+m[1])
			inList = true

		case enumerator.MatchString(l.trimmed) && l.length() > minEnumeratedLen:
			m := enumerator.FindStringSubmatch(l.trimmed)
			result = append(result, leadingWhitespace(raw)+"1. "+m[2])
			inList = true

		case l.kind == kindBlank && inList:
			// A blank line ends the list but is kept.
			result = append(result, raw)
			inList = false

		default:
			result = append(result, raw)
		}
	}

	return result
}
