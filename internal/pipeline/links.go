package pipeline

import (
	"regexp"
	"strings"
)

// bareURL stops at any Unicode space, including no-break spaces.
var bareURL = regexp.MustCompile(`https?://[^\s\p{Z}]+`)

// urlTrailingPunct is sentence punctuation that ends a URL's sentence
// rather than the URL itself.
const urlTrailingPunct = ".,;:!?"

// formatLinks wraps bare URLs as [url](url). Lines that already contain
// a Markdown link are left alone.
func formatLinks(lines []string) []string {
	result := make([]string, len(lines))
	for i, raw := range lines {
		if strings.Contains(raw, "](") {
			result[i] = raw
			continue
		}
		result[i] = bareURL.ReplaceAllStringFunc(raw, wrapURL)
	}
	return result
}

// wrapURL links the URL and keeps trailing punctuation after the link.
func wrapURL(match string) string {
	url := strings.TrimRight(match, urlTrailingPunct)
	return "[" + url + "](" + url + ")" + match[len(url):]
}
