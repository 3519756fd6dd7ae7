package pipeline

import "strings"

// normalizeParagraphs collapses runs of blank lines into one empty line
// and drops blank lines at the start and end of the document.
func normalizeParagraphs(lines []string) []string {
	result := make([]string, 0, len(lines))
	previousBlank := false

	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			if !previousBlank {
				result = append(result, "")
			}
			previousBlank = true
			continue
		}
		result = append(result, raw)
		previousBlank = false
	}

	for len(result) > 0 && result[0] == "" {
		result = result[1:]
	}
	for len(result) > 0 && result[len(result)-1] == "" {
		result = result[:len(result)-1]
	}
	return result
}
