// Package hints provides actionable hints appended to CLI error messages.
// Hints are formatted as "\n  hint: <text>".
package hints

import (
	"fmt"
	"strings"
)

// ForUnsupportedFormat lists the extensions that can be converted.
func ForUnsupportedFormat(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported extensions: " + strings.Join(supported, ", "))
}

// ForBinaryContent explains what to do with a file that is not text.
func ForBinaryContent() string {
	return format("the file looks binary; export it as .txt or .docx first")
}

// ForFileTooLarge reports the size limit.
func ForFileTooLarge(maxBytes int64) string {
	return format(fmt.Sprintf("files are limited to %d MiB; split the document", maxBytes>>20))
}

// ForConfigNotFound suggests --config or a user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-txt2md") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns a hint for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
