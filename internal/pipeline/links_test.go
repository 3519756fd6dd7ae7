package pipeline

import (
	"strings"
	"testing"
)

func TestFormatLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing period stays outside the link",
			input:    "See https://example.com.",
			expected: "See [https://example.com](https://example.com).",
		},
		{
			name:     "several URLs on one line",
			input:    "a http://x.io, b https://y.io/p?q=1!",
			expected: "a [http://x.io](http://x.io), b [https://y.io/p?q=1](https://y.io/p?q=1)!",
		},
		{
			name:     "closing parenthesis stays in the URL",
			input:    "(see https://x.io/a?!)",
			expected: "(see [https://x.io/a?!)](https://x.io/a?!))",
		},
		{
			name:     "trailing punctuation run stripped",
			input:    "go to https://x.io/docs...",
			expected: "go to [https://x.io/docs](https://x.io/docs)...",
		},
		{
			name:     "existing Markdown link skips the line",
			input:    "[site](https://x.io) and https://y.io",
			expected: "[site](https://x.io) and https://y.io",
		},
		{
			name:     "no-break space ends a URL",
			input:    "https://x.io\u00a0next",
			expected: "[https://x.io](https://x.io)\u00a0next",
		},
		{
			name:     "scheme required",
			input:    "www.example.com and ftp://x.io",
			expected: "www.example.com and ftp://x.io",
		},
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := strings.Join(formatLinks(strings.Split(tt.input, "\n")), "\n")
			if got != tt.expected {
				t.Errorf("formatLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}
