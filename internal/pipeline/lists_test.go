package pipeline

import (
	"strings"
	"testing"
)

func TestDetectLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bullet glyphs become dashes",
			input:    "• Apples\n• Bananas",
			expected: "- Apples\n- Bananas",
		},
		{
			name:     "every supported glyph",
			input:    "○ a\n● b\n◦ c\n▪ d\n▫ e\n■ f\n□ g",
			expected: "- a\n- b\n- c\n- d\n- e\n- f\n- g",
		},
		{
			name:     "glyph indentation kept",
			input:    "  ◦ nested item",
			expected: "  - nested item",
		},
		{
			name:     "paren enumerators renumbered",
			input:    "1) First\n2) Second",
			expected: "1. First\n1. Second",
		},
		{
			name:     "parenthesized letters",
			input:    "(a) alpha\n(b) beta",
			expected: "1. alpha\n1. beta",
		},
		{
			name:     "upper-case letter with dot",
			input:    "A. Apples",
			expected: "1. Apples",
		},
		{
			name:     "short enumerator still matches",
			input:    "a) x",
			expected: "1. x",
		},
		{
			name:     "enumerator indentation kept",
			input:    "\t2) deep",
			expected: "\t1. deep",
		},
		{
			name:     "canonical list items pass through",
			input:    "- one\n* two\n+ three\n7. seven",
			expected: "- one\n* two\n+ three\n7. seven",
		},
		{
			name:     "blank line after a list kept",
			input:    "• a\n\ntext",
			expected: "- a\n\ntext",
		},
		{
			name:     "glyph without text is left alone",
			input:    "•",
			expected: "•",
		},
		{
			name:     "glyph without a space is left alone",
			input:    "•word",
			expected: "•word",
		},
		{
			name:     "plain sentences untouched",
			input:    "Nothing to see here",
			expected: "Nothing to see here",
		},
		{
			name:     "fenced content is left alone",
			input:    "```\n• raw\n1) raw\n```",
			expected: "```\n• raw\n1) raw\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := strings.Join(detectLists(strings.Split(tt.input, "\n")), "\n")
			if got != tt.expected {
				t.Errorf("detectLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}
