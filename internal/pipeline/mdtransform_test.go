package pipeline

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"LF unchanged", "a\nb", "a\nb"},
		{"CRLF to LF", "a\r\nb\r\n", "a\nb\n"},
		{"lone CR to LF", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeLineEndings(tt.input); got != tt.expected {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no front matter",
			input:    "# Title\n\nBody",
			expected: "# Title\n\nBody",
		},
		{
			name:     "front matter removed",
			input:    "---\ntitle: Notes\ntags:\n  - a\n---\n\n# Notes\n",
			expected: "# Notes\n",
		},
		{
			name:     "closing fence at end of input",
			input:    "---\ntitle: x\n---",
			expected: "",
		},
		{
			name:     "unclosed block left alone",
			input:    "---\ntitle: x\nbody",
			expected: "---\ntitle: x\nbody",
		},
		{
			name:     "rule later in the document is not front matter",
			input:    "Intro\n---\nMore",
			expected: "Intro\n---\nMore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripFrontMatter(tt.input); got != tt.expected {
				t.Errorf("StripFrontMatter() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommonMarkPreprocessor(t *testing.T) {
	t.Parallel()

	p := &CommonMarkPreprocessor{}

	t.Run("normalizes, strips and compresses", func(t *testing.T) {
		t.Parallel()

		input := "---\r\ntitle: x\r\n---\r\n# A\r\n\r\n\r\n\r\nB"
		want := "# A\n\nB"
		if got := p.PreprocessMarkdown(context.Background(), input); got != want {
			t.Errorf("PreprocessMarkdown() = %q, want %q", got, want)
		}
	})

	t.Run("cancelled context returns input", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		input := "a\r\n\r\n\r\n\r\nb"
		if got := p.PreprocessMarkdown(ctx, input); got != input {
			t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got)
		}
	})
}
