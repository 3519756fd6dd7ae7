package pipeline

import "testing"

func TestLooksLikeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"plain prose", "Just some text.\nAnd more.", false},
		{"one qualifying line", "# Title\nplain text", false},
		{"heading and list item", "# Title\n- item", true},
		{"numbered items", "1. one\n2. two", true},
		{"fence pair", "```\ncode\n```", true},
		{"inline links", "see [a](b)\nand [c](d)", true},
		{"three qualifying lines", "# A\n- b\n[c](d)", true},
		{"link and list on one line count once", "- [a](b)", false},
		{"markers need a space", "#tag\n-dash\n1.5 ratio", false},
		{"indented markers count", "  # A\n  - b", true},
		{"empty link text does not count", "[](x)\n# A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LooksLikeMarkdown(tt.input); got != tt.want {
				t.Errorf("LooksLikeMarkdown(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// The early exit at three lines and the final threshold of two are pinned
// here so that unifying them is a deliberate change.
func TestLooksLikeMarkdown_Thresholds(t *testing.T) {
	t.Parallel()

	if markdownEarlyExit != 3 || markdownMinLines != 2 {
		t.Fatalf("thresholds = (%d, %d), want (3, 2)", markdownEarlyExit, markdownMinLines)
	}

	// Qualifying lines before a long tail: the early exit must not depend
	// on what follows.
	input := "# A\n- b\n- c"
	for i := 0; i < 100; i++ {
		input += "\nplain"
	}
	if !LooksLikeMarkdown(input) {
		t.Error("LooksLikeMarkdown() = false for three leading qualifying lines")
	}
}
