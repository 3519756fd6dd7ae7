package pipeline

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want lineKind
	}{
		{"empty", "", kindBlank},
		{"whitespace only", " \t ", kindBlank},
		{"heading", "## Title", kindHeading},
		{"indented heading", "   # Title", kindHeading},
		{"hash without space", "#hashtag", kindText},
		{"dash bullet", "- item", kindBullet},
		{"star bullet", "* item", kindBullet},
		{"plus bullet", "+ item", kindBullet},
		{"numbered", "12. item", kindNumbered},
		{"paren enumerator is text", "1) item", kindText},
		{"fence", "```", kindFence},
		{"fence with info", "```python", kindFence},
		{"plain text", "hello world", kindText},
		{"carriage return trimmed", "- item\r", kindBullet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classify(tt.raw).kind; got != tt.want {
				t.Errorf("classify(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLeadingWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", ""},
		{"    abc", "    "},
		{"\t x", "\t "},
		{"  x", "  "},
		{"   ", "   "},
	}

	for _, tt := range tests {
		if got := leadingWhitespace(tt.input); got != tt.want {
			t.Errorf("leadingWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDropRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"    code", 4, "code"},
		{"    code", 0, "    code"},
		{"　　x", 1, "　x"},
		{"ab", 2, ""},
		{"ab", 5, ""},
	}

	for _, tt := range tests {
		if got := dropRunes(tt.input, tt.n); got != tt.want {
			t.Errorf("dropRunes(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestFenceTracker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []bool
	}{
		{
			name:  "closed fence",
			lines: []string{"before", "```go", "inside", "```", "after"},
			want:  []bool{false, true, true, true, false},
		},
		{
			name:  "unclosed opener is text",
			lines: []string{"before", "```", "NOTE THIS WELL", "after"},
			want:  []bool{false, false, false, false},
		},
		{
			name:  "third fence unmatched",
			lines: []string{"```", "code", "```", "text", "```", "more"},
			want:  []bool{true, true, true, false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFenceTracker(tt.lines)
			for i, raw := range tt.lines {
				if got := f.fenced(classify(raw)); got != tt.want[i] {
					t.Errorf("fenced(%q) at line %d = %v, want %v", raw, i, got, tt.want[i])
				}
			}
		})
	}
}
