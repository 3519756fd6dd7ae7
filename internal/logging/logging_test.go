package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLevelFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    log.Level
	}{
		{"default", false, false, log.WarnLevel},
		{"verbose", false, true, log.DebugLevel},
		{"quiet", true, false, log.ErrorLevel},
		{"quiet wins", true, true, log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LevelFor(tt.quiet, tt.verbose); got != tt.want {
				t.Errorf("LevelFor(%v, %v) = %v, want %v", tt.quiet, tt.verbose, got, tt.want)
			}
		})
	}
}

func TestLogger_Helpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		log  func(l *Logger)
		want []string
	}{
		{
			name: "config loaded",
			log:  func(l *Logger) { l.ConfigLoaded("txt2md.yaml") },
			want: []string{"config loaded", "path=txt2md.yaml"},
		},
		{
			name: "file converted",
			log: func(l *Logger) {
				l.FileConverted("notes.txt", "notes.md", "text", true, 1500*time.Microsecond)
			},
			want: []string{"file converted", "source=notes.txt", "dest=notes.md", "format=text", "formatted=true", "duration=2ms"},
		},
		{
			name: "file skipped",
			log:  func(l *Logger) { l.FileSkipped("image.png", "unsupported") },
			want: []string{"file skipped", "file=image.png", "reason=unsupported"},
		},
		{
			name: "conversion failed",
			log:  func(l *Logger) { l.ConversionFailed("bad.doc", errors.New("corrupt"), 0) },
			want: []string{"conversion failed", "source=bad.doc", "error=corrupt"},
		},
		{
			name: "unknown env with suggestion",
			log:  func(l *Logger) { l.UnknownEnv("TXT2MD_STYL", "TXT2MD_STYLE") },
			want: []string{"unknown environment variable", "name=TXT2MD_STYL", "suggestion=TXT2MD_STYLE"},
		},
		{
			name: "unknown env without suggestion",
			log:  func(l *Logger) { l.UnknownEnv("TXT2MD_ZZZ", "") },
			want: []string{"unknown environment variable", "name=TXT2MD_ZZZ"},
		},
		{
			name: "batch completed",
			log:  func(l *Logger) { l.BatchCompleted(3, 1, time.Second) },
			want: []string{"batch completed", "succeeded=3", "failed=1", "duration=1s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(NewWithLevel(&buf, log.DebugLevel))

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf)

	l.FileConverted("a.txt", "a.md", "text", true, 0)
	l.FileSkipped("b.png", "unsupported")
	l.ConversionFailed("c.doc", errors.New("boom"), 0)
	if buf.Len() != 0 {
		t.Errorf("warn-level logger wrote info/debug output: %q", buf.String())
	}

	l.UnknownEnv("TXT2MD_OUTPT_DIR", "TXT2MD_OUTPUT_DIR")
	if !strings.Contains(buf.String(), "unknown environment variable") {
		t.Errorf("warn-level logger dropped a warning: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	// Must not panic.
	Discard().UnknownEnv("TXT2MD_X", "")
}
