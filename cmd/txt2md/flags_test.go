package main

import (
	"errors"
	"slices"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"notes.txt",
		"-o", "out",
		"-w", "4",
		"-c", "team",
		"-q",
		"--no-headings", "--no-links", "--preserve-whitespace", "-f",
		"--html", "--style", "github", "--asset-path", "./css",
		"--title", "Notes", "--author", "Ada", "--date", "auto:long",
		"--tags", "a,b", "--id", "auto",
	}

	f, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags() unexpected error: %v", err)
	}

	if !slices.Equal(positional, []string{"notes.txt"}) {
		t.Errorf("positional = %v", positional)
	}
	if f.output != "out" || f.workers != 4 || !f.workersSet {
		t.Errorf("io flags = %q, %d, %v", f.output, f.workers, f.workersSet)
	}
	if f.common.config != "team" || !f.common.quiet || f.common.verbose {
		t.Errorf("common = %+v", f.common)
	}
	if !f.format.noHeadings || f.format.noLists || f.format.noCode || !f.format.noLinks ||
		!f.format.preserveWhitespace || !f.format.force {
		t.Errorf("format = %+v", f.format)
	}
	if !f.html.enabled || f.html.style != "github" || f.html.assetPath != "./css" {
		t.Errorf("html = %+v", f.html)
	}
	fm := f.frontMatter
	if fm.title != "Notes" || fm.author != "Ada" || fm.date != "auto:long" || fm.id != "auto" ||
		!slices.Equal(fm.tags, []string{"a", "b"}) {
		t.Errorf("frontMatter = %+v", fm)
	}
	if !fm.hasMetadata() {
		t.Error("hasMetadata() = false")
	}
}

func TestParseConvertFlags_WorkersUnset(t *testing.T) {
	t.Parallel()

	f, _, err := parseConvertFlags([]string{"in"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.workersSet {
		t.Error("workersSet = true without --workers")
	}
	if f.frontMatter.hasMetadata() {
		t.Error("hasMetadata() = true without metadata flags")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func() error
		want  error
	}{
		{
			name:  "unknown flag",
			parse: func() error { _, _, err := parseConvertFlags([]string{"--bogus"}); return err },
			want:  ErrInvalidFlags,
		},
		{
			name:  "bad int",
			parse: func() error { _, _, err := parseConvertFlags([]string{"-w", "many"}); return err },
			want:  ErrInvalidFlags,
		},
		{
			name:  "help",
			parse: func() error { _, _, err := parseCheckFlags([]string{"--help"}); return err },
			want:  flag.ErrHelp,
		},
		{
			name:  "preview unknown flag",
			parse: func() error { _, _, err := parsePreviewFlags([]string{"--html"}); return err },
			want:  ErrInvalidFlags,
		},
		{
			name:  "styles unknown flag",
			parse: func() error { _, err := parseStylesFlags([]string{"-x"}); return err },
			want:  ErrInvalidFlags,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.parse(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParsePreviewFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, positional, err := parsePreviewFlags([]string{"a.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.style != defaultPreviewStyle || f.width != defaultPreviewWidth {
		t.Errorf("defaults = %q, %d", f.style, f.width)
	}
	if !slices.Equal(positional, []string{"a.txt"}) {
		t.Errorf("positional = %v", positional)
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"convert", "a.txt"}, false},
		{[]string{"convert", "-v", "a.txt"}, true},
		{[]string{"convert", "--verbose"}, true},
		{[]string{"convert", "--", "-v"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	f, err := parseDoctorFlags([]string{"--json", "-c", "team"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.json || f.config != "team" {
		t.Errorf("doctorFlags = %+v", f)
	}
}
