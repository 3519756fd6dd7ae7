package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRegistry_SupportedExtensions(t *testing.T) {
	t.Parallel()

	want := []string{".doc", ".docx", ".htm", ".html", ".markdown", ".md", ".pdf", ".text", ".txt"}
	got := NewRegistry().SupportedExtensions()

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("SupportedExtensions() = %v, want %v", got, want)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tests := []struct {
		ext  string
		want string
	}{
		{".txt", "text"},
		{"TXT", "text"},
		{".MD", "markdown"},
		{"docx", "document"},
		{".htm", "html"},
		{".pdf", "pdf"},
		{".rtf", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			e := r.Lookup(tt.ext)
			switch {
			case tt.want == "" && e != nil:
				t.Errorf("Lookup(%q) = %s, want nil", tt.ext, e.Name())
			case tt.want != "" && e == nil:
				t.Errorf("Lookup(%q) = nil, want %s", tt.ext, tt.want)
			case e != nil && e.Name() != tt.want:
				t.Errorf("Lookup(%q) = %s, want %s", tt.ext, e.Name(), tt.want)
			}
		})
	}
}

func TestRegistry_Extract(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tests := []struct {
		name     string
		filename string
		content  string
		wantText string
		wantKind Kind
		wantErr  error
	}{
		{
			name:     "plain text",
			filename: "notes.txt",
			content:  "Hello\r\nWorld",
			wantText: "Hello\nWorld",
			wantKind: KindPlainText,
		},
		{
			name:     "markdown",
			filename: "README.MD",
			content:  "# Title",
			wantText: "# Title",
			wantKind: KindMarkdown,
		},
		{
			name:     "pdf placeholder",
			filename: "dir/report.pdf",
			content:  "%PDF-1.7",
			wantText: "# PDF Document\n\nThis PDF file has been uploaded. Content extraction is not yet implemented.\n\nFile: report.pdf",
			wantKind: KindMarkdown,
		},
		{
			name:     "unsupported extension",
			filename: "image.png",
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "no extension",
			filename: "Makefile",
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "binary text file",
			filename: "data.txt",
			content:  "\x00\x01\x02",
			wantErr:  ErrBinaryContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Extract(context.Background(), tt.filename, []byte(tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if got.Text != tt.wantText {
				t.Errorf("Extract() text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Extract() kind = %v, want %v", got.Kind, tt.wantKind)
			}
		})
	}
}

func TestRegistry_ExtractCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRegistry().Extract(ctx, "notes.txt", []byte("text"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Extract() error = %v, want context.Canceled", err)
	}
}

type upperExtractor struct{}

func (upperExtractor) Extract(_ context.Context, _ string, content []byte) (Result, error) {
	return Result{Text: strings.ToUpper(string(content))}, nil
}
func (upperExtractor) SupportedExtensions() []string { return []string{"txt", ".LOG"} }
func (upperExtractor) Name() string                  { return "upper" }

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(upperExtractor{})

	if !r.Supports("server.log") {
		t.Error("Supports(server.log) = false after Register")
	}

	got, err := r.Extract(context.Background(), "a.txt", []byte("abc"))
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}
	if got.Text != "ABC" {
		t.Errorf("Extract() = %q, want %q", got.Text, "ABC")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	if KindPlainText.String() != "text" || KindMarkdown.String() != "markdown" {
		t.Errorf("Kind names = %q, %q", KindPlainText, KindMarkdown)
	}
}
