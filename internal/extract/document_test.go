package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Heading1"/><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>Quarterly Report</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Revenue grew </w:t></w:r><w:r><w:t>10%.</w:t></w:r></w:p>
<w:p/>
<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Value</w:t></w:r></w:p>
<w:p><w:r><w:t>first</w:t><w:br/><w:t>second</w:t></w:r></w:p>
</w:body>
</w:document>`

func newDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDocumentExtractor(t *testing.T) {
	t.Parallel()

	e := NewDocumentExtractor()

	tests := []struct {
		name     string
		filename string
		content  []byte
		want     string
		wantErr  error
	}{
		{
			name:     "docx paragraphs",
			filename: "report.docx",
			content:  newDocx(t, map[string]string{"word/document.xml": docxBody}),
			want: "# Quarterly Report\n" +
				"Revenue grew 10%.\n" +
				"\n" +
				"Name\tValue\n" +
				"first\nsecond",
		},
		{
			name:     "docx without body part",
			filename: "empty.docx",
			content:  newDocx(t, map[string]string{"[Content_Types].xml": "<Types/>"}),
			wantErr:  ErrCorruptDocument,
		},
		{
			name:     "docx that is not a zip",
			filename: "fake.DOCX",
			content:  []byte("plain text pretending"),
			wantErr:  ErrCorruptDocument,
		},
		{
			name:     "doc saved as text",
			filename: "memo.doc",
			content:  []byte("MEETING NOTES\r\n\r\nAgenda"),
			want:     "MEETING NOTES\n\nAgenda",
		},
		{
			name:     "binary doc keeps printable runs",
			filename: "legacy.doc",
			content:  []byte("\xd0\xcf\x11\xe0\x00\x00Hello world\x00\x01ab\x00Second run here\x00"),
			want:     "Hello world\nSecond run here",
		},
		{
			name:     "binary doc without text",
			filename: "blank.doc",
			content:  []byte{0xd0, 0xcf, 0x11, 0xe0, 0x00, 0x01},
			wantErr:  ErrCorruptDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := e.Extract(context.Background(), tt.filename, tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if got.Text != tt.want {
				t.Errorf("Extract() =\n%q\nwant\n%q", got.Text, tt.want)
			}
			if got.Prefix != "# Converted Document\n\n" {
				t.Errorf("Extract() prefix = %q, want the converted document heading", got.Prefix)
			}
			if got.Kind != KindPlainText {
				t.Errorf("Extract() kind = %v, want %v", got.Kind, KindPlainText)
			}
		})
	}
}

func TestHeadingLevelForStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 3", 3},
		{"Heading6", 6},
		{"Heading7", 0},
		{"Title", 1},
		{"Normal", 0},
		{"HeadingChar", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			t.Parallel()

			if got := headingLevelForStyle(tt.style); got != tt.want {
				t.Errorf("headingLevelForStyle(%q) = %d, want %d", tt.style, got, tt.want)
			}
		})
	}
}
