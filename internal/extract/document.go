package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// convertedDocumentPrefix opens the text extracted from word-processor files.
const convertedDocumentPrefix = "# Converted Document\n\n"

const (
	docxBodyPart    = "word/document.xml"
	maxDocxBodySize = 64 << 20
	minDocTextRun   = 4
)

// documentExtractor reads word-processor files (.doc, .docx).
type documentExtractor struct{}

// NewDocumentExtractor creates the extractor for word-processor files.
func NewDocumentExtractor() Extractor {
	return &documentExtractor{}
}

func (e *documentExtractor) Extract(ctx context.Context, filename string, content []byte) (Result, error) {
	var (
		text string
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".docx") {
		text, err = extractDocx(ctx, content)
	} else {
		text, err = extractDoc(content)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Prefix: convertedDocumentPrefix, Kind: KindPlainText}, nil
}

func (e *documentExtractor) SupportedExtensions() []string {
	return []string{".doc", ".docx"}
}

func (e *documentExtractor) Name() string {
	return "document"
}

// extractDocx reads the paragraphs of an Office Open XML document.
func extractDocx(ctx context.Context, content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			body = f
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("%w: missing %s", ErrCorruptDocument, docxBodyPart)
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer func() { _ = rc.Close() }()

	return readDocxBody(ctx, io.LimitReader(rc, maxDocxBodySize))
}

// readDocxBody walks WordprocessingML and emits one line per paragraph.
// Paragraphs styled as headings get a Markdown heading prefix.
func readDocxBody(ctx context.Context, r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out     strings.Builder
		para    strings.Builder
		inText  bool
		inPara  bool
		inProps bool
		heading int
	)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				heading = 0
				para.Reset()
			case "pPr":
				inProps = true
			case "pStyle":
				heading = headingLevelForStyle(attr(t, "val"))
			case "t":
				inText = true
			case "tab":
				// Tab stops in paragraph properties are not content.
				if !inProps {
					para.WriteByte('\t')
				}
			case "br", "cr":
				para.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "pPr":
				inProps = false
			case "p":
				if inPara {
					writeParagraph(&out, para.String(), heading)
				}
				inPara = false
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

func writeParagraph(out *strings.Builder, text string, level int) {
	if level > 0 && strings.TrimSpace(text) != "" {
		out.WriteString(strings.Repeat("#", level))
		out.WriteByte(' ')
		text = strings.TrimSpace(text)
	}
	out.WriteString(text)
	out.WriteByte('\n')
}

// headingLevelForStyle maps Word styles such as "Heading1" or "Title".
func headingLevelForStyle(style string) int {
	s := strings.ToLower(style)
	if s == "title" {
		return 1
	}
	if !strings.HasPrefix(s, "heading") {
		return 0
	}
	n := strings.TrimSpace(strings.TrimPrefix(s, "heading"))
	if len(n) != 1 || n[0] < '1' || n[0] > '6' {
		return 0
	}
	return int(n[0] - '0')
}

func attr(e xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// extractDoc reads a legacy .doc file. Files that are really text are
// decoded as such; binary documents yield their printable text runs.
func extractDoc(content []byte) (string, error) {
	if text, err := DecodeText(content); err == nil {
		return text, nil
	}
	text := printableRuns(content)
	if text == "" {
		return "", fmt.Errorf("%w: no readable text", ErrCorruptDocument)
	}
	return text, nil
}

// printableRuns collects runs of printable characters at least
// minDocTextRun runes long, one run per line.
func printableRuns(content []byte) string {
	var (
		out strings.Builder
		run strings.Builder
		n   int
	)
	flush := func() {
		if n >= minDocTextRun && strings.TrimSpace(run.String()) != "" {
			out.WriteString(strings.TrimSpace(run.String()))
			out.WriteByte('\n')
		}
		run.Reset()
		n = 0
	}

	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		content = content[size:]
		if r == utf8.RuneError || !(unicode.IsPrint(r) || r == '\t') {
			flush()
			continue
		}
		run.WriteRune(r)
		n++
	}
	flush()

	return strings.TrimRight(out.String(), "\n")
}
