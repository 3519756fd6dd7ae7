package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-txt2md/internal/pipeline"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// DecodeText converts raw file bytes to normalized UTF-8 text.
// UTF-8 and UTF-16 byte order marks are honoured, binary content is
// rejected, the result is NFC-normalized and line endings become \n.
func DecodeText(content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	var text string
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		text = string(content[3:])
	case encodingUTF16LE:
		decoded, err := decodeUTF16(content, unicode.LittleEndian)
		if err != nil {
			return "", err
		}
		text = decoded
	case encodingUTF16BE:
		decoded, err := decodeUTF16(content, unicode.BigEndian)
		if err != nil {
			return "", err
		}
		text = decoded
	default:
		if !looksLikeText(content) {
			return "", ErrBinaryContent
		}
		text = string(content)
	}

	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return pipeline.NormalizeLineEndings(norm.NFC.String(text)), nil
}

// looksLikeText sniffs the head of content for binary data.
func looksLikeText(content []byte) bool {
	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r':
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}

// plainTextExtractor reads .txt files for formatting.
type plainTextExtractor struct{}

// NewPlainTextExtractor creates the extractor for plain-text files.
func NewPlainTextExtractor() Extractor {
	return &plainTextExtractor{}
}

func (e *plainTextExtractor) Extract(ctx context.Context, filename string, content []byte) (Result, error) {
	text, err := DecodeText(content)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Kind: KindPlainText}, nil
}

func (e *plainTextExtractor) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (e *plainTextExtractor) Name() string {
	return "text"
}

// markdownExtractor reads Markdown files. Their content is passed through.
type markdownExtractor struct{}

// NewMarkdownExtractor creates the extractor for Markdown files.
func NewMarkdownExtractor() Extractor {
	return &markdownExtractor{}
}

func (e *markdownExtractor) Extract(ctx context.Context, filename string, content []byte) (Result, error) {
	text, err := DecodeText(content)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Kind: KindMarkdown}, nil
}

func (e *markdownExtractor) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

func (e *markdownExtractor) Name() string {
	return "markdown"
}
