package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// frontMatterFence delimits a YAML front matter block.
const frontMatterFence = "---"

// MarkdownPreprocessor defines the contract for preparing Markdown for rendering.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor cleans Markdown before CommonMark rendering.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes line endings, removes YAML front matter
// (goldmark would render it as a rule and a setext heading) and
// compresses blank lines.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = StripFrontMatter(content)
	content = compressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// StripFrontMatter removes a leading "---" delimited block.
// Content without a closed block is returned unchanged.
func StripFrontMatter(content string) string {
	if !strings.HasPrefix(content, frontMatterFence+"\n") {
		return content
	}
	rest := content[len(frontMatterFence)+1:]
	for offset := 0; offset < len(rest); {
		end := strings.IndexByte(rest[offset:], '\n')
		var ln string
		if end == -1 {
			ln = rest[offset:]
		} else {
			ln = rest[offset : offset+end]
		}
		if strings.TrimRight(ln, " \t") == frontMatterFence {
			if end == -1 {
				return ""
			}
			return strings.TrimLeft(rest[offset+end+1:], "\n")
		}
		if end == -1 {
			break
		}
		offset += end + 1
	}
	return content
}
