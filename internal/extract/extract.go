// Package extract turns uploaded files into text for the formatter.
//
// Each Extractor handles a set of file extensions and reports whether its
// output is plain text (to be formatted) or already Markdown. The Registry
// routes a file to its extractor by extension.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Sentinel errors for extraction.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrBinaryContent     = errors.New("file content is not text")
	ErrInvalidEncoding   = errors.New("invalid text encoding")
	ErrCorruptDocument   = errors.New("corrupt document")
)

// Kind describes what an extractor produced.
type Kind int

const (
	// KindPlainText is unstructured text that still needs formatting.
	KindPlainText Kind = iota
	// KindMarkdown is already Markdown and is used as is.
	KindMarkdown
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindMarkdown {
		return "markdown"
	}
	return "text"
}

// Result is the output of an extractor. Prefix is fixed Markdown placed
// before Text once Text has been formatted; the likelihood check and the
// formatter only see Text.
type Result struct {
	Text   string
	Prefix string
	Kind   Kind
}

// Extractor converts raw file content to text.
type Extractor interface {
	Extract(ctx context.Context, filename string, content []byte) (Result, error)
	SupportedExtensions() []string
	Name() string
}

// Registry routes files to extractors by extension.
// Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Extractor // key: lower-case extension with dot
}

// NewRegistry creates a registry with the standard extractors registered.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}

	r.Register(NewPlainTextExtractor())
	r.Register(NewMarkdownExtractor())
	r.Register(NewDocumentExtractor())
	r.Register(NewHTMLExtractor())
	r.Register(NewPDFExtractor())

	return r
}

// Register associates an extractor with its extensions, replacing any
// extractor previously registered for them.
func (r *Registry) Register(e Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range e.SupportedExtensions() {
		r.extractors[normalizeExt(ext)] = e
	}
}

// Lookup returns the extractor for an extension, or nil.
// Lookup is case-insensitive and accepts extensions with or without a dot.
func (r *Registry) Lookup(ext string) Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extractors[normalizeExt(ext)]
}

// Supports reports whether filename has a registered extension.
func (r *Registry) Supports(filename string) bool {
	return r.Lookup(filepath.Ext(filename)) != nil
}

// Extract selects the extractor for filename and runs it.
func (r *Registry) Extract(ctx context.Context, filename string, content []byte) (Result, error) {
	ext := filepath.Ext(filename)
	e := r.Lookup(ext)
	if e == nil {
		if ext == "" {
			return Result{}, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, filepath.Base(filename))
		}
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, strings.ToLower(ext))
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return e.Extract(ctx, filename, content)
}

// SupportedExtensions returns the registered extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
