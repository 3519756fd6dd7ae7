package txt2md

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-txt2md/internal/dateutil"
	"github.com/alnah/go-txt2md/internal/pipeline"
	"github.com/alnah/go-txt2md/internal/yamlutil"
)

// DefaultDocumentTitle is the front matter title of a document without
// a title and without a level-1 heading.
const DefaultDocumentTitle = "Untitled Document"

// autoID asks for a generated document ID.
const autoID = "auto"

// Metadata is written as YAML front matter ahead of the Markdown.
type Metadata struct {
	Title  string // empty = first level-1 heading, else DefaultDocumentTitle
	Author string
	Date   string   // literal, "auto", "auto:FORMAT" or "auto:PRESET"
	Tags   []string // leading '#' is dropped, duplicates removed
	ID     string   // "auto" generates a UUID
}

// frontMatter is the serialized form; empty fields are omitted.
type frontMatter struct {
	Title  string   `yaml:"title,omitempty"`
	Author string   `yaml:"author,omitempty"`
	Date   string   `yaml:"date,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
	ID     string   `yaml:"id,omitempty"`
}

// prependFrontMatter replaces any front matter in markdown with the block
// built from meta.
func prependFrontMatter(meta *Metadata, markdown string, now time.Time) (string, error) {
	body := pipeline.StripFrontMatter(markdown)

	fm, err := meta.resolve(body, now)
	if err != nil {
		return "", err
	}

	block, err := yamlutil.FrontMatter(fm)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	if body == "" {
		return string(block), nil
	}
	return string(block) + "\n" + body, nil
}

func (m *Metadata) resolve(body string, now time.Time) (frontMatter, error) {
	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = pipeline.DocumentTitle(body)
	}
	if title == "" {
		title = DefaultDocumentTitle
	}

	date, err := dateutil.ResolveDate(strings.TrimSpace(m.Date), now)
	if err != nil {
		return frontMatter{}, err
	}

	id := strings.TrimSpace(m.ID)
	if strings.EqualFold(id, autoID) {
		id = uuid.NewString()
	}

	return frontMatter{
		Title:  title,
		Author: strings.TrimSpace(m.Author),
		Date:   date,
		Tags:   normalizeTags(m.Tags),
		ID:     id,
	}, nil
}

// normalizeTags trims tags, drops a leading '#' and empty or repeated tags.
// Order is preserved.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(t), "#"))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
