package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

// EmbeddedLoader loads the styles compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in style by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateStyleName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + styleExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// Styles lists the built-in style names.
func (e *EmbeddedLoader) Styles() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}
	return styleNames(entries)
}

func styleNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), styleExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), styleExt))
	}
	sort.Strings(names)
	return names
}

var _ StyleLoader = (*EmbeddedLoader)(nil)
