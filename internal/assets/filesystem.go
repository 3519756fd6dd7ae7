package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirLoader loads {dir}/{name}.css from a directory on disk.
type DirLoader struct {
	basePath string
}

// NewDirLoader creates a DirLoader for dir.
// Returns ErrInvalidBasePath if dir is not a readable directory.
func NewDirLoader(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	// Containment checks compare resolved paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &DirLoader{basePath: absPath}, nil
}

// LoadStyle reads {dir}/{name}.css.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateStyleName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(d.basePath, name+styleExt)
	if err := d.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// Styles lists the *.css files in the directory.
func (d *DirLoader) Styles() []string {
	entries, err := os.ReadDir(d.basePath)
	if err != nil {
		return nil
	}
	return styleNames(entries)
}

// verifyPathContainment rejects paths that resolve outside basePath,
// including through symlinks.
func (d *DirLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	// A missing file fails later on open; the prefix check still applies.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if !strings.HasPrefix(absFilePath, d.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

var _ StyleLoader = (*DirLoader)(nil)
