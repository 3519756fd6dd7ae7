package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/config"
	"github.com/alnah/go-txt2md/internal/fileutil"
	"github.com/alnah/go-txt2md/internal/logging"
)

// ErrInvalidWorkerCount reports a --workers value out of range.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

const (
	markdownExt     = ".md"
	htmlExt         = ".html"
	formattedSuffix = ".formatted" // output of a Markdown file converted in place
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds the files to convert. A directory is walked
// recursively; unsupported, hidden and generated files are skipped.
func discoverFiles(inputPath, outputDir string, supports func(string) bool, logger *logging.Logger) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !supports(inputPath) {
			return nil, fmt.Errorf("%w: %s", txt2md.ErrUnsupportedFormat, inputPath)
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && (isHidden(d.Name()) || sameDir(path, outputDir)) {
				return filepath.SkipDir
			}
			return nil
		}
		switch {
		case isHidden(d.Name()):
			return nil
		case isGeneratedOutput(path):
			logger.FileSkipped(path, "generated output")
			return nil
		case !supports(path):
			logger.FileSkipped(path, "unsupported extension")
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return avoidOverwritingInputs(files), nil
}

// resolveOutputPath determines the Markdown output path for an input file.
// An output ending in .md names the file directly (single file only).
// Relative directories under baseInputDir are mirrored into outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if baseInputDir == "" && strings.EqualFold(filepath.Ext(outputDir), markdownExt) {
		return outputDir
	}

	dir := filepath.Dir(inputPath)
	if outputDir != "" {
		dir = outputDir
		if baseInputDir != "" {
			if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
				dir = filepath.Join(outputDir, filepath.Dir(relPath))
			}
		}
	}

	outPath := filepath.Join(dir, base+markdownExt)
	if samePath(outPath, inputPath) {
		outPath = filepath.Join(dir, base+formattedSuffix+markdownExt)
	}
	return outPath
}

// avoidOverwritingInputs redirects outputs that would replace an input or
// another output of the batch: notes.txt next to notes.md is written to
// notes.txt.md.
func avoidOverwritingInputs(files []FileToConvert) []FileToConvert {
	taken := make(map[string]bool, len(files)*2)
	for _, f := range files {
		taken[filepath.Clean(f.InputPath)] = true
	}
	for i, f := range files {
		out := filepath.Clean(f.OutputPath)
		if taken[out] {
			out = filepath.Join(filepath.Dir(out), filepath.Base(f.InputPath)+markdownExt)
			files[i].OutputPath = out
		}
		taken[out] = true
	}
	return files
}

// htmlOutputPath returns the HTML path corresponding to a Markdown path.
func htmlOutputPath(markdownPath string) string {
	return fileutil.ReplaceExt(markdownPath, htmlExt)
}

// isGeneratedOutput reports whether path was written by an in-place run.
func isGeneratedOutput(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), formattedSuffix+markdownExt)
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// samePath compares cleaned paths case-insensitively, so README.MD and
// README.md are one file on case-insensitive filesystems.
func samePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}

// sameDir reports whether dir is the output directory.
func sameDir(dir, outputDir string) bool {
	if outputDir == "" {
		return false
	}
	a, errA := filepath.Abs(dir)
	b, errB := filepath.Abs(outputDir)
	return errA == nil && errB == nil && a == b
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolveWorkers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, config.MaxWorkers))
}
