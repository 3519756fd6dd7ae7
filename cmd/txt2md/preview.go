package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/logging"
)

// ErrInvalidPreviewStyle reports an unknown --style for preview.
var ErrInvalidPreviewStyle = errors.New("invalid preview style")

const (
	defaultPreviewStyle = styles.AutoStyle
	defaultPreviewWidth = 80
)

// previewStyles lists the glamour styles preview accepts.
var previewStyles = []string{styles.AutoStyle, styles.DarkStyle, styles.LightStyle, styles.NoTTYStyle}

// runPreview converts one file and renders the Markdown for the terminal.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positionalArgs, err := parsePreviewFlags(args)
	if err != nil {
		return err
	}
	if len(positionalArgs) != 1 {
		return fmt.Errorf("%w: preview takes exactly one file, got %d", ErrInvalidFlags, len(positionalArgs))
	}
	if !slices.Contains(previewStyles, flags.style) {
		return fmt.Errorf("%w: %q (use %s)", ErrInvalidPreviewStyle, flags.style, strings.Join(previewStyles, ", "))
	}
	if flags.width < 0 {
		return fmt.Errorf("%w: --width must be >= 0, got %d", ErrInvalidFlags, flags.width)
	}

	logger := logging.NewWithLevel(env.Stderr, logging.LevelFor(flags.common.quiet, flags.common.verbose))
	cfg, err := loadSettings(flags.common.config, logger)
	if err != nil {
		return err
	}
	mergeFormatFlags(flags.format, &cfg.Format)

	conv, err := txt2md.NewConverter(
		txt2md.WithFormatOptions(cfg.Format.Options()),
		txt2md.WithForceFormat(cfg.Format.ForceFormat()),
	)
	if err != nil {
		return err
	}

	path := positionalArgs[0]
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	res, err := conv.Convert(ctx, txt2md.Input{Filename: path, Content: content})
	if err != nil {
		return err
	}

	out, err := renderPreview(res.Markdown, flags.style, flags.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(env.Stdout, out)
	return err
}

// renderPreview renders markdown with a glamour style. Width 0 disables wrapping.
func renderPreview(markdown, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return out, nil
}
