package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"

	txt2md "github.com/alnah/go-txt2md"
)

// ErrNotMarkdown reports files that would still be formatted.
var ErrNotMarkdown = errors.New("not markdown")

// markdownDetector is the part of *txt2md.Converter the check command uses.
type markdownDetector interface {
	Detect(ctx context.Context, input txt2md.Input) (*txt2md.Result, error)
}

var _ markdownDetector = (*txt2md.Converter)(nil)

// checkRow is one line of the check report.
type checkRow struct {
	path     string
	format   string
	markdown bool
	err      error
}

// runCheck reports whether each file already looks like Markdown.
// Succeeds only if every file does.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, paths, err := parseCheckFlags(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return ErrNoInput
	}

	conv, err := txt2md.NewConverter()
	if err != nil {
		return err
	}

	rows := make([]checkRow, 0, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rows = append(rows, checkFile(ctx, conv, path))
	}

	if !flags.common.quiet {
		printCheckReport(rows, env)
	}

	var errs []error
	notMarkdown := 0
	for _, r := range rows {
		switch {
		case r.err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", r.path, r.err))
		case !r.markdown:
			notMarkdown++
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if notMarkdown > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrNotMarkdown, notMarkdown, len(rows))
	}
	return nil
}

// checkFile runs the Markdown likelihood check on the extracted text of
// path. Markdown files are judged by content, not by extension.
func checkFile(ctx context.Context, conv markdownDetector, path string) checkRow {
	row := checkRow{path: path}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		row.err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return row
	}

	res, err := conv.Detect(ctx, txt2md.Input{Filename: path, Content: content})
	if err != nil {
		row.err = err
		return row
	}
	row.format = res.Format
	row.markdown = res.AlreadyMarkdown
	return row
}

// printCheckReport prints one aligned row per file. Widths are measured in
// terminal cells so CJK and emoji file names line up.
func printCheckReport(rows []checkRow, env *Environment) {
	th := newTheme(env.Stdout)

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.path))
	}

	for _, r := range rows {
		name := runewidth.FillRight(r.path, width)
		switch {
		case r.err != nil:
			fmt.Fprintf(env.Stdout, "%s  %s\n", name, th.failure.Render("error"))
		case r.markdown:
			fmt.Fprintf(env.Stdout, "%s  %s %s\n", name, th.success.Render("markdown  "), th.dim.Render("("+r.format+")"))
		default:
			fmt.Fprintf(env.Stdout, "%s  %s %s\n", name, th.warning.Render("plain text"), th.dim.Render("("+r.format+")"))
		}
	}
}
