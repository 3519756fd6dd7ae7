package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing errors.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags disables formatter passes; zero values keep the config.
type formatFlags struct {
	noHeadings         bool
	noLists            bool
	noCode             bool
	noLinks            bool
	preserveWhitespace bool
	force              bool
}

// htmlFlags holds HTML output flags.
type htmlFlags struct {
	enabled   bool
	style     string // name, CSS file path, or CSS content
	assetPath string // directory of custom styles
}

// frontMatterFlags holds front matter flags.
type frontMatterFlags struct {
	enabled bool
	title   string
	author  string
	date    string
	tags    []string
	id      string
}

// hasMetadata reports whether a metadata field was given.
func (f frontMatterFlags) hasMetadata() bool {
	return f.title != "" || f.author != "" || f.date != "" || len(f.tags) > 0 || f.id != ""
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	workers     int
	workersSet  bool
	format      formatFlags
	html        htmlFlags
	frontMatter frontMatterFlags
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	format formatFlags
	style  string
	width  int
}

// stylesFlags holds flags for the styles command.
type stylesFlags struct {
	assetPath string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFormatFlags adds formatter flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.BoolVar(&f.noHeadings, "no-headings", false, "disable heading detection")
	fs.BoolVar(&f.noLists, "no-lists", false, "disable list detection")
	fs.BoolVar(&f.noCode, "no-code", false, "disable code block detection")
	fs.BoolVar(&f.noLinks, "no-links", false, "disable link detection")
	fs.BoolVar(&f.preserveWhitespace, "preserve-whitespace", false, "keep blank lines as they are")
	fs.BoolVarP(&f.force, "force", "f", false, "format text that already looks like Markdown")
}

// addHTMLFlags adds HTML output flags to a FlagSet.
func addHTMLFlags(fs *flag.FlagSet, f *htmlFlags) {
	fs.BoolVar(&f.enabled, "html", false, "also write an HTML page")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory of custom CSS styles")
}

// addFrontMatterFlags adds front matter flags to a FlagSet.
func addFrontMatterFlags(fs *flag.FlagSet, f *frontMatterFlags) {
	fs.BoolVar(&f.enabled, "front-matter", false, "prepend YAML front matter")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from H1)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.date, "date", "", "document date (\"auto\" = today)")
	fs.StringSliceVar(&f.tags, "tags", nil, "comma-separated tags")
	fs.StringVar(&f.id, "id", "", "document ID (\"auto\" = random UUID)")
}

// newFlagSet creates a FlagSet that reports errors instead of printing them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseWith parses args and wraps failures, keeping flag.ErrHelp intact.
func parseWith(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return nil
}

// newConvertFlagSet registers the convert flags into f.
// Shell completion reads the same FlagSet.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := newFlagSet("convert")

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)
	addHTMLFlags(fs, &f.html)
	addFrontMatterFlags(fs, &f.frontMatter)
	return fs
}

func newCheckFlagSet(f *checkFlags) *flag.FlagSet {
	fs := newFlagSet("check")
	addCommonFlags(fs, &f.common)
	return fs
}

func newPreviewFlagSet(f *previewFlags) *flag.FlagSet {
	fs := newFlagSet("preview")
	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)
	fs.StringVar(&f.style, "style", defaultPreviewStyle, "terminal style: auto, dark, light, notty")
	fs.IntVar(&f.width, "width", defaultPreviewWidth, "word wrap width (0 = no wrap)")
	return fs
}

func newStylesFlagSet(f *stylesFlags) *flag.FlagSet {
	fs := newFlagSet("styles")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory of custom CSS styles")
	return fs
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := newFlagSet("doctor")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)

	if err := parseWith(fs, args); err != nil {
		return nil, nil, err
	}
	f.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newCheckFlagSet(f)

	if err := parseWith(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := newPreviewFlagSet(f)

	if err := parseWith(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseStylesFlags parses styles command flags.
func parseStylesFlags(args []string) (*stylesFlags, error) {
	f := &stylesFlags{}
	if err := parseWith(newStylesFlagSet(f), args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	f := &doctorFlags{}
	if err := parseWith(newDoctorFlagSet(f), args); err != nil {
		return nil, err
	}
	return f, nil
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
// main needs it before any command parses its flags.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
