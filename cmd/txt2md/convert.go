package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/config"
	"github.com/alnah/go-txt2md/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrNoFiles          = errors.New("no supported files found")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrConversionFailed = errors.New("conversion failed")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	metadata *txt2md.Metadata // nil = no front matter
	html     bool
	logger   *logging.Logger
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positionalArgs, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	logger := logging.NewWithLevel(env.Stderr, logging.LevelFor(flags.common.quiet, flags.common.verbose))

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadSettings(flags.common.config, logger)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve "auto" date once for entire batch
	metadata, err := buildMetadata(flags.frontMatter, cfg, env.Now)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, outputDir, conv.Supports, logger)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, inputPath)
	}

	params := &conversionParams{
		metadata: metadata,
		html:     cfg.HTML.Enabled,
		logger:   logger,
	}

	start := time.Now()
	results := convertBatch(ctx, conv, resolveWorkers(cfg.Workers), files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	logger.BatchCompleted(len(results)-failedCount, failedCount, time.Since(start))
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failedCount, len(results))
	}

	return nil
}

// loadSettings reads environment variables and the config file.
// An explicit config (flag, then TXT2MD_CONFIG) must exist; the default
// config name is optional.
func loadSettings(configFlag string, logger *logging.Logger) (*config.Config, error) {
	warnUnknownEnvVars(logger)
	env := loadEnvConfig()

	name, required := configName(configFlag, env)
	cfg, err := config.LoadConfig(name)
	switch {
	case err == nil:
		logger.ConfigLoaded(name)
	case !required && errors.Is(err, config.ErrConfigNotFound):
		cfg = config.DefaultConfig()
	default:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// configName picks the config to load: the flag, then TXT2MD_CONFIG, then
// the optional default name.
func configName(configFlag string, env *envConfig) (name string, required bool) {
	switch {
	case configFlag != "":
		return configFlag, true
	case env.ConfigPath != "":
		return env.ConfigPath, true
	default:
		return config.DefaultName, false
	}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	mergeFormatFlags(flags.format, &cfg.Format)

	// HTML flags
	if flags.html.enabled {
		cfg.HTML.Enabled = true
	}
	if flags.html.style != "" {
		cfg.HTML.Style = flags.html.style
	}
	if flags.html.assetPath != "" {
		cfg.HTML.AssetPath = flags.html.assetPath
	}

	// Front matter flags (any metadata flag enables it)
	fm := flags.frontMatter
	if fm.enabled || fm.hasMetadata() {
		cfg.FrontMatter.Enabled = true
	}
	if fm.author != "" {
		cfg.FrontMatter.Author = fm.author
	}
	if fm.date != "" {
		cfg.FrontMatter.Date = fm.date
	}
	if len(fm.tags) > 0 {
		cfg.FrontMatter.Tags = fm.tags
	}

	if flags.workersSet {
		cfg.Workers = flags.workers
	}
}

// mergeFormatFlags applies --no-* and related flags. Unset flags keep
// the config value.
func mergeFormatFlags(f formatFlags, cfg *config.FormatConfig) {
	off, on := false, true
	if f.noHeadings {
		cfg.Headings = &off
	}
	if f.noLists {
		cfg.Lists = &off
	}
	if f.noCode {
		cfg.CodeBlocks = &off
	}
	if f.noLinks {
		cfg.Links = &off
	}
	if f.preserveWhitespace {
		cfg.PreserveWhitespace = &on
	}
	if f.force {
		cfg.Force = &on
	}
}

// buildMetadata creates the front matter shared by every file of a batch.
// Title and ID come from flags only: the title defaults to each file's
// first heading and "auto" IDs differ per file.
func buildMetadata(flags frontMatterFlags, cfg *config.Config, now func() time.Time) (*txt2md.Metadata, error) {
	if !cfg.FrontMatter.Enabled {
		return nil, nil
	}

	date, err := txt2md.ResolveDate(cfg.FrontMatter.Date, now())
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &txt2md.Metadata{
		Title:  flags.title,
		Author: cfg.FrontMatter.Author,
		Date:   date,
		Tags:   cfg.FrontMatter.Tags,
		ID:     flags.id,
	}, nil
}

// newConverter builds the library converter from the merged config.
func newConverter(cfg *config.Config) (*txt2md.Converter, error) {
	opts := []txt2md.Option{
		txt2md.WithFormatOptions(cfg.Format.Options()),
		txt2md.WithForceFormat(cfg.Format.ForceFormat()),
		txt2md.WithAssetPath(cfg.HTML.AssetPath),
	}
	if cfg.HTML.Enabled {
		opts = append(opts,
			txt2md.WithHTML(true),
			txt2md.WithStyle(cfg.HTML.Style),
		)
	}
	return txt2md.NewConverter(opts...)
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
