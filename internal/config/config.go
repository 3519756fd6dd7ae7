package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/assets"
	"github.com/alnah/go-txt2md/internal/dateutil"
	"github.com/alnah/go-txt2md/internal/fileutil"
	"github.com/alnah/go-txt2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "txt2md"

// appDir is the directory under the user config home.
const appDir = "go-txt2md"

// Field limits.
const (
	MaxWorkers      = 32
	MaxPathLength   = 4096
	MaxStyleLength  = 4096 // names, paths
	MaxAuthorLength = 100
	MaxDateLength   = 60 // "auto:dddd, MMMM D, YYYY [at] HH:mm"
	MaxTags         = 20
	MaxTagLength    = 50
)

var configExtensions = []string{".yaml", ".yml"}

// Config holds the CLI configuration file.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Format      FormatConfig      `yaml:"format"`
	HTML        HTMLConfig        `yaml:"html"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
	Workers     int               `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
}

// FormatConfig toggles formatter passes. Unset fields keep the defaults.
type FormatConfig struct {
	Headings           *bool `yaml:"headings"`
	Lists              *bool `yaml:"lists"`
	CodeBlocks         *bool `yaml:"codeBlocks"`
	Links              *bool `yaml:"links"`
	PreserveWhitespace *bool `yaml:"preserveWhitespace"`
	Force              *bool `yaml:"force"` // format even text that looks like Markdown
}

// HTMLConfig defines HTML output options.
type HTMLConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Style     string `yaml:"style"`     // style name or CSS file path (empty = default)
	AssetPath string `yaml:"assetPath"` // directory of custom styles (empty = built-in only)
}

// FrontMatterConfig defines YAML front matter added to converted files.
type FrontMatterConfig struct {
	Enabled bool     `yaml:"enabled"`
	Author  string   `yaml:"author"`
	Date    string   `yaml:"date"` // literal, "auto" or "auto:FORMAT"
	Tags    []string `yaml:"tags"`
}

// Options merges the format section over the library defaults.
func (f FormatConfig) Options() txt2md.Options {
	opts := txt2md.DefaultOptions()
	opts.DetectHeadings = boolOr(f.Headings, opts.DetectHeadings)
	opts.DetectLists = boolOr(f.Lists, opts.DetectLists)
	opts.DetectCodeBlocks = boolOr(f.CodeBlocks, opts.DetectCodeBlocks)
	opts.DetectLinks = boolOr(f.Links, opts.DetectLinks)
	opts.PreserveWhitespace = boolOr(f.PreserveWhitespace, opts.PreserveWhitespace)
	return opts
}

// ForceFormat reports whether format.force is set to true.
func (f FormatConfig) ForceFormat() bool {
	return boolOr(f.Force, false)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Validate checks field ranges and lengths.
// Called automatically by LoadConfig, but available for callers
// that construct Config manually.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Input),
		validation.Field(&c.Output),
		validation.Field(&c.HTML),
		validation.Field(&c.FrontMatter),
		validation.Field(&c.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (i InputConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.DefaultDir, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.DefaultDir, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (h HTMLConfig) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Style,
			validation.Length(0, MaxStyleLength),
			validation.By(validateStyle),
		),
		validation.Field(&h.AssetPath, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (f FrontMatterConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Author, validation.Length(0, MaxAuthorLength)),
		validation.Field(&f.Date,
			validation.Length(0, MaxDateLength),
			validation.By(validateDate),
		),
		validation.Field(&f.Tags,
			validation.Length(0, MaxTags),
			validation.Each(validation.Length(0, MaxTagLength)),
		),
	)
}

// validateStyle accepts a CSS file path or a valid style name.
func validateStyle(value interface{}) error {
	s, _ := value.(string)
	if s == "" || fileutil.IsFilePath(s) {
		return nil
	}
	return assets.ValidateStyleName(s)
}

// validateDate rejects malformed "auto:" formats. Literal dates pass.
func validateDate(value interface{}) error {
	s, _ := value.(string)
	_, err := dateutil.ResolveDate(s, time.Time{})
	return err
}

// DefaultConfig returns a configuration that keeps every library default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// the current directory, then $XDG_CONFIG_HOME/go-txt2md/.
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(configExtensions)*2) // 2 locations
	for _, ext := range configExtensions {
		paths = append(paths, name+ext)
	}
	for _, ext := range configExtensions {
		paths = append(paths, filepath.Join(xdg.ConfigHome, appDir, name+ext))
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
