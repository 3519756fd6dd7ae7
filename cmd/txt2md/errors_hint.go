package main

import (
	"errors"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/assets"
	"github.com/alnah/go-txt2md/internal/config"
	"github.com/alnah/go-txt2md/internal/extract"
	"github.com/alnah/go-txt2md/internal/hints"
)

// hintFor returns an actionable hint for known errors, or "".
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, txt2md.ErrUnsupportedFormat):
		return hints.ForUnsupportedFormat(extract.NewRegistry().SupportedExtensions())
	case errors.Is(err, txt2md.ErrBinaryContent):
		return hints.ForBinaryContent()
	case errors.Is(err, txt2md.ErrFileTooLarge):
		return hints.ForFileTooLarge(txt2md.DefaultMaxInputSize)
	case errors.Is(err, txt2md.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Styles())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
