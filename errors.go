package txt2md

import (
	"errors"

	"github.com/alnah/go-txt2md/internal/assets"
	"github.com/alnah/go-txt2md/internal/dateutil"
	"github.com/alnah/go-txt2md/internal/extract"
	"github.com/alnah/go-txt2md/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrMissingFilename = errors.New("filename cannot be empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrHTMLConversion  = pipeline.ErrHTMLConversion

	// Extraction errors.
	ErrUnsupportedFormat = extract.ErrUnsupportedFormat
	ErrBinaryContent     = extract.ErrBinaryContent
	ErrInvalidEncoding   = extract.ErrInvalidEncoding
	ErrCorruptDocument   = extract.ErrCorruptDocument

	// Style loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidStyleName = assets.ErrInvalidStyleName
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Front matter errors.
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat
)
