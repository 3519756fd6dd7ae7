package main

import (
	"errors"
	"os"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/config"
)

// Exit codes for txt2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error, failed conversions, check mismatches
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrInvalidPreviewStyle) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, txt2md.ErrUnsupportedFormat) ||
		errors.Is(err, txt2md.ErrFileTooLarge) ||
		errors.Is(err, txt2md.ErrStyleNotFound) ||
		errors.Is(err, txt2md.ErrInvalidStyleName) ||
		errors.Is(err, txt2md.ErrInvalidAssetPath) ||
		errors.Is(err, txt2md.ErrInvalidDateFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
