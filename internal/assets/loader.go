package assets

import (
	"fmt"
	"strings"
)

// styleExt is the file extension of style files.
const styleExt = ".css"

// maxStyleNameLen bounds style names.
const maxStyleNameLen = 64

// StyleLoader loads CSS styles by name.
type StyleLoader interface {
	// LoadStyle returns the CSS for name (without extension).
	// Returns ErrStyleNotFound or ErrInvalidStyleName.
	LoadStyle(name string) (string, error)

	// Styles lists the available style names, sorted.
	Styles() []string
}

// ValidateStyleName checks that a style name is safe to use as a file name.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStyleName)
	}
	if len(name) > maxStyleNameLen {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidStyleName, maxStyleNameLen)
	}
	if strings.ContainsAny(name, "/\\.\x00") || strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
	}
	return nil
}
