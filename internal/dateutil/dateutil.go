// Package dateutil resolves front-matter dates written as "auto" or
// "auto:FORMAT" with user-friendly format tokens.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used for a bare "auto".
const DefaultDateFormat = "YYYY-MM-DD"

const autoKeyword = "auto"

// dateTokens maps format tokens to Go layout components, longest first so
// matching is greedy. Tokens are case-sensitive: MM is a month, mm minutes.
var dateTokens = []struct {
	token  string
	layout string
}{
	{"dddd", "Monday"},
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"ddd", "Mon"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named shortcuts for common formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"full":     "dddd, MMMM D, YYYY",
	"datetime": "YYYY-MM-DD HH:mm",
}

// ParseDateFormat converts a token format such as "DD/MM/YYYY" to a Go
// time layout. Text in brackets is literal: "[Week of] MMM D".
// Other characters outside brackets are copied as is.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 10)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			literal, after, found := strings.Cut(rest[1:], "]")
			if !found {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			layout.WriteString(literal)
			rest = after
			continue
		}

		token, goLayout := matchToken(rest)
		if token == "" {
			layout.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		layout.WriteString(goLayout)
		rest = rest[len(token):]
	}

	return layout.String(), nil
}

func matchToken(s string) (token, layout string) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return t.token, t.layout
		}
	}
	return "", ""
}

// ResolveDate expands date values for front matter:
//   - "auto" is the date of t as YYYY-MM-DD
//   - "auto:FORMAT" formats t with FORMAT tokens
//   - "auto:PRESET" formats t with a named preset (iso, european, us, long, full, datetime)
//   - anything else is returned unchanged
//
// The "auto" keyword and preset names are case-insensitive.
func ResolveDate(value string, t time.Time) (string, error) {
	if len(value) < len(autoKeyword) || !strings.EqualFold(value[:len(autoKeyword)], autoKeyword) {
		return value, nil
	}

	format := DefaultDateFormat
	if rest := value[len(autoKeyword):]; rest != "" {
		spec, ok := strings.CutPrefix(rest, ":")
		if !ok {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		if spec == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = spec
		if preset, ok := DatePresets[strings.ToLower(spec)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
