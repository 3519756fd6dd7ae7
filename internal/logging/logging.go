// Package logging wraps charm/log with helpers for conversion events.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger at warn level.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.WarnLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// LevelFor maps the CLI verbosity flags to a level.
// Quiet wins over verbose.
func LevelFor(quiet, verbose bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.WarnLevel
	}
}

// ConfigLoaded logs which config file was applied.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// FileConverted logs a written output file.
func (l *Logger) FileConverted(source, dest, format string, formatted bool, duration time.Duration) {
	l.Info("file converted",
		"source", source,
		"dest", dest,
		"format", format,
		"formatted", formatted,
		"duration", duration.Round(time.Millisecond))
}

// FileSkipped logs a file left out of a batch.
func (l *Logger) FileSkipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// ConversionFailed logs the details of a failed file. The CLI reports
// the failure itself; this adds timing for --verbose runs.
func (l *Logger) ConversionFailed(source string, err error, duration time.Duration) {
	l.Debug("conversion failed",
		"source", source,
		"error", err,
		"duration", duration.Round(time.Millisecond))
}

// UnknownEnv warns about a TXT2MD_* variable nothing reads.
func (l *Logger) UnknownEnv(name, suggestion string) {
	if suggestion == "" {
		l.Warn("unknown environment variable", "name", name)
		return
	}
	l.Warn("unknown environment variable",
		"name", name,
		"suggestion", suggestion)
}

// BatchCompleted logs the totals of a batch run.
func (l *Logger) BatchCompleted(succeeded, failed int, duration time.Duration) {
	l.Info("batch completed",
		"succeeded", succeeded,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}
