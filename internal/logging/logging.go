// Package logging builds the application's slog logger
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// New returns a slog logger writing human-readable records to w through a
// charmbracelet/log handler. Only warnings and errors are emitted unless
// verbose is set, in which case debug records are shown too.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: verbose,
		Prefix:          "todo",
	})

	return slog.New(handler)
}

// Init builds a logger with New and installs it as the slog default so
// package-level slog calls share the same output.
func Init(w io.Writer, verbose bool) *slog.Logger {
	logger := New(w, verbose)
	slog.SetDefault(logger)
	return logger
}
