package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger creates a logger with a per-invocation request id, the way a
// server handler tags a request so its log lines can be correlated.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return logger.With("request_id", uuid.NewString())
}
