// Package logger wraps charmbracelet/log for the command-line tools. The
// library packages return errors instead of logging.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is a structured logger with timestamps.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w.
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
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

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}
