// Package logrus adapts github.com/sirupsen/logrus to the domain Logger contract.
package logrus

import (
	"fmt"
	"io"

	"github.com/ochairo/xercesdist/internal/domain/interfaces"
	"github.com/sirupsen/logrus"
)

// Options configures a Logger
type Options struct {
	Level  string // panic, fatal, error, warn, info, debug, trace
	Format string // "text" or "json"
	Output io.Writer
}

// Logger implements interfaces.Logger on top of a logrus logger
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger; an unknown level is an error
func NewLogger(opts Options) (*Logger, error) {
	l := logrus.New()

	if opts.Output != nil {
		l.SetOutput(opts.Output)
	}

	switch opts.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format: %s", opts.Format)
	}

	level := logrus.WarnLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	l.SetLevel(level)

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.with(fields).Debug(msg)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.with(fields).Info(msg)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.with(fields).Warn(msg)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.with(fields).Error(msg)
}

func (l *Logger) with(fields []interfaces.Field) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return l.entry.WithFields(data)
}
