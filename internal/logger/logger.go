package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields map[string]any

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// NewFile opens (or creates) path for appending and returns a JSON logger writing to it.
// The returned closer must be called once the logger is no longer used.
func NewFile(path string, opts Options) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	opts.Writer = file
	opts.HumanReadable = false
	log, err := New(opts)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return log, file, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), fields).Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), fields).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...Fields) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withFields(event, fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields []Fields) *zerolog.Event {
	for _, set := range fields {
		for key, value := range set {
			event = event.Interface(key, value)
		}
	}
	return event
}
