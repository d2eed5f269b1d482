// Package logging provides the diagnostic logger. Operator-facing output is
// written by the CLI adapters; this logger goes to stderr and is quiet unless
// --verbose or AUTOCRUD_LOG_LEVEL asks for more.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/example/autocrud/internal/ctxutil"
)

// EnvLevel is the environment variable overriding the log level.
const EnvLevel = "AUTOCRUD_LOG_LEVEL"

// Logger wraps slog.Logger with the run ID of the current invocation.
type Logger struct {
	logger *slog.Logger
	runID  string
}

// New creates a logger writing text records at or above level to w.
// Every record carries a fresh run_id.
func New(w io.Writer, level slog.Level) *Logger {
	runID := uuid.NewString()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler).With("run_id", runID),
		runID:  runID,
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

// Level picks the log level: AUTOCRUD_LOG_LEVEL when set, debug when verbose,
// warnings otherwise.
func Level(verbose bool) slog.Level {
	if v, ok := os.LookupEnv(EnvLevel); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			return level
		}
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// RunID returns the run ID attached to every record.
func (l *Logger) RunID() string {
	return l.runID
}

// WithContext returns ctx carrying the run ID.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return ctxutil.WithRunID(ctx, l.RunID())
}

// With returns a logger with extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), runID: l.runID}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
