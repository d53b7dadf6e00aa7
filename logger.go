package containers

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with container-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelWarn).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes logfmt-style records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output. Every level is
// disabled, so the Log* helpers return before building attributes.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithContainer adds a container name field to the logger.
func (l *Logger) WithContainer(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("container", name),
	}
}

// debugEnabled keeps attribute construction off the hot path. The helpers
// below accept a nil *Logger so zero-value containers need no setup.
func (l *Logger) debugEnabled() bool {
	return l != nil && l.Enabled(context.Background(), slog.LevelDebug)
}

// LogPoolMiss logs that a value had to be constructed because the recycling
// pool was empty.
func (l *Logger) LogPoolMiss(live int) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("recycling pool empty, constructing value",
		"live", live,
	)
}

// LogParked logs a bulk reset-and-park, e.g. from Clear.
func (l *Logger) LogParked(parked, pooled int) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("values reset and parked",
		"parked", parked,
		"pooled", pooled,
	)
}

// LogCapacityExceeded logs a rejected insert into a fixed-capacity store.
func (l *Logger) LogCapacityExceeded(capacity int) {
	if l == nil {
		return
	}
	l.Warn("fixed capacity exceeded",
		"capacity", capacity,
	)
}
