// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// ParseIDKey is the context key for parse correlation IDs.
	ParseIDKey ContextKey = "parse_id"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Initialize with a default logger (JSON format, Info level)
	InitLogger(LevelInfo, FormatJSON)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// ParseLevel converts a level name (debug, info, warn, error) to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// ParseFormat converts a format name (json, text) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return FormatJSON, fmt.Errorf("unknown log format %q", name)
}

// InitLogger initializes the global logger with the specified level and format.
// Logs go to stderr so command output on stdout stays clean.
func InitLogger(level Level, format Format) {
	InitLoggerTo(os.Stderr, level, format)
}

// InitLoggerTo initializes the global logger writing to w.
func InitLoggerTo(w io.Writer, level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// WithParseID adds a parse correlation ID to the context.
func WithParseID(ctx context.Context, parseID string) context.Context {
	return context.WithValue(ctx, ParseIDKey, parseID)
}

// GetParseID retrieves the parse correlation ID from the context.
func GetParseID(ctx context.Context) string {
	if parseID, ok := ctx.Value(ParseIDKey).(string); ok {
		return parseID
	}
	return ""
}

// LoggerFromContext returns a logger with context values attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := defaultLogger
	if parseID := GetParseID(ctx); parseID != "" {
		logger = logger.With("parse_id", parseID)
	}
	return logger
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// DebugContext logs a debug message with context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Debug(msg, args...)
}

// ParseStarted logs the start of a score parse.
func ParseStarted(ctx context.Context, name string, size int, args ...any) {
	allArgs := []any{
		"source", name,
		"bytes", size,
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Debug("parse_started", allArgs...)
}

// ParseCompleted logs a successful score parse.
func ParseCompleted(ctx context.Context, name string, staves int, duration time.Duration, args ...any) {
	allArgs := []any{
		"source", name,
		"staves", staves,
		"duration_ms", duration.Milliseconds(),
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("parse_completed", allArgs...)
}

// ParseFailed logs a failed score parse.
func ParseFailed(ctx context.Context, name string, err error, args ...any) {
	allArgs := []any{
		"source", name,
		"error", err.Error(),
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Error("parse_failed", allArgs...)
}

// VoiceTruncated logs a staff whose voices were cut to a common length.
// A nil logger uses the global logger.
func VoiceTruncated(logger *slog.Logger, staff, kept int, lengths []int) {
	if logger == nil {
		logger = defaultLogger
	}
	logger.Warn("voice_truncated",
		"staff", staff,
		"kept", kept,
		"lengths", lengths,
	)
}
