// Package logging provides structured logging for the worldmath tools.
// It wraps Go's standard slog package to provide consistent logging patterns with
// correlation IDs, error context preservation and vector-aware attributes.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-worldmath/pkg/double3"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "WORLDMATH_LOG_LEVEL"

// Logger wraps slog.Logger to provide application-specific logging functionality
// with correlation ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger instance with JSON output to stdout.
// The log level can be controlled via the WORLDMATH_LOG_LEVEL environment variable.
// Valid levels: DEBUG, INFO, WARN, ERROR. Defaults to INFO.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout, getLogLevelFromEnv())
}

// NewLoggerWithWriter creates a Logger writing JSON records at or above level to w.
func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: formatNonFinite,
	})
	return &Logger{slog.New(handler)}
}

// LogWithContext logs a message with automatic correlation ID extraction from context.
// If a correlation ID exists in the context, it will be included in the log entry.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

// VectorAttr returns v as a group attribute with x, y and z members.
func VectorAttr(key string, v double3.Vector) slog.Attr {
	return slog.Group(key,
		slog.Float64("x", v.X),
		slog.Float64("y", v.Y),
		slog.Float64("z", v.Z),
	)
}

type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context.
// If no correlation ID is provided, a new one will be generated.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getLogLevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(LevelEnv))
}

// formatNonFinite renders NaN and Inf float attributes as strings. The JSON
// handler cannot encode them as numbers and would replace the whole value
// with an error marker.
func formatNonFinite(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindFloat64 {
		return a
	}
	f := a.Value.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return slog.String(a.Key, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return a
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
