// Package logger builds the structured slog loggers used by the commands.
// Logs go to a separate writer (stderr in the commands) so that stdout
// carries only program output.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// RunIDKey is the attribute that ties together all log lines of one run.
const RunIDKey = "run_id"

// Options configures the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ParseLevel parses a string into a slog.Level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		// JSON формат для production (лучше для агрегаторов логов)
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// WithRunID returns a logger tagged with a fresh run ID, and the ID itself.
func WithRunID(l *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()
	return l.With(slog.String(RunIDKey, id)), id
}

// Err creates an error attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}
