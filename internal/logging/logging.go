// Package logging builds the slog loggers shared by the CLI and the API
// server. Logs go to stderr; stdout belongs to charts, tables and JSON output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported output formats. Unknown formats fall back to text.
const (
	FormatText = "text"
	FormatJSON = "json"
)

func NewLogger(level slog.Level, format string) *slog.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

func NewLoggerWithWriter(level slog.Level, format string, w io.Writer) *slog.Logger {
	return slog.New(newHandler(w, format, &slog.HandlerOptions{Level: level}))
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, FormatJSON) {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel accepts slog level names in any case, offsets such as "warn+2",
// and "warning". Anything else is info.
func ParseLevel(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ErrAttr wraps an error as a log attribute.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
