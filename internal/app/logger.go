package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/config"
)

// NewLogger creates the process logger on stderr and installs it as the
// slog default.
//
// Format "json" produces structured output; anything else produces text
// with source positions. Level is debug, info, warn or error
// (case-insensitive) and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewCLILogger creates a logger on w for one-shot commands. It does not
// replace the slog default.
func NewCLILogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	return newLogger(w, cfg)
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "bookflow"), slog.String("version", Version))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
