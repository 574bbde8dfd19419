// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Logger construction from config, including an optional rotated log file:
//
//	logger, closer := logging.FromConfig(cfg.Log, os.Stderr)
//	defer closer.Close()
//
// Context propagation (used by middleware to enrich with request metadata):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "donation submission failed",
//	    slog.String("operation", "Donate"),
//	    slog.String("organization_id", org.ID),
//	    slog.Any("error", err),
//	)
//
// Donor emails and webhook credentials are redacted by field name; log them
// under the "email" and "authorization" keys.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jsamuelsen11/donation-service/internal/platform/config"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are "debug",
// "info", "warn", and "error". Unrecognized values default to info.
//
// The format parameter selects the output handler: "text" uses
// slog.NewTextHandler, "console" uses a tint handler with colors when w is a
// terminal, and all other values (including "json") use slog.NewJSONHandler.
//
// When level is "debug", source code location is included in log output.
func New(level, format string, w io.Writer) *slog.Logger {
	return slog.New(newHandler(parseLevel(level), format, w))
}

// newHandler builds the handler for a single sink.
func newHandler(lvl slog.Level, format string, w io.Writer) slog.Handler {
	redact := newRedactAttr()

	var handler slog.Handler
	switch format {
	case "console":
		handler = tint.NewHandler(w, &tint.Options{
			Level:       lvl,
			AddSource:   lvl == slog.LevelDebug,
			ReplaceAttr: redact,
			TimeFormat:  time.TimeOnly,
			NoColor:     !colorEnabled(w),
		})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       lvl,
			AddSource:   lvl == slog.LevelDebug,
			ReplaceAttr: redact,
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       lvl,
			AddSource:   lvl == slog.LevelDebug,
			ReplaceAttr: redact,
		})
	}

	return handler
}

// FromConfig builds a logger from cfg writing to w. When cfg.File is set,
// records are also written as JSON to a size-rotated file, whatever format
// w uses. The returned closer releases the file and is a no-op otherwise.
func FromConfig(cfg config.LogConfig, w io.Writer) (*slog.Logger, io.Closer) {
	if cfg.File == "" {
		return New(cfg.Level, cfg.Format, w), nopCloser{}
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	lvl := parseLevel(cfg.Level)
	logger := slog.New(slogmulti.Fanout(
		newHandler(lvl, cfg.Format, w),
		newHandler(lvl, "json", rotated),
	))

	return logger, rotated
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// colorEnabled reports whether w is a terminal that accepts ANSI colors.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
