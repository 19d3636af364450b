package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface used across quakecast. It wraps slog.Logger
// so components can take a logger without depending on a handler.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// Wrap adapts an existing slog.Logger.
func Wrap(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

// New builds a logger for the named format: pretty, json, text, or auto
// (pretty on a terminal, text otherwise). Unknown formats fall back to auto.
func New(format string, w io.Writer, level slog.Level) Logger {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSON(w, level)
	case "text":
		return Text(w, level)
	case "pretty":
		return Pretty(w, level)
	default:
		if IsTerminal(w) {
			return Pretty(w, level)
		}
		return Text(w, level)
	}
}

// Default logs warnings and errors as text to stderr. Standard output is
// reserved for command results.
func Default() Logger {
	return Text(os.Stderr, slog.LevelWarn)
}

// Discard drops every record.
func Discard() Logger {
	return Wrap(slog.New(slog.DiscardHandler))
}

func JSON(w io.Writer, level slog.Level) Logger {
	return Wrap(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

func Text(w io.Writer, level slog.Level) Logger {
	return Wrap(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Pretty writes colored output when w is a terminal and plain text otherwise.
func Pretty(w io.Writer, level slog.Level) Logger {
	return Wrap(slog.New(NewPrettyHandler(w, level, IsTerminal(w))))
}

type loggerKey struct{}

// WithContext stores the logger in ctx.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx, or Default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Default()
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

func (s *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{l: s.l.WithGroup(name)}
}

// ParseLevel maps a level name to slog.Level. Matching is case-insensitive;
// unknown names yield fallback.
func ParseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
