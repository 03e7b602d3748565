package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface used across craftkit. Library packages take
// one as a dependency so tests can pass NewDisabledLogger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	SetLevel(level slog.Level)
}

// Config holds logger configuration
type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

// Format represents the output format
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

type slogLogger struct {
	logger *slog.Logger
	config Config
	attrs  []any
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &slogLogger{
		logger: slog.New(newHandler(config)),
		config: config,
	}
}

func newHandler(config Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level}
	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}

	if config.Format == FormatJSON {
		return slog.NewJSONHandler(config.Output, opts)
	}
	return slog.NewTextHandler(config.Output, opts)
}

// NewDefaultLogger logs info and above to stderr without timestamps.
func NewDefaultLogger() Logger {
	return NewLogger(Config{Level: slog.LevelInfo, Format: FormatText, Output: os.Stderr})
}

// NewQuietLogger creates a logger that only shows errors
func NewQuietLogger() Logger {
	return NewLogger(Config{Level: slog.LevelError, Format: FormatText, Output: os.Stderr})
}

// NewVerboseLogger creates a logger that shows debug information
func NewVerboseLogger() Logger {
	return NewLogger(Config{Level: slog.LevelDebug, Format: FormatText, Output: os.Stderr})
}

// NewDisabledLogger discards everything. Meant for tests.
func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Format: FormatText, Output: io.Discard})
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a logger with additional attributes
func (l *slogLogger) With(args ...any) Logger {
	attrs := append(append([]any(nil), l.attrs...), args...)
	return &slogLogger{
		logger: l.logger.With(args...),
		config: l.config,
		attrs:  attrs,
	}
}

// SetLevel rebuilds the handler with the new level, keeping attributes.
func (l *slogLogger) SetLevel(level slog.Level) {
	l.config.Level = level
	l.logger = slog.New(newHandler(l.config)).With(l.attrs...)
}

var globalLogger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	return globalLogger
}

func Debug(msg string, args ...any) { globalLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { globalLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { globalLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { globalLogger.Error(msg, args...) }

// NewComponentLogger tags every record with the component name.
func NewComponentLogger(component string) Logger {
	return globalLogger.With("component", component)
}

// NewPluginLogger tags records with the owning plugin, the way server
// consoles prefix plugin output.
func NewPluginLogger(plugin string) Logger {
	return globalLogger.With("component", "plugin", "plugin", plugin)
}
