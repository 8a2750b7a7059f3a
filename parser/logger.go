package parser

import (
	"context"
	"log/slog"
)

// Logger is the interface that cogenitor uses for structured logging.
//
// The interface is designed to be minimal yet compatible with popular logging
// libraries including log/slog, zap, and zerolog. It uses variadic key-value
// pairs for structured attributes, following the same convention as log/slog.
//
// Implementations should treat attrs as alternating key-value pairs:
//
//	logger.Debug("resolved reference", "ref", "#/components/schemas/Pet")
//
// # Usage with log/slog
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger:
//
//	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := parser.NewSlogAdapter(slog.New(handler))
//
//	doc, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.yaml"),
//	    parser.WithLogger(logger),
//	)
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for potentially problematic situations.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for failures.
	Error(msg string, attrs ...any)

	// With returns a Logger that includes the given attributes in all
	// subsequent log records.
	With(attrs ...any) Logger
}

// slogAdapter adapts a *slog.Logger to the Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps a standard library slog.Logger so it can be used
// anywhere cogenitor accepts a Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &slogAdapter{logger: logger}
}

func (a *slogAdapter) Debug(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) Info(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) Warn(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) Error(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) With(attrs ...any) Logger {
	return &slogAdapter{logger: a.logger.With(attrs...)}
}

// argsToAttrs converts alternating key-value pairs to slog.Attr values.
// A trailing key without a value is paired with the empty string.
func argsToAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		var value any
		if i+1 < len(args) {
			value = args[i+1]
		} else {
			value = ""
		}
		attrs = append(attrs, slog.Any(key, value))
	}
	return attrs
}

// noopLogger discards all log records. It is the default when no logger is
// configured.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}
