// Package logger provides a configured zerolog instance.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/ilindan-dev/channel-notifier/internal/config"
	"github.com/rs/zerolog"
)

// RequestIDField is the log field that carries the id of the request being served.
const RequestIDField = "request_id"

type requestIDKey struct{}

// NewLogger creates a new configured instance of zerolog.Logger.
// It reads the log level and format from the config and adds default fields like service name and caller.
func NewLogger(cfg *config.Config) (*zerolog.Logger, error) {
	var out io.Writer = os.Stderr
	if cfg.Logger.Format != "json" {
		// For local development, a pretty console output is much more readable.
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return newLogger(cfg, out), nil
}

func newLogger(cfg *config.Config, out io.Writer) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil || cfg.Logger.Level == "" {
		// Default to info level if config is invalid or missing
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(out).With().
		Timestamp().                        // Adds "time" field
		Str("service", "channel-notifier"). // Adds "service" field for context
		Caller().                           // Adds "caller":"/path/to/file.go:line"
		Logger().
		Level(level) // Set the minimum log level

	return &logger
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, or "" when there is none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext annotates l with the request id found in ctx, if any.
func FromContext(ctx context.Context, l zerolog.Logger) zerolog.Logger {
	id := RequestID(ctx)
	if id == "" {
		return l
	}
	return l.With().Str(RequestIDField, id).Logger()
}
