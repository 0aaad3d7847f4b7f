// Package log configures the default slog logger and allows passing a
// logger through a context.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Debug controls the log level of the default logger. It has to be set
// before InitializeDefaultLogger is called.
var Debug bool

type loggerCtxKey struct{}

// InitializeDefaultLogger sets up the process-wide logger. Logs go to
// stderr because stdout carries the scrape result document.
func InitializeDefaultLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
