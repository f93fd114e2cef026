// Copyright (c) 2026 Robert Clausecker <fuz@fuz.su>

package main

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// newLogger returns a text logger writing to w at info level, or at
// debug level if verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func withLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// loggerFrom returns the logger of ctx, or the default logger.
func loggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}

	return slog.Default()
}
