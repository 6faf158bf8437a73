package main

import (
	"io"
	"log/slog"
	"os"
)

// newLogger builds the process logger from OPENSSG_DEBUG and OPENSSG_LOG_FORMAT.
// It does not set the global logger.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("OPENSSG_DEBUG") != "" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if os.Getenv("OPENSSG_LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
