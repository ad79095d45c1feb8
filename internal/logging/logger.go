// Package logging builds the slog loggers used across the module. The
// engine takes any *slog.Logger from the host; these constructors only
// serve the defaults and the CLI.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level. The "error"
// attribute key is shortened to "err" so lines stay grep-consistent no
// matter which package emitted them.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: shortenErrorKey,
	}))
}

// NewNop returns a logger that discards everything. It is the engine's
// default, so hosts that pass no logger pay nothing.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func shortenErrorKey(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}
