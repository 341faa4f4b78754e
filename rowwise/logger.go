// SPDX-License-Identifier: MIT

package rowwise

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a structured logger writing to w at the given level.
// A nil w writes to stderr.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a logger that emits JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a logger that discards all output. It is the default.
func NoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
