// SPDX-License-Identifier: MIT

// Package rowwise: functional configuration for the row-wise kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic results: the worker count changes scheduling, never values.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package rowwise

import (
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the maximum number of row chunks processed at once.
	// 1 keeps every kernel on the calling goroutine.
	DefaultWorkers = 1

	// DefaultChunkRows is the number of consecutive rows handed to one worker.
	DefaultChunkRows = 256

	// DefaultRestoreMissing controls RowRankSort's output for missing cells.
	// false ⇒ missing cells appear as +Inf placeholders at the end of the row.
	DefaultRestoreMissing = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "rowwise: WithWorkers: n must be >= 0"
	panicChunkRowsInvalid = "rowwise: WithChunkRows: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers        int          // >= 1 after gatherOptions
	chunkRows      int          // > 0
	restoreMissing bool         // RowRankSort output policy
	logger         *slog.Logger // never nil after gatherOptions
}

// WithWorkers bounds the number of goroutines used to process row chunks.
// n == 0 selects runtime.GOMAXPROCS(0). Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkRows sets how many consecutive rows one worker processes per task.
// Panics when n <= 0.
func WithChunkRows(n int) Option {
	if n <= 0 {
		panic(panicChunkRowsInvalid)
	}

	return func(o *Options) { o.chunkRows = n }
}

// WithRestoreMissing makes RowRankSort write matrix.Missing, instead of
// +Inf, into the trailing cells that came from missing inputs.
func WithRestoreMissing() Option {
	return func(o *Options) { o.restoreMissing = true }
}

// WithInfPlaceholders keeps +Inf placeholders in RowRankSort output (default).
func WithInfPlaceholders() Option {
	return func(o *Options) { o.restoreMissing = false }
}

// WithLogger sets the structured logger. nil restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user options over the defaults and normalizes derived fields.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:        DefaultWorkers,
		chunkRows:      DefaultChunkRows,
		restoreMissing: DefaultRestoreMissing,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}
