// SPDX-License-Identifier: MIT

// Package logging holds the leveled logger shared by the lvgeom packages.
//
// Every package keeps its own *Logger (so callers can route the matrix engine
// and the RANSAC detector to different sinks) but all of them start from
// Default(): a text handler on stderr at Warn level.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with the component field used across lvgeom.
type Logger struct {
	*slog.Logger
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewTextLogger(slog.LevelWarn))
}

// New wraps l. A nil l yields the package default.
func New(l *slog.Logger) *Logger {
	if l == nil {
		return Default()
	}

	return &Logger{Logger: l}
}

// NewTextLogger creates a Logger that writes human-readable lines to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Default returns the process-wide fallback logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide fallback logger; nil restores the stderr one.
func SetDefault(l *slog.Logger) {
	if l == nil {
		defaultLogger.Store(NewTextLogger(slog.LevelWarn))
		return
	}
	defaultLogger.Store(&Logger{Logger: l})
}

// Component tags every record with the emitting package.
func (l *Logger) Component(name string) *Logger {
	return &Logger{Logger: l.Logger.With("component", name)}
}

// Holder is an atomically swappable logger slot used for package-level loggers.
type Holder struct {
	name string
	p    atomic.Pointer[Logger]
}

// NewHolder returns a slot that falls back to Default() tagged with name until Set is called.
func NewHolder(name string) *Holder {
	return &Holder{name: name}
}

// Get returns the configured logger or the tagged default.
func (h *Holder) Get() *Logger {
	if l := h.p.Load(); l != nil {
		return l
	}

	return Default().Component(h.name)
}

// Set installs l; nil reverts to the default.
func (h *Holder) Set(l *slog.Logger) {
	if l == nil {
		h.p.Store(nil)
		return
	}
	h.p.Store(New(l).Component(h.name))
}
