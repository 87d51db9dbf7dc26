// Package tracelog wraps slog.Logger with nil-safe, level-guarded helpers.
package tracelog

import (
	"context"
	"log/slog"
)

// LevelTrace is a custom log level more verbose than Debug, used for
// per-element output (each variable, each ignored element).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

var ctx = context.Background()

// Logger is a possibly-nil slog.Logger. The zero value discards everything.
type Logger struct {
	L *slog.Logger
}

// For returns a Logger tagged with the given component, or a discarding
// Logger if base is nil.
func For(base *slog.Logger, component string) Logger {
	if base == nil {
		return Logger{}
	}
	return Logger{L: base.With(slog.String("component", component))}
}

// Enabled returns true if logging is enabled at the given level.
func (l Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log emits a log message if logging is enabled.
func (l Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.Enabled(level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

// TraceEnabled returns true if trace-level logging is enabled.
func (l Logger) TraceEnabled() bool { return l.Enabled(LevelTrace) }

// Trace emits a trace-level log.
func (l Logger) Trace(msg string, attrs ...slog.Attr) { l.Log(LevelTrace, msg, attrs...) }

// Debug emits a debug-level log.
func (l Logger) Debug(msg string, attrs ...slog.Attr) { l.Log(slog.LevelDebug, msg, attrs...) }
