// Package util provides low-level helpers shared by all other packages.
package util

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/pwntr/tinter"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// levelVerbose sits between slog's Debug and Info levels.
const levelVerbose = slog.Level(-2)

// Logger writes levelled messages to stderr through slog.  A terminal
// sink gets tinter's coloured output, anything else plain text records.
// A nil *Logger is a valid no-op receiver.
type Logger struct {
	level      LogLevel
	output     io.Writer
	mu         sync.Mutex
	timestamps bool
	slog       *slog.Logger
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	l := &Logger{
		level:      LogLevel(verbosity),
		output:     os.Stderr,
		timestamps: verbosity >= 3, // auto-enable timestamps in debug mode
	}
	l.rebuild()
	return l
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timestamps = on
	l.rebuild()
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints when verbosity ≥ 1.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.enabled(LogNormal) {
		l.write(slog.LevelInfo, format, args...)
	}
}

// Warn prints when verbosity ≥ 1.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.enabled(LogNormal) {
		l.write(slog.LevelWarn, format, args...)
	}
}

// Verbose prints when verbosity ≥ 2.
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.enabled(LogVerbose) {
		l.write(levelVerbose, format, args...)
	}
}

// Debug prints when verbosity ≥ 3.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.enabled(LogDebug) {
		l.write(slog.LevelDebug, format, args...)
	}
}

// Error always prints regardless of verbosity.
func (l *Logger) Error(format string, args ...interface{}) {
	if l != nil {
		l.write(slog.LevelError, format, args...)
	}
}

// enabled reports whether messages at lv are printed.  A nil Logger
// prints nothing.
func (l *Logger) enabled(lv LogLevel) bool {
	return l != nil && l.level >= lv
}

func (l *Logger) write(level slog.Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// rebuild swaps the slog handler after an output or timestamp change.
// Callers hold l.mu (or own l exclusively).
func (l *Logger) rebuild() {
	var h slog.Handler
	if IsTerminal(l.output) {
		h = tinter.NewHandler(l.output, tintOptions(l.timestamps))
	} else {
		timestamps := l.timestamps
		h = slog.NewTextHandler(l.output, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if !timestamps && isTime(groups, a) {
					return slog.Attr{}
				}
				if a.Key == slog.LevelKey && a.Value.Any() == levelVerbose {
					return slog.String(slog.LevelKey, "VERBOSE")
				}
				return a
			},
		})
	}
	l.slog = slog.New(h)
}

// tintOptions configures tinter for a terminal.  tinter prints a time
// even with an empty TimeFormat, so the attribute is dropped instead.
func tintOptions(timestamps bool) *tinter.Options {
	opts := &tinter.Options{Level: slog.LevelDebug, TimeFormat: "15:04:05.000"}
	if !timestamps {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if isTime(groups, a) {
				return slog.Attr{}
			}
			return a
		}
	}
	return opts
}

func isTime(groups []string, a slog.Attr) bool {
	return len(groups) == 0 && a.Key == slog.TimeKey
}
