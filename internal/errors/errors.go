// Package errors provides domain-specific error types for bclip.
//
// These types carry structured context (operation, stream, reason) that
// lets the dispatcher map every failure onto exactly one outcome and
// gives the user a better diagnostic than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrNoInput        = errors.New("no input provided (stdin is a terminal)")
	ErrEmptyInput     = errors.New("input is empty")
	ErrBinaryRejected = errors.New("input contains binary data")
	ErrSizeExceeded   = errors.New("payload too large for OSC 52")
	ErrUnavailable    = errors.New("clipboard unavailable")
	ErrClipboardEmpty = errors.New("clipboard is empty")
	ErrNoResponse     = errors.New("terminal did not answer the clipboard query")
	ErrNotTerminal    = errors.New("not a terminal")
	ErrUnsupported    = errors.New("not supported on this platform")
)

// ── Structured error types ───────────────────────────────────────────

// ProtocolError reports a terminal or multiplexer that did not follow the
// OSC 52 query/response convention.
type ProtocolError struct {
	Op     string // "query", "decode"
	Reason string // human-readable explanation
	Err    error  // underlying error (optional)
}

func (e *ProtocolError) Error() string {
	s := fmt.Sprintf("osc52 %s: %s", e.Op, e.Reason)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// IOError represents a failed read or write on one of the process streams.
type IOError struct {
	Op     string // "read", "write"
	Stream string // "stdin", "stdout", "stderr", "tty"
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Stream, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConfigError represents an invalid flag combination or value.
type ConfigError struct {
	Field   string      // flag name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Protocol creates a ProtocolError.
func Protocol(op, reason string, err error) *ProtocolError {
	return &ProtocolError{Op: op, Reason: reason, Err: err}
}

// WrapIO creates an IOError.
func WrapIO(op, stream string, err error) *IOError {
	return &IOError{Op: op, Stream: stream, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsProtocol reports whether err is, or wraps, a ProtocolError.
func IsProtocol(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// IsIO reports whether err is, or wraps, an IOError.
func IsIO(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use bclip/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
