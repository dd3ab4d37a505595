// Package terminal performs the scoped terminal-mode changes needed to
// move OSC 52 sequences safely: auto-wrap suppression around clipboard
// writes and raw input mode around clipboard queries.
//
// Every change is taken through a guard whose Release runs on all exit
// paths, so a failed invocation never leaves the terminal altered.
package terminal

import (
	"io"
	"sync"
	"time"

	errs "bclip/internal/errors"
)

// DECAWM toggles.  Legacy console hosts (conhost.exe) insert line breaks
// into long escape sequences while auto-wrap is on.
var (
	wrapOff = []byte("\x1b[?7l")
	wrapOn  = []byte("\x1b[?7h")
)

// Device is an interactive terminal: writes reach the terminal, reads
// come from the keyboard side.
type Device interface {
	io.Writer

	// IsTerminal reports whether the input side is a terminal.
	IsTerminal() bool

	// MakeRaw disables line buffering and echo on the input side and
	// returns a function that restores the previous mode.
	MakeRaw() (restore func() error, err error)

	// ReadTimeout reads into p, waiting at most d for data.  It returns
	// 0, nil when nothing arrived in time and io.EOF once input is gone.
	ReadTimeout(p []byte, d time.Duration) (int, error)

	// DiscardInput drops bytes still queued on the input side, such as
	// a reply that arrived after the query gave up.
	DiscardInput() error
}

// ── Wrap guard ───────────────────────────────────────────────────────

// WrapGuard keeps auto-wrap disabled on w until Release.
type WrapGuard struct {
	w      io.Writer
	active bool
}

// DisableWrap turns auto-wrap off on w.  When enabled is false the guard
// is inert, which keeps call sites free of branches.
func DisableWrap(w io.Writer, enabled bool) (*WrapGuard, error) {
	g := &WrapGuard{w: w}
	if !enabled {
		return g, nil
	}
	if _, err := w.Write(wrapOff); err != nil {
		return nil, err
	}
	g.active = true
	return g, nil
}

// Release re-enables auto-wrap.  Safe to call more than once.
func (g *WrapGuard) Release() error {
	if g == nil || !g.active {
		return nil
	}
	g.active = false
	_, err := g.w.Write(wrapOn)
	return err
}

// ── Raw guard ────────────────────────────────────────────────────────

// RawGuard holds a Device in raw mode until Release.
type RawGuard struct {
	dev     Device
	restore func() error
	once    sync.Once
	err     error
}

// AcquireRaw switches d into raw mode.
func AcquireRaw(d Device) (*RawGuard, error) {
	restore, err := d.MakeRaw()
	if err != nil {
		return nil, err
	}
	return &RawGuard{dev: d, restore: restore}, nil
}

// Release discards pending input, so a late or partial reply never
// reaches the shell, then restores the saved mode.  It runs exactly
// once; later calls return the first result.  The mode is restored
// even when discarding fails.
func (g *RawGuard) Release() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		derr := g.dev.DiscardInput()
		g.err = errs.Join(derr, g.restore())
	})
	return g.err
}
