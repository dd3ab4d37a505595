// Package clipboard provides access to the platform clipboard of the
// local machine through a narrow read/write/clear contract.
//
// Two backends are wired:
//
//	command: github.com/atotto/clipboard (xclip/xsel/wl-copy, pbcopy, Win32)
//	native:  golang.design/x/clipboard (cgo, in-process)
//
// On Linux the command backend goes first: an X11 selection written
// in-process disappears when bclip exits, while xclip keeps serving it.
package clipboard

import (
	"fmt"
	"runtime"
	"sync"

	atotto "github.com/atotto/clipboard"
	native "golang.design/x/clipboard"

	errs "bclip/internal/errors"
	"bclip/util"
)

// Provider is what the dispatcher needs from a local clipboard.
type Provider interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Clear() error
}

// backend is one way of reaching the platform clipboard.
type backend interface {
	Name() string
	Available() bool
	Read() ([]byte, error)
	Write(data []byte) error
}

// System is the Provider backed by the first available backend.
type System struct {
	backends []backend
	logger   *util.Logger
}

// New returns the System clipboard with platform-appropriate backend
// order.  Backends are checked lazily, on first use.
func New(logger *util.Logger) *System {
	cmd, nat := &commandBackend{}, &nativeBackend{}
	order := []backend{nat, cmd}
	if runtime.GOOS == "linux" {
		order = []backend{cmd, nat}
	}
	return &System{backends: order, logger: logger}
}

func (s *System) pick() (backend, error) {
	for _, b := range s.backends {
		if b.Available() {
			s.logger.Verbose("local clipboard backend: %s", b.Name())
			return b, nil
		}
		s.logger.Debug("clipboard backend %s unavailable", b.Name())
	}
	return nil, fmt.Errorf("%w: no clipboard backend (install xclip, xsel or wl-clipboard, or run with a display)",
		errs.ErrUnavailable)
}

// Read returns the clipboard text.  An empty clipboard is
// ErrClipboardEmpty.
func (s *System) Read() ([]byte, error) {
	b, err := s.pick()
	if err != nil {
		return nil, err
	}
	data, err := b.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s read: %v", errs.ErrUnavailable, b.Name(), err)
	}
	if len(data) == 0 {
		return nil, errs.ErrClipboardEmpty
	}
	return data, nil
}

// Write replaces the clipboard text with data.
func (s *System) Write(data []byte) error {
	b, err := s.pick()
	if err != nil {
		return err
	}
	if err := b.Write(data); err != nil {
		return fmt.Errorf("%w: %s write: %v", errs.ErrUnavailable, b.Name(), err)
	}
	return nil
}

// Clear empties the clipboard by writing empty text.
func (s *System) Clear() error {
	return s.Write(nil)
}

// ── command backend ──────────────────────────────────────────────────

type commandBackend struct{}

func (commandBackend) Name() string { return "command" }

// Available is false on Linux when none of xclip, xsel, wl-copy,
// termux-clipboard-set is on PATH.
func (commandBackend) Available() bool { return !atotto.Unsupported }

func (commandBackend) Read() ([]byte, error) {
	s, err := atotto.ReadAll()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (commandBackend) Write(data []byte) error {
	return atotto.WriteAll(string(data))
}

// ── native backend ───────────────────────────────────────────────────

type nativeBackend struct {
	once    sync.Once
	initErr error
}

func (*nativeBackend) Name() string { return "native" }

// Available initialises the native clipboard once.  Init fails on
// headless hosts and in CGO_ENABLED=0 builds.
func (b *nativeBackend) Available() bool {
	b.once.Do(func() { b.initErr = native.Init() })
	return b.initErr == nil
}

func (*nativeBackend) Read() ([]byte, error) {
	return native.Read(native.FmtText), nil
}

func (*nativeBackend) Write(data []byte) error {
	native.Write(native.FmtText, data)
	return nil
}
