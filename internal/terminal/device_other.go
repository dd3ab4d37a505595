//go:build !unix

package terminal

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"

	errs "bclip/internal/errors"
)

// TTY is the process's controlling terminal.  Clipboard queries need a
// pollable descriptor and are not available on this platform.
type TTY struct {
	In  *os.File
	Out io.Writer
}

// NewTTY returns a Device reading from in and writing to out.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{In: in, Out: out}
}

func (t *TTY) Write(p []byte) (int, error) { return t.Out.Write(p) }

func (t *TTY) IsTerminal() bool {
	return t.In != nil && term.IsTerminal(int(t.In.Fd()))
}

func (t *TTY) MakeRaw() (func() error, error) {
	return nil, errs.ErrUnsupported
}

func (t *TTY) ReadTimeout(_ []byte, _ time.Duration) (int, error) {
	return 0, errs.ErrUnsupported
}

func (t *TTY) DiscardInput() error { return nil }
