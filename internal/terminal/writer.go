package terminal

import (
	"io"

	errs "bclip/internal/errors"
	"bclip/util"
)

// Stream is a named output sink.
type Stream struct {
	Name string
	W    io.Writer
}

// Writer delivers escape sequences to the terminal.  Out is tried first;
// if writing there fails, Fallback gets exactly one more attempt.
type Writer struct {
	Out       Stream
	Fallback  Stream
	WrapGuard bool
	Logger    *util.Logger
}

// Send writes seq, bracketed by the wrap guard, to Out or Fallback.
// Fallback is only tried when the sequence itself did not reach Out; a
// failure to re-enable auto-wrap afterwards is returned as is, since
// replaying the sequence would set the clipboard twice.
func (w *Writer) Send(seq []byte) error {
	sent, err := w.sendTo(w.Out, seq)
	if err == nil || sent {
		return err
	}
	if w.Fallback.W == nil {
		return err
	}

	w.Logger.Warn("write to %s failed (%v), retrying on %s", w.Out.Name, err, w.Fallback.Name)
	if _, ferr := w.sendTo(w.Fallback, seq); ferr != nil {
		return errs.Join(err, ferr)
	}
	return nil
}

// sendTo reports whether seq was written, independently of the guard
// release result.
func (w *Writer) sendTo(s Stream, seq []byte) (sent bool, err error) {
	if s.W == nil {
		return false, errs.WrapIO("write", s.Name, io.ErrClosedPipe)
	}

	guard, err := DisableWrap(s.W, w.WrapGuard)
	if err != nil {
		return false, errs.WrapIO("write", s.Name, err)
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil && err == nil {
			err = errs.WrapIO("restore wrap", s.Name, rerr)
		}
	}()

	if _, err := s.W.Write(seq); err != nil {
		return false, errs.WrapIO("write", s.Name, err)
	}
	w.Logger.Debug("wrote %d-byte sequence to %s", len(seq), s.Name)
	return true, nil
}
