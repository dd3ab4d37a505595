package core

import (
	"context"
	"fmt"
	"io"

	"bclip/config"
	errs "bclip/internal/errors"
	"bclip/internal/metrics"
	"bclip/internal/payload"
	"bclip/util"
)

// CopyMode reads stdin and hands it to a Sink.
type CopyMode struct {
	Sink    Sink
	Input   io.Reader
	Stderr  io.Writer
	Trim    bool
	Force   bool
	Preview bool
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Run reads the whole input, vets it, and delivers it.  Every check
// runs before the sink is touched, so a rejected payload leaves no
// trace in the clipboard or on the terminal.
func (m *CopyMode) Run(_ context.Context) error {
	if util.IsTerminal(m.Input) {
		fmt.Fprintln(m.Stderr, "Usage: echo 'text' | bclip")
		fmt.Fprintln(m.Stderr, "Try 'bclip --help' for more information.")
		return errs.ErrNoInput
	}

	data, err := util.ReadAll(m.Input)
	if err != nil {
		return errs.WrapIO("read", "stdin", err)
	}
	m.Metrics.BytesRead(len(data))
	if len(data) == 0 {
		return errs.ErrEmptyInput
	}

	if m.Trim {
		data = payload.TrimNewline(data)
		if len(data) == 0 {
			return errs.ErrEmptyInput
		}
	}

	verdict := payload.Validate(data)
	if !verdict.Clean {
		if !m.Force {
			return fmt.Errorf("%w (first control byte at offset %d)", errs.ErrBinaryRejected, verdict.Offset)
		}
		m.Logger.Warn("binary data at offset %d, copying anyway (--force)", verdict.Offset)
	}

	m.Logger.Verbose("copying %d bytes to %s clipboard", len(data), m.Sink.Name())
	if err := m.Sink.Put(data); err != nil {
		return err
	}
	m.Metrics.BytesDelivered(len(data))

	if m.Preview {
		fmt.Fprintln(m.Stderr, payload.Preview(data, config.PreviewLength))
		if !verdict.Clean {
			fmt.Fprintf(m.Stderr, "  binary data forced; first control byte at offset %d\n", verdict.Offset)
		}
	}
	return nil
}
