package core

import (
	"context"
	"fmt"
	"io"

	"bclip/util"
)

// ClearMode empties a Sink.
type ClearMode struct {
	Sink   Sink
	Stderr io.Writer
	Logger *util.Logger
}

func (m *ClearMode) Run(_ context.Context) error {
	if err := m.Sink.Clear(); err != nil {
		return err
	}
	m.Logger.Verbose("cleared %s clipboard", m.Sink.Name())
	if _, remote := m.Sink.(*TerminalClipboard); remote {
		fmt.Fprintln(m.Stderr, "Clipboard cleared (via OSC 52)")
	}
	return nil
}
