package core

import (
	"context"
	"io"

	errs "bclip/internal/errors"
	"bclip/internal/metrics"
	"bclip/util"
)

// PasteMode prints the clipboard from a Source to stdout.
type PasteMode struct {
	Source  Source
	Output  io.Writer
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// Run writes the clipboard bytes unchanged.
func (m *PasteMode) Run(ctx context.Context) error {
	data, err := m.Source.Get(ctx)
	if err != nil {
		return err
	}
	m.Logger.Verbose("pasting %d bytes from %s clipboard", len(data), m.Source.Name())
	if _, err := m.Output.Write(data); err != nil {
		return errs.WrapIO("write", "stdout", err)
	}
	m.Metrics.BytesDelivered(len(data))
	return nil
}
