package core

import (
	"context"
	"fmt"
	"time"

	"bclip/internal/clipboard"
	errs "bclip/internal/errors"
	"bclip/internal/metrics"
	"bclip/internal/osc52"
	"bclip/internal/session"
	"bclip/internal/terminal"
	"bclip/util"
)

// Sink receives a payload: the local clipboard or the terminal.
type Sink interface {
	Name() string
	Put(data []byte) error
	Clear() error
}

// Source produces the clipboard contents for a paste.
type Source interface {
	Name() string
	Get(ctx context.Context) ([]byte, error)
}

// ── local ────────────────────────────────────────────────────────────

// LocalClipboard adapts a clipboard.Provider to Sink and Source.
type LocalClipboard struct {
	Provider clipboard.Provider
}

func (l *LocalClipboard) Name() string { return "local" }

func (l *LocalClipboard) provider() (clipboard.Provider, error) {
	if l.Provider == nil {
		return nil, fmt.Errorf("%w: no local clipboard provider", errs.ErrUnavailable)
	}
	return l.Provider, nil
}

func (l *LocalClipboard) Put(data []byte) error {
	p, err := l.provider()
	if err != nil {
		return err
	}
	return p.Write(data)
}

func (l *LocalClipboard) Clear() error {
	p, err := l.provider()
	if err != nil {
		return err
	}
	return p.Clear()
}

func (l *LocalClipboard) Get(context.Context) ([]byte, error) {
	p, err := l.provider()
	if err != nil {
		return nil, err
	}
	return p.Read()
}

// ── remote ───────────────────────────────────────────────────────────

// TerminalClipboard writes OSC 52 sequences through a guarded writer.
type TerminalClipboard struct {
	Writer  *terminal.Writer
	Metrics *metrics.Collector
}

func (r *TerminalClipboard) Name() string { return "osc52" }

// Put encodes data; nothing reaches the terminal if encoding fails.
func (r *TerminalClipboard) Put(data []byte) error {
	seq, err := osc52.Encode(data)
	if err != nil {
		return err
	}
	if err := r.Writer.Send(seq); err != nil {
		return err
	}
	r.Metrics.SequenceSent(len(seq))
	return nil
}

// Clear sends an empty payload.  Terminals are not required to treat
// this as "clear", so it is best effort.
func (r *TerminalClipboard) Clear() error {
	return r.Put(nil)
}

// TerminalQuery reads the remote clipboard with an OSC 52 query.
type TerminalQuery struct {
	Querier *terminal.Querier
	Environ session.EnvironmentView
	Warn    func(format string, args ...interface{})
	Logger  *util.Logger
	Metrics *metrics.Collector
}

func (q *TerminalQuery) Name() string { return "osc52 query" }

func (q *TerminalQuery) Get(ctx context.Context) ([]byte, error) {
	q.Warn("Warning: --force-paste is experimental")
	q.Warn("OSC 52 clipboard querying requires terminal support (XTerm, kitty, tmux)")
	if session.InMultiplexer(q.Environ) {
		q.Warn("Warning: terminal multiplexer detected (tmux/screen); OSC 52 queries need 'set -s set-clipboard on' (tmux) or passthrough")
	}

	start := time.Now()
	reply, err := q.Querier.Query(ctx, osc52.QuerySequence())
	q.Metrics.QueryAnswered(len(reply), time.Since(start))
	if err != nil {
		return nil, err
	}
	data, err := osc52.DecodeResponse(reply)
	if err != nil {
		q.Logger.Debug("undecodable reply %q", reply)
		return nil, err
	}
	if len(data) == 0 {
		return nil, errs.ErrClipboardEmpty
	}
	return data, nil
}
