package terminal

import (
	"context"
	"fmt"
	"io"
	"time"

	"bclip/config"
	errs "bclip/internal/errors"
	"bclip/internal/osc52"
	"bclip/util"
)

// pollSlice bounds each individual wait so cancellation is noticed
// promptly even with a long overall timeout.
const pollSlice = 50 * time.Millisecond

// Querier asks the terminal for its clipboard contents.
type Querier struct {
	Device  Device
	Timeout time.Duration
	MaxSize int // defaults to config.MaxResponseSize
	Logger  *util.Logger
}

// Query puts the device in raw mode, writes seq, and collects the reply
// until a BEL/ST terminator, the timeout, or ctx cancellation.  The raw
// mode is restored before Query returns, whatever the outcome.
//
// A reply that starts but never terminates is returned as-is so the
// decoder can report the framing error.  No reply at all yields a
// ProtocolError wrapping ErrNoResponse.
func (q *Querier) Query(ctx context.Context, seq []byte) (reply []byte, err error) {
	if !q.Device.IsTerminal() {
		return nil, fmt.Errorf("%w: clipboard query needs a terminal on stdin: %w",
			errs.ErrUnavailable, errs.ErrNotTerminal)
	}

	guard, err := AcquireRaw(q.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: raw mode: %w", errs.ErrUnavailable, err)
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil {
			q.Logger.Error("restoring terminal mode: %v", rerr)
			if err == nil {
				err = errs.WrapIO("restore", "tty", rerr)
			}
		}
	}()

	if _, err := q.Device.Write(seq); err != nil {
		return nil, errs.WrapIO("write", "tty", err)
	}
	q.Logger.Debug("sent clipboard query, waiting up to %s", q.Timeout)

	limit := q.MaxSize
	if limit <= 0 {
		limit = config.MaxResponseSize
	}

	deadline := time.Now().Add(q.Timeout)
	chunk := make([]byte, 4096)
	var buf []byte

	for {
		if cerr := ctx.Err(); cerr != nil {
			return nil, errs.Protocol("query", "interrupted", cerr)
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}

		n, rerr := q.Device.ReadTimeout(chunk, min(remaining, pollSlice))
		buf = append(buf, chunk[:n]...)
		if len(buf) > limit {
			return nil, errs.Protocol("query", fmt.Sprintf("reply exceeds %d bytes", limit), nil)
		}
		if osc52.Terminated(buf) {
			q.Logger.Debug("received %d-byte reply", len(buf))
			return buf, nil
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, errs.WrapIO("read", "tty", rerr)
		}
	}

	if len(buf) == 0 {
		return nil, errs.Protocol("query", fmt.Sprintf("no reply within %s", q.Timeout), errs.ErrNoResponse)
	}
	q.Logger.Verbose("reply incomplete after %s (%d bytes)", q.Timeout, len(buf))
	return buf, nil
}
