// Package metrics records what a single bclip invocation moved: bytes
// read from stdin, bytes delivered to a clipboard, the size of the OSC 52
// traffic, and how long the terminal took to answer a query.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks the counters for one invocation.
type Collector struct {
	bytesIn       atomic.Int64
	bytesOut      atomic.Int64
	sequenceBytes atomic.Int64
	replyBytes    atomic.Int64

	mu        sync.RWMutex
	startTime time.Time
	route     string
	queryWait time.Duration
	outcome   string
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Payload ──────────────────────────────────────────────────────────

// BytesRead records n payload bytes taken from stdin.
func (c *Collector) BytesRead(n int) {
	if c == nil {
		return
	}
	c.bytesIn.Add(int64(n))
}

// BytesDelivered records n payload bytes handed to a clipboard or stdout.
func (c *Collector) BytesDelivered(n int) {
	if c == nil {
		return
	}
	c.bytesOut.Add(int64(n))
}

// TotalBytesIn returns the payload bytes read.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns the payload bytes delivered.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Terminal ─────────────────────────────────────────────────────────

// SequenceSent records an OSC 52 sequence of n bytes written to the terminal.
func (c *Collector) SequenceSent(n int) {
	if c == nil {
		return
	}
	c.sequenceBytes.Add(int64(n))
}

// QueryAnswered records a query reply of n bytes that took d to arrive.
// A terminal that never answers is recorded with n == 0.
func (c *Collector) QueryAnswered(n int, d time.Duration) {
	if c == nil {
		return
	}
	c.replyBytes.Add(int64(n))
	c.mu.Lock()
	c.queryWait = d
	c.mu.Unlock()
}

// ── Dispatch ─────────────────────────────────────────────────────────

// SetRoute records the chosen mode and target, e.g. "write/remote".
func (c *Collector) SetRoute(route string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.route = route
	c.mu.Unlock()
}

// SetOutcome records the final outcome name.
func (c *Collector) SetOutcome(outcome string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.outcome = outcome
	c.mu.Unlock()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Route         string `json:"route,omitempty"`
	Outcome       string `json:"outcome,omitempty"`
	Elapsed       string `json:"elapsed"`
	BytesIn       int64  `json:"bytes_in"`
	BytesOut      int64  `json:"bytes_out"`
	SequenceBytes int64  `json:"sequence_bytes,omitempty"`
	ReplyBytes    int64  `json:"reply_bytes,omitempty"`
	QueryWait     string `json:"query_wait,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Route:         c.route,
		Outcome:       c.outcome,
		Elapsed:       time.Since(c.startTime).Round(time.Microsecond).String(),
		BytesIn:       c.bytesIn.Load(),
		BytesOut:      c.bytesOut.Load(),
		SequenceBytes: c.sequenceBytes.Load(),
		ReplyBytes:    c.replyBytes.Load(),
	}
	if c.queryWait > 0 {
		s.QueryWait = c.queryWait.Round(time.Millisecond).String()
	}
	return s
}

// JSON returns the snapshot as a single-line JSON string.
func (c *Collector) JSON() string {
	data, _ := json.Marshal(c.Snapshot())
	return string(data)
}
