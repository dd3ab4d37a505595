package metrics

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCollector_Bytes(t *testing.T) {
	c := New()

	c.BytesRead(1024)
	c.BytesDelivered(1023)
	c.BytesRead(100)

	if c.TotalBytesIn() != 1124 {
		t.Errorf("bytes in = %d, want 1124", c.TotalBytesIn())
	}
	if c.TotalBytesOut() != 1023 {
		t.Errorf("bytes out = %d, want 1023", c.TotalBytesOut())
	}
}

func TestCollector_Snapshot(t *testing.T) {
	c := New()
	c.SetRoute("read/remote")
	c.SequenceSent(9)
	c.QueryAnswered(20, 120*time.Millisecond)
	c.BytesDelivered(5)
	c.SetOutcome("success")

	snap := c.Snapshot()
	if snap.Route != "read/remote" || snap.Outcome != "success" {
		t.Errorf("route/outcome = %q/%q", snap.Route, snap.Outcome)
	}
	if snap.SequenceBytes != 9 || snap.ReplyBytes != 20 {
		t.Errorf("sequence = %d, reply = %d", snap.SequenceBytes, snap.ReplyBytes)
	}
	if snap.QueryWait != "120ms" {
		t.Errorf("query wait = %q", snap.QueryWait)
	}
	if snap.Elapsed == "" {
		t.Error("elapsed should be set")
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.SetRoute("write/local")
	c.BytesDelivered(42)

	raw := c.JSON()
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if snap.Route != "write/local" {
		t.Errorf("JSON route = %q", snap.Route)
	}
	if snap.BytesOut != 42 {
		t.Errorf("JSON bytes out = %d", snap.BytesOut)
	}
}

func TestNilCollector_NoOps(t *testing.T) {
	var c *Collector

	// None of these should panic.
	c.BytesRead(100)
	c.BytesDelivered(100)
	c.SequenceSent(10)
	c.QueryAnswered(10, time.Second)
	c.SetRoute("write/local")
	c.SetOutcome("success")

	if c.TotalBytesIn() != 0 || c.TotalBytesOut() != 0 {
		t.Error("nil collector should return 0")
	}
	if snap := c.Snapshot(); snap != (Snapshot{}) {
		t.Errorf("nil snapshot should be zero, got %+v", snap)
	}
	if j := c.JSON(); j == "" {
		t.Error("nil JSON should return valid JSON")
	}
}
