package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// MaxEncodedSize is the largest base64 body an OSC 52 write may carry
	// (10 MiB of encoded text).
	MaxEncodedSize = 10 * 1024 * 1024

	// MaxResponseSize bounds how much a clipboard query reply may grow
	// before it is abandoned.  Framing overhead is small and fixed.
	MaxResponseSize = MaxEncodedSize + 64

	// DefaultQueryTimeout is how long an OSC 52 query waits for the
	// terminal to answer.  Non-compliant terminals never do.
	DefaultQueryTimeout = 500 * time.Millisecond

	// PreviewLength is the number of characters shown by --preview.
	PreviewLength = 50
)
