// Package config defines the per-invocation session context for bclip
// and validates the flag combinations that select it.
package config

import (
	"fmt"
	"time"

	errs "bclip/internal/errors"
)

// Mode is the clipboard operation requested for one invocation.
type Mode int

const (
	ModeWrite Mode = iota // copy stdin to the clipboard
	ModeRead              // print the clipboard to stdout
	ModeClear             // empty the clipboard
)

func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "write"
	case ModeRead:
		return "read"
	case ModeClear:
		return "clear"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Config holds every tuneable for a single bclip invocation.  It is
// built once from flags and environment and never mutated afterwards.
type Config struct {
	// ── Operation ────────────────────────────────────────────────────
	Mode        Mode
	Paste       bool // -p: raw flag, folded into Mode by Resolve
	Clear       bool // -c: raw flag, folded into Mode by Resolve
	ForceLocal  bool // -l
	Trim        bool // -t
	ForceBinary bool // -f
	Preview     bool // -P
	ForcePaste  bool // --force-paste

	// ── Terminal ─────────────────────────────────────────────────────
	QueryTimeout time.Duration
	WrapGuard    bool // emit DECAWM off/on around OSC 52 writes

	// ── Output ───────────────────────────────────────────────────────
	Verbose       int
	LogTimestamps bool // prefix log lines with a time; always on at -vvv
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Mode:         ModeWrite,
		QueryTimeout: DefaultQueryTimeout,
		WrapGuard:    true,
	}
}

// Resolve derives Mode from the raw -p / -c flags.
func (c *Config) Resolve() {
	switch {
	case c.Paste:
		c.Mode = ModeRead
	case c.Clear:
		c.Mode = ModeClear
	default:
		c.Mode = ModeWrite
	}
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Paste && c.Clear {
		return &errs.ConfigError{
			Field:   "paste",
			Message: "--paste and --clear are mutually exclusive",
		}
	}

	if c.ForcePaste && !c.Paste {
		return &errs.ConfigError{
			Field:   "force-paste",
			Message: "requires --paste",
			Hint:    "use: bclip -p --force-paste",
		}
	}

	if c.QueryTimeout <= 0 {
		return &errs.ConfigError{
			Field:   "query-timeout",
			Value:   c.QueryTimeout,
			Message: "must be positive",
			Hint:    "set BCLIP_QUERY_TIMEOUT_MS to a value such as 500",
		}
	}

	return nil
}
