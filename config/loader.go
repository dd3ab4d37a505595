package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the BCLIP_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if envBool("BCLIP_LOCAL") {
		cfg.ForceLocal = true
	}
	if envBool("BCLIP_TRIM") {
		cfg.Trim = true
	}
	if envBool("BCLIP_FORCE") {
		cfg.ForceBinary = true
	}
	if envBool("BCLIP_PREVIEW") {
		cfg.Preview = true
	}

	// Terminal
	if v := envInt("BCLIP_QUERY_TIMEOUT_MS"); v > 0 {
		cfg.QueryTimeout = millisDuration(v)
	}
	if envBool("BCLIP_NO_WRAP_GUARD") {
		cfg.WrapGuard = false
	}

	// Output
	if v := envInt("BCLIP_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("BCLIP_LOG_TIMESTAMPS") {
		cfg.LogTimestamps = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func millisDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
