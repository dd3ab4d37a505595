//go:build unix && !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package terminal

// flushInput is a no-op here; DiscardInput's drain loop still applies.
func flushInput(int) error { return nil }
