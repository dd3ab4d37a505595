// Package core is the orchestration layer.  It picks the clipboard
// target for an invocation, composes the validator, codec, terminal
// guard and local provider into one operational mode, and maps the
// result onto an exit code.
//
// Architecture layers (bottom → top):
//
//	payload, osc52, terminal, clipboard  →  session  →  core  →  cmd (CLI)
//
// Each invocation runs exactly one Mode to completion or failure.
package core

import "context"

// Mode represents one (operation, target) pair, e.g. write to the
// local clipboard or read the remote clipboard through an OSC 52 query.
type Mode interface {
	Run(ctx context.Context) error
}
