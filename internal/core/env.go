package core

import (
	"io"
	"os"

	"bclip/internal/clipboard"
	"bclip/internal/metrics"
	"bclip/internal/session"
	"bclip/internal/terminal"
	"bclip/util"
)

// Env is everything a Mode touches outside the process: standard
// streams, environment variables, the local clipboard, and the
// terminal used for clipboard queries.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdoutIsTerminal selects where OSC 52 writes go first: stdout when
	// it is a terminal, otherwise stderr, so piped output stays clean.
	StdoutIsTerminal bool

	Environ session.EnvironmentView
	Local   clipboard.Provider
	TTY     terminal.Device
	Logger  *util.Logger
	Metrics *metrics.Collector // optional
}

// StdEnv binds Env to the real process.  Clipboard queries are written
// to stdout when it is a terminal, otherwise to stderr, so that
// `bclip -p --force-paste > file` still reaches the terminal.
func StdEnv(logger *util.Logger) *Env {
	stdoutTTY := util.IsTerminal(os.Stdout)
	var queryOut io.Writer = os.Stderr
	if stdoutTTY {
		queryOut = os.Stdout
	}
	return &Env{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		StdoutIsTerminal: stdoutTTY,
		Environ:          session.OSEnv{},
		Local:            clipboard.New(logger),
		TTY:              terminal.NewTTY(os.Stdin, queryOut),
		Logger:           logger,
		Metrics:          metrics.New(),
	}
}
