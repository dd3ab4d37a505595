package core

import (
	"fmt"

	"bclip/config"
	"bclip/internal/session"
	"bclip/internal/terminal"
)

// route is one cell of the (mode, target) transition table.
type route struct {
	mode   config.Mode
	target session.Target
}

// Build constructs the Mode for cfg.  The switch is the whole transition
// table; adding an operation or target means adding its cells here.
func Build(cfg *config.Config, env *Env) (Mode, error) {
	target := session.Classify(cfg, env.Environ)
	env.Logger.Info("mode=%s target=%s", cfg.Mode, target)
	env.Metrics.SetRoute(cfg.Mode.String() + "/" + target.String())

	switch (route{cfg.Mode, target}) {
	case route{config.ModeWrite, session.Local}:
		return buildCopy(cfg, env, localClipboard(env)), nil
	case route{config.ModeWrite, session.Remote}:
		return buildCopy(cfg, env, terminalClipboard(cfg, env)), nil
	case route{config.ModeRead, session.Local}:
		return buildPaste(env, localClipboard(env)), nil
	case route{config.ModeRead, session.Remote}:
		return buildPaste(env, terminalQuery(cfg, env)), nil
	case route{config.ModeClear, session.Local}:
		return buildClear(env, localClipboard(env)), nil
	case route{config.ModeClear, session.Remote}:
		return buildClear(env, terminalClipboard(cfg, env)), nil
	}
	return nil, fmt.Errorf("no route for mode %s, target %s", cfg.Mode, target)
}

// ── mode builders ────────────────────────────────────────────────────

func buildCopy(cfg *config.Config, env *Env, sink Sink) Mode {
	return &CopyMode{
		Sink:    sink,
		Input:   env.Stdin,
		Stderr:  env.Stderr,
		Trim:    cfg.Trim,
		Force:   cfg.ForceBinary,
		Preview: cfg.Preview,
		Logger:  env.Logger,
		Metrics: env.Metrics,
	}
}

func buildPaste(env *Env, src Source) Mode {
	return &PasteMode{Source: src, Output: env.Stdout, Logger: env.Logger, Metrics: env.Metrics}
}

func buildClear(env *Env, sink Sink) Mode {
	return &ClearMode{Sink: sink, Stderr: env.Stderr, Logger: env.Logger}
}

// ── shared helpers ───────────────────────────────────────────────────

func localClipboard(env *Env) *LocalClipboard {
	return &LocalClipboard{Provider: env.Local}
}

// terminalClipboard writes to stdout when it is a terminal, otherwise
// to stderr, retrying once on the other stream.
func terminalClipboard(cfg *config.Config, env *Env) *TerminalClipboard {
	out := terminal.Stream{Name: "stdout", W: env.Stdout}
	fallback := terminal.Stream{Name: "stderr", W: env.Stderr}
	if !env.StdoutIsTerminal {
		out, fallback = fallback, out
	}
	return &TerminalClipboard{
		Writer: &terminal.Writer{
			Out:       out,
			Fallback:  fallback,
			WrapGuard: cfg.WrapGuard,
			Logger:    env.Logger,
		},
		Metrics: env.Metrics,
	}
}

func terminalQuery(cfg *config.Config, env *Env) *TerminalQuery {
	return &TerminalQuery{
		Querier: &terminal.Querier{
			Device:  env.TTY,
			Timeout: cfg.QueryTimeout,
			Logger:  env.Logger,
		},
		Environ: env.Environ,
		Warn:    func(format string, args ...interface{}) { fmt.Fprintf(env.Stderr, format+"\n", args...) },
		Logger:  env.Logger,
		Metrics: env.Metrics,
	}
}
