package core

import (
	"context"
	"fmt"
	"io"

	"bclip/config"
	errs "bclip/internal/errors"
	"bclip/internal/session"
)

const remotePasteHelp = `Reading the clipboard of a remote session needs one of:
  - X11 forwarding: ssh -X host
  - File transfer: scp file.txt host:/tmp/ && cat /tmp/file.txt
  - Experimental OSC 52 query: bclip -p --force-paste`

const queryUnsupportedHelp = `OSC 52 query requires:
  - A terminal on stdin (not piped input)
  - A terminal that answers clipboard queries

Currently supported terminals:
  - XTerm (set 'XTerm*allowWindowOps: true' in ~/.Xresources)
  - kitty (enable 'clipboard_control read' in kitty.conf)
  - tmux 3.0+ ('set -s set-clipboard on' in tmux.conf)

Most terminals (WezTerm, iTerm2, Alacritty, Ghostty) do NOT support
clipboard reading for security reasons.`

// Run executes exactly one operation for cfg and returns its outcome.
// Failures are reported on env.Stderr; stdout only ever carries the
// clipboard payload or the escape sequence.
func Run(ctx context.Context, cfg *config.Config, env *Env) Outcome {
	mode, err := Build(cfg, env)
	if err == nil {
		err = mode.Run(ctx)
	}

	outcome := ClassifyFor(cfg.Mode, err)
	env.Metrics.SetOutcome(outcome.String())
	env.Logger.Debug("stats %s", env.Metrics.JSON())
	if err != nil {
		env.Logger.Debug("outcome %s: %v", outcome, err)
		report(env.Stderr, cfg, env, outcome, err)
	}
	return outcome
}

func report(w io.Writer, cfg *config.Config, env *Env, outcome Outcome, err error) {
	fmt.Fprintf(w, "bclip: %v\n", err)

	switch outcome {
	case SizeExceeded:
		fmt.Fprintln(w, "  hint: use --local to copy through the local clipboard, or transfer the data out of band (e.g. scp)")
	case BinaryRejected:
		fmt.Fprintln(w, "  hint: use --force to proceed")
	case Unavailable:
		// an empty clipboard means the terminal or provider did answer
		if cfg.Mode != config.ModeRead || errs.Is(err, errs.ErrClipboardEmpty) {
			return
		}
		target := session.Classify(cfg, env.Environ)
		switch {
		case target == session.Remote && cfg.ForcePaste:
			fmt.Fprintf(w, "\n%s\n", queryUnsupportedHelp)
		case session.IsRemote(env.Environ) && !cfg.ForceLocal:
			fmt.Fprintf(w, "\n%s\n", remotePasteHelp)
		}
	}
}
