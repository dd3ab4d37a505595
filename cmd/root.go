// Package cmd wires up the CLI flags and dispatches to the bclip core.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"bclip/config"
	"bclip/internal/core"
	"bclip/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X bclip/cmd.version=1.1.0"
var version = "1.0.0" //nolint:gochecknoglobals

// EnvFactory binds the core to its collaborators once the logger exists.
type EnvFactory func(logger *util.Logger) *core.Env

// Execute runs bclip against the real process and returns its exit code.
func Execute(ctx context.Context, args []string) int {
	return Run(ctx, args, os.Stdout, os.Stderr, core.StdEnv)
}

// Run parses args, validates them, and performs exactly one clipboard
// operation.  stdout only receives --version; everything else the CLI
// layer prints goes to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, newEnv EnvFactory) int {
	cfg := config.New()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("bclip", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── operation ────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Paste, "paste", "p", false, "Print the clipboard to stdout")
	fs.BoolVarP(&cfg.Clear, "clear", "c", false, "Clear the clipboard")
	fs.BoolVarP(&cfg.ForceLocal, "local", "l", cfg.ForceLocal, "Use the local clipboard even in a remote session")

	// ── input ────────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Trim, "trim", "t", cfg.Trim, "Strip one trailing newline")
	fs.BoolVarP(&cfg.ForceBinary, "force", "f", cfg.ForceBinary, "Copy input even if it looks binary")
	fs.BoolVarP(&cfg.Preview, "preview", "P", cfg.Preview, "Show what was copied on stderr")

	// ── remote paste ─────────────────────────────────────────────
	fs.BoolVar(&cfg.ForcePaste, "force-paste", false, "Query the terminal clipboard over OSC 52 (experimental, with -p)")
	fs.DurationVar(&cfg.QueryTimeout, "query-timeout", cfg.QueryTimeout, "How long to wait for the terminal to answer")

	// ── output ───────────────────────────────────────────────────
	envVerbose := cfg.Verbose
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs, stderr) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return core.ExitSuccess
		}
		fmt.Fprintf(stderr, "bclip: %v\nTry 'bclip --help' for more information.\n", err)
		return core.ExitFailure
	}
	if !fs.Changed("verbose") {
		cfg.Verbose = envVerbose
	}

	if showHelp {
		printUsage(fs, stderr)
		return core.ExitSuccess
	}
	if showVersion {
		fmt.Fprintf(stdout, "bclip %s\n", version)
		return core.ExitSuccess
	}
	if rest := fs.Args(); len(rest) > 0 {
		fmt.Fprintf(stderr, "bclip: unexpected argument %q (input is read from stdin)\n", strings.Join(rest, " "))
		return core.ExitFailure
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "bclip: %v\n", err)
		return core.ExitFailure
	}
	cfg.Resolve()

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)
	if cfg.LogTimestamps {
		logger.SetTimestamps(true)
	}

	env := newEnv(logger)
	outcome := core.Run(ctx, cfg, env)
	logger.Debug("exit %d (%s)", outcome.ExitCode(), outcome)
	return outcome.ExitCode()
}

// ── helpers ──────────────────────────────────────────────────────────

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `bclip – clipboard bridge for local and remote sessions v%s

Copies stdin to the clipboard, or prints the clipboard to stdout.  Over
SSH (or an SSM session) the copy travels to your local terminal as an
OSC 52 escape sequence.

Usage:
  command | bclip [options]                 Copy
  bclip -p [options]                        Paste
  bclip -c                                  Clear

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  echo "hello" | bclip                      Copy text
  pwd | bclip -t                            Copy without trailing newline
  cat notes.txt | bclip -P                  Copy and show a preview
  bclip -p > out.txt                        Paste into a file
  bclip -p --force-paste                    Read the terminal clipboard over SSH
  cat big.log | bclip -l                    Force the local clipboard

Exit status:
  0 success, 1 error, 2 empty input, 3 clipboard unavailable, 4 binary input
`)
}
