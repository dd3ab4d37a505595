// bclip - copy and paste through the local clipboard or, over SSH, the
// terminal's clipboard via OSC 52.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bclip/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)

	code := cmd.Execute(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
