//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// fread selects the input queue for TIOCFLUSH (FREAD in <sys/fcntl.h>).
const fread = 0x1

// flushInput discards data received but not yet read.
func flushInput(fd int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, fread)
}
