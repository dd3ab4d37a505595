//go:build linux

package terminal

import "golang.org/x/sys/unix"

// flushInput discards data received but not yet read (tcflush TCIFLUSH).
func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}
