//go:build unix

package terminal

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the process's controlling terminal: keyboard input on In,
// query output on Out.
type TTY struct {
	In  *os.File
	Out io.Writer
}

// NewTTY returns a Device reading from in and writing to out.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{In: in, Out: out}
}

func (t *TTY) Write(p []byte) (int, error) { return t.Out.Write(p) }

func (t *TTY) IsTerminal() bool {
	return t.In != nil && term.IsTerminal(int(t.In.Fd()))
}

func (t *TTY) MakeRaw() (func() error, error) {
	fd := int(t.In.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, prev) }, nil
}

// ReadTimeout polls the input descriptor and reads directly from it,
// bypassing the runtime poller so an unanswered query leaves no
// goroutine blocked on stdin.
func (t *TTY) ReadTimeout(p []byte, d time.Duration) (int, error) {
	fd := int(t.In.Fd())

	ms := int(d / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	ready, err := unix.Poll(fds, ms)
	if err == unix.EINTR {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if ready == 0 {
		return 0, nil
	}
	if fds[0].Revents&unix.POLLIN == 0 {
		// POLLHUP / POLLERR / POLLNVAL without data
		return 0, io.EOF
	}

	n, err := unix.Read(fd, p)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// drainQuiet is how long input has to stay silent before DiscardInput
// stops reading.
const drainQuiet = 20 * time.Millisecond

// DiscardInput reads and drops whatever the terminal is still sending,
// until it has been quiet for drainQuiet, then flushes the kernel input
// queue.  It must run while the terminal is still raw.
func (t *TTY) DiscardInput() error {
	buf := make([]byte, 512)
	for i := 0; i < 64; i++ {
		n, err := t.ReadTimeout(buf, drainQuiet)
		if err != nil || n == 0 {
			break
		}
	}
	return flushInput(int(t.In.Fd()))
}
