// ABOUTME: ProcessTerminal implements Terminal on a real tty via x/sys/unix and x/term.
// ABOUTME: Attribute changes use TCSAFLUSH; reads wait in poll(2) for a bounded time, then read one byte.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultWakeInterval bounds how long ReadByte waits for input before
// returning ErrTimeout, so callers can notice cancellation.
const DefaultWakeInterval = 100 * time.Millisecond

// ProcessTerminal is a real terminal: attributes and input on in, output
// on out.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	// minBytes is the VMIN last applied; a zero-byte read is a timeout
	// only when it is 0.
	minBytes uint8
	wake     time.Duration
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

// NewTerminal returns a ProcessTerminal reading and configuring in and
// writing to out.
func NewTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out, minBytes: 1, wake: DefaultWakeInterval}
}

// GetAttr queries the current attributes of the input terminal.
func (t *ProcessTerminal) GetAttr() (Attr, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return Attr{}, &Error{Op: "tcgetattr", Kind: ErrQuery, Err: unix.ENOTTY}
	}
	tio, err := unix.IoctlGetTermios(fd, ioctlGetAttr)
	if err != nil {
		return Attr{}, &Error{Op: "tcgetattr", Kind: ErrQuery, Err: err}
	}
	return fromTermios(tio), nil
}

// SetAttr applies a with flush timing.
func (t *ProcessTerminal) SetAttr(a Attr) error {
	tio := toTermios(a)
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlSetAttrFlush, &tio); err != nil {
		return &Error{Op: "tcsetattr", Kind: ErrSet, Err: err}
	}
	t.minBytes = a.MinBytes
	return nil
}

// ReadByte reads exactly one byte. It returns ErrTimeout when no input
// arrives within the wake interval or when an empty read happens under
// VMIN=0. EAGAIN becomes ErrWouldBlock.
func (t *ProcessTerminal) ReadByte() (byte, error) {
	fd := int(t.in.Fd())
	ready, err := t.waitReadable(fd)
	if err != nil {
		return 0, err
	}
	if !ready {
		return 0, ErrTimeout
	}

	var b [1]byte
	for {
		n, err := unix.Read(fd, b[:])
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			return 0, ErrWouldBlock
		case err != nil:
			return 0, &Error{Op: "read", Kind: ErrRead, Err: err}
		case n == 0 && t.minBytes == 0:
			return 0, ErrTimeout
		case n == 0:
			return 0, &Error{Op: "read", Kind: ErrRead, Err: io.EOF}
		}
		return b[0], nil
	}
}

// waitReadable blocks in poll(2) for at most the wake interval. poll is
// never restarted after a signal handler, and the bound covers signals
// handled on another thread.
func (t *ProcessTerminal) waitReadable(fd int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(t.wake/time.Millisecond))
	switch {
	case errors.Is(err, unix.EINTR):
		return false, nil
	case err != nil:
		return false, &Error{Op: "poll", Kind: ErrRead, Err: err}
	}
	// POLLHUP and POLLERR count as ready so read(2) reports them.
	return n > 0, nil
}

// Write sends p to the output terminal.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, &Error{Op: "write", Kind: ErrWrite, Err: err}
	}
	return n, nil
}

// Size returns the output terminal's dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, &Error{Op: "tiocgwinsz", Kind: ErrQuery, Err: err}
	}
	return w, h, nil
}
