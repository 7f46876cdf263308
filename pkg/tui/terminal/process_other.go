// ABOUTME: Stub ProcessTerminal for platforms without POSIX termios.
// ABOUTME: Every attribute call fails with errors.ErrUnsupported.

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"os"
)

// ProcessTerminal is unavailable on this platform.
type ProcessTerminal struct {
	out *os.File
}

// NewProcessTerminal returns a terminal whose attribute and read calls
// always fail.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{out: os.Stdout}
}

func (t *ProcessTerminal) GetAttr() (Attr, error) {
	return Attr{}, &Error{Op: "tcgetattr", Kind: ErrQuery, Err: errors.ErrUnsupported}
}

func (t *ProcessTerminal) SetAttr(Attr) error {
	return &Error{Op: "tcsetattr", Kind: ErrSet, Err: errors.ErrUnsupported}
}

func (t *ProcessTerminal) ReadByte() (byte, error) {
	return 0, &Error{Op: "read", Kind: ErrRead, Err: errors.ErrUnsupported}
}

func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, &Error{Op: "write", Kind: ErrWrite, Err: err}
	}
	return n, nil
}

func (t *ProcessTerminal) Size() (width, height int, err error) {
	return 0, 0, &Error{Op: "tiocgwinsz", Kind: ErrQuery, Err: errors.ErrUnsupported}
}
