// ABOUTME: BSD-family termios ioctl requests; TIOCSETAF is tcsetattr(TCSAFLUSH).

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetAttr      = unix.TIOCGETA
	ioctlSetAttrFlush = unix.TIOCSETAF
)
