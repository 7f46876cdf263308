// ABOUTME: Linux termios ioctl requests; TCSETSF is tcsetattr(TCSAFLUSH).

//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetAttr      = unix.TCGETS
	ioctlSetAttrFlush = unix.TCSETSF
)
