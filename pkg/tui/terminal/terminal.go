// ABOUTME: Defines the Terminal interface for attribute queries, byte input, and output.
// ABOUTME: Abstracts the OS terminal driver so the controller can target real or virtual terminals.

package terminal

// Terminal abstracts the terminal driver: attribute get/set, single-byte
// reads, raw output and size queries.
//
// SetAttr must apply with TCSAFLUSH semantics: pending output drains
// first and unread input is discarded.
type Terminal interface {
	GetAttr() (Attr, error)
	SetAttr(a Attr) error
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
	Size() (width, height int, err error)
}
