// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in main.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Clear display, cursor home.
var clearAndHome = []byte("\x1b[2J\x1b[H")

// RestoreOnPanic should be deferred in main after the Controller is
// built. On panic it restores the original attributes (if still raw),
// clears the display, writes the panic value and stack trace to w, then
// exits with code 1.
func RestoreOnPanic(c *Controller, w io.Writer) {
	r := recover()
	if r == nil {
		return
	}
	reportPanic(c, w, r)
	os.Exit(1)
}

func reportPanic(c *Controller, w io.Writer, r any) {
	if err := c.Restore(); err != nil {
		fmt.Fprintf(w, "\r\n%v\r\n", err)
	}
	_, _ = c.term.Write(clearAndHome)
	fmt.Fprintf(w, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
