// ABOUTME: Tests for panic reporting used by RestoreOnPanic
// ABOUTME: Verifies the terminal is restored and the panic value is printed

package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReportPanic_RestoresAndPrints(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	c := NewController(vt, DefaultRawConfig())
	if err := c.Capture(); err != nil {
		t.Fatal(err)
	}
	if err := c.EnterRawMode(); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	reportPanic(c, &out, "test panic")

	if c.IsRaw() {
		t.Error("expected Restore on panic")
	}
	if !vt.Attr().Equal(CookedAttr()) {
		t.Errorf("attributes = %+v, want original", vt.Attr())
	}
	if !strings.Contains(out.String(), "panic: test panic") {
		t.Errorf("output = %q, want panic value", out.String())
	}
	if got := vt.Output(); got != "\x1b[2J\x1b[H" {
		t.Errorf("terminal output = %q, want clear+home", got)
	}
}

func TestReportPanic_ClearsAfterRestore(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	c := NewController(vt, DefaultRawConfig())
	if err := c.Capture(); err != nil {
		t.Fatal(err)
	}
	if err := c.EnterRawMode(); err != nil {
		t.Fatal(err)
	}
	vt.FailSetAttr(2, errors.New("tcsetattr: EIO"))

	var out bytes.Buffer
	reportPanic(c, &out, "boom")

	if !strings.Contains(out.String(), "tcsetattr: EIO") {
		t.Errorf("output = %q, want restore error", out.String())
	}
	if !strings.HasSuffix(vt.Output(), "\x1b[2J\x1b[H") {
		t.Errorf("terminal output = %q, want clear+home even when restore fails", vt.Output())
	}
}

func TestRestoreOnPanic_NoPanic(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	c := NewController(vt, DefaultRawConfig())

	func() {
		defer RestoreOnPanic(c, &bytes.Buffer{})
	}()

	if vt.SetAttrCalls() != 0 {
		t.Error("RestoreOnPanic touched the terminal without a panic")
	}
}
