// ABOUTME: Tests for session wiring and the restoration invariant on every exit path
// ABOUTME: Drives App with VirtualTerminal: quit, query/set/read failures, failed restore

package app

import (
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/pkg/tui/screen"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

const clearHome = screen.ClearDisplay + screen.CursorHome

func TestRun_ExitPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(vt *terminal.VirtualTerminal)
		wantKind  error
		wantCode  int
		wantCalls int // SetAttr calls
	}{
		{
			name:      "quit",
			setup:     func(vt *terminal.VirtualTerminal) { vt.Feed('a', 17) },
			wantCode:  0,
			wantCalls: 2,
		},
		{
			name:      "query failure",
			setup:     func(vt *terminal.VirtualTerminal) { vt.FailGetAttr(syscall.ENOTTY) },
			wantKind:  terminal.ErrQuery,
			wantCode:  1,
			wantCalls: 0,
		},
		{
			name:      "set failure entering raw mode",
			setup:     func(vt *terminal.VirtualTerminal) { vt.FailSetAttr(1, syscall.EINVAL) },
			wantKind:  terminal.ErrSet,
			wantCode:  1,
			wantCalls: 2,
		},
		{
			name: "read failure",
			setup: func(vt *terminal.VirtualTerminal) {
				vt.Feed('a')
				vt.FeedError(syscall.EIO, 1)
			},
			wantKind:  terminal.ErrRead,
			wantCode:  1,
			wantCalls: 2,
		},
		{
			name: "would block then quit",
			setup: func(vt *terminal.VirtualTerminal) {
				vt.FeedWouldBlock(3)
				vt.Feed(17)
			},
			wantCode:  0,
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vt := terminal.NewVirtualTerminal(80, 24)
			tt.setup(vt)
			s := config.Defaults()
			s.PollInterval = time.Millisecond

			before := vt.Attr()
			err := New(vt, s).Run(context.Background())

			if tt.wantKind == nil && err != nil {
				t.Fatalf("Run() = %v, want nil", err)
			}
			if tt.wantKind != nil && !errors.Is(err, tt.wantKind) {
				t.Fatalf("Run() = %v, want %v", err, tt.wantKind)
			}
			if got := ExitCode(err); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
			if !vt.Attr().Equal(before) {
				t.Errorf("attributes after exit = %+v, want %+v", vt.Attr(), before)
			}
			if got := vt.SetAttrCalls(); got != tt.wantCalls {
				t.Errorf("SetAttrCalls() = %d, want %d", got, tt.wantCalls)
			}
			if !strings.HasSuffix(vt.Output(), clearHome) {
				t.Errorf("output does not end with clear+home: %q", vt.Output())
			}
		})
	}
}

func TestRun_QuitEmitsOneClear(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.Feed(17)
	s := config.Defaults()
	s.Mode = config.ModeEcho

	if err := New(vt, s).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := vt.Output(); got != clearHome {
		t.Errorf("output = %q, want exactly one clear+home", got)
	}
}

func TestRun_RestoreFailure(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.Feed(17)
	vt.FailSetAttr(2, syscall.EIO)

	err := New(vt, config.Defaults()).Run(context.Background())
	if !errors.Is(err, terminal.ErrSet) || !errors.Is(err, syscall.EIO) {
		t.Fatalf("Run() = %v, want ErrSet wrapping EIO", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
	if !strings.Contains(Diagnostic(err), "restoring terminal: tcsetattr: ") {
		t.Errorf("Diagnostic() = %q", Diagnostic(err))
	}
}

func TestRun_RowsFromTerminalHeight(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 5)
	vt.Feed(17)
	s := config.Defaults()
	s.Rows = 0

	if err := New(vt, s).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.Count(vt.Output(), "~\r\n"); got != 5 {
		t.Errorf("rows drawn = %d, want 5", got)
	}
}

func TestRun_Banner(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(20, 24)
	vt.Feed(17)
	s := config.Defaults()
	s.Rows = 3
	s.Banner = "kilo"

	if err := New(vt, s).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(vt.Output(), "~       kilo\r\n") {
		t.Errorf("banner not centered: %q", vt.Output())
	}
}

func TestRun_NonBlockingRawConfig(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.FeedTimeout(2)
	vt.Feed(17)
	s := config.Defaults()
	s.NonBlocking = true

	if err := New(vt, s).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	applied := vt.Applied()
	if len(applied) != 2 {
		t.Fatalf("len(Applied()) = %d, want 2", len(applied))
	}
	if raw := applied[0]; raw.MinBytes != 0 || raw.Timeout != 1 {
		t.Errorf("raw VMIN/VTIME = %d/%d, want 0/1", raw.MinBytes, raw.Timeout)
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	err := &terminal.Error{Op: "tcgetattr", Kind: terminal.ErrQuery, Err: syscall.ENOTTY}
	if got, want := Diagnostic(err), "kilo: tcgetattr: "+syscall.ENOTTY.Error(); got != want {
		t.Errorf("Diagnostic() = %q, want %q", got, want)
	}
	if got := Diagnostic(context.Canceled); got != "kilo: interrupted" {
		t.Errorf("Diagnostic(canceled) = %q", got)
	}
}
