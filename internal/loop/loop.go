// ABOUTME: Input/render loop: refresh the screen, read one byte, classify it, react
// ABOUTME: Quit bubbles up as TerminationRequested; fatal errors return to the caller

package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/screen"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Mode selects how the loop reacts to non-quit input.
type Mode int

const (
	ModeDisplay Mode = iota // repaint before every read; input is consumed
	ModeEcho                // no repaint; echo each byte's value
)

// String returns the mode display name.
func (m Mode) String() string {
	switch m {
	case ModeDisplay:
		return "display"
	case ModeEcho:
		return "echo"
	default:
		return "unknown"
	}
}

// Outcome is the result of one loop iteration.
type Outcome int

const (
	Continue Outcome = iota
	TerminationRequested
)

// IO is the part of the terminal the loop may touch. It has no way to
// change terminal attributes.
type IO interface {
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

// Deps bundles the loop's collaborators.
type Deps struct {
	IO           IO
	Renderer     *screen.Renderer
	Classifier   key.Classifier
	Mode         Mode
	PollInterval time.Duration // wait after a would-block read
}

// MinPollInterval is the shortest wait after a would-block read.
const MinPollInterval = time.Millisecond

// Loop drives one interactive session.
type Loop struct {
	io       IO
	renderer *screen.Renderer
	keys     key.Classifier
	mode     Mode
	poll     time.Duration
}

// New returns a Loop wired from deps. A PollInterval below
// MinPollInterval is raised to it.
func New(deps Deps) *Loop {
	poll := max(deps.PollInterval, MinPollInterval)
	return &Loop{
		io:       deps.IO,
		renderer: deps.Renderer,
		keys:     deps.Classifier,
		mode:     deps.Mode,
		poll:     poll,
	}
}

// Run steps until the quit byte arrives (nil) or a fatal error occurs.
func (l *Loop) Run(ctx context.Context) error {
	log.Debug("loop: mode=%s quit=%#x", l.mode, l.keys.QuitByte())
	for {
		out, err := l.Step(ctx)
		if err != nil {
			return err
		}
		if out == TerminationRequested {
			return nil
		}
	}
}

// Step runs one iteration: refresh (display mode), read, classify,
// process.
func (l *Loop) Step(ctx context.Context) (Outcome, error) {
	if l.mode == ModeDisplay {
		if err := l.renderer.Refresh(l.io); err != nil {
			return Continue, writeError("refreshing screen", err)
		}
	}

	b, err := l.readByte(ctx)
	if err != nil {
		return Continue, fmt.Errorf("reading input: %w", err)
	}

	return l.process(l.keys.Classify(b))
}

// readByte blocks until one byte arrives. Would-block reads are retried
// after the poll interval; timed-out reads are retried at once since the
// terminal already waited.
func (l *Loop) readByte(ctx context.Context) (byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		b, err := l.io.ReadByte()
		switch {
		case err == nil:
			return b, nil
		case errors.Is(err, terminal.ErrWouldBlock):
			time.Sleep(l.poll)
		case errors.Is(err, terminal.ErrTimeout):
		default:
			return 0, terminal.NewError("read", terminal.ErrRead, err)
		}
	}
}

func (l *Loop) process(ev key.Event) (Outcome, error) {
	log.Debug("key: %s (%s)", ev, ev.Kind)

	if ev.Kind == key.Quit {
		if err := screen.ClearAndHome(l.io); err != nil {
			return Continue, writeError("clearing screen", err)
		}
		return TerminationRequested, nil
	}

	if l.mode == ModeEcho {
		if _, err := l.io.Write(echoLine(ev)); err != nil {
			return Continue, writeError("echoing input", err)
		}
	}
	return Continue, nil
}

func writeError(what string, err error) error {
	return fmt.Errorf("%s: %w", what, terminal.NewError("write", terminal.ErrWrite, err))
}
