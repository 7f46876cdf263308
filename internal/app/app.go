// ABOUTME: Wires controller, renderer and loop from settings and runs one session
// ABOUTME: Every fatal error leaves the screen cleared and the terminal restored

package app

import (
	"context"
	"errors"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/internal/loop"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/screen"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// App is one terminal session.
type App struct {
	term     terminal.Terminal
	settings *config.Settings
	ctrl     *terminal.Controller
}

// New returns an App for term configured by s. s must be valid.
func New(term terminal.Terminal, s *config.Settings) *App {
	return &App{
		term:     term,
		settings: s,
		ctrl:     terminal.NewController(term, s.RawConfig()),
	}
}

// Controller returns the session's terminal controller, for panic
// recovery in main.
func (a *App) Controller() *terminal.Controller {
	return a.ctrl
}

// Run captures the terminal, enters raw mode, runs the loop until quit
// and restores the terminal. A nil return means the user quit.
func (a *App) Run(ctx context.Context) error {
	err := a.ctrl.WithRawMode(func() error {
		return a.newLoop().Run(ctx)
	})
	if err != nil {
		a.fail(err)
	}
	return err
}

func (a *App) newLoop() *loop.Loop {
	s := a.settings
	rows := s.Rows
	cols := 0
	if rows == 0 || s.Banner != "" {
		w, h, err := a.term.Size()
		switch {
		case err != nil:
			log.Warn("terminal size: %v", err)
		case rows == 0:
			rows = h
		}
		if err == nil {
			cols = w
		}
	}
	if rows <= 0 {
		rows = screen.DefaultRows
	}

	mode := loop.ModeDisplay
	if s.Mode == config.ModeEcho {
		mode = loop.ModeEcho
	}
	log.Debug("session: mode=%s rows=%d cols=%d non_blocking=%v", mode, rows, cols, s.NonBlocking)

	return loop.New(loop.Deps{
		IO: a.term,
		Renderer: screen.New(screen.Options{
			Rows:   rows,
			Marker: s.RowMarker,
			Banner: s.Banner,
			Width:  cols,
		}),
		Classifier:   key.NewClassifier(s.QuitKey[0]),
		Mode:         mode,
		PollInterval: s.PollInterval,
	})
}

// fail is the uniform fatal path: clear the display so no half-drawn
// frame stays behind. The diagnostic is printed by the caller.
func (a *App) fail(err error) {
	log.Debug("session failed: %v", err)
	if cerr := screen.ClearAndHome(a.term); cerr != nil {
		log.Warn("clearing screen: %v", cerr)
	}
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Diagnostic returns the line printed for a fatal error.
func Diagnostic(err error) string {
	if errors.Is(err, context.Canceled) {
		return "kilo: interrupted"
	}
	return "kilo: " + err.Error()
}
