// ABOUTME: Controller owns the original terminal attributes and the raw-mode lifecycle.
// ABOUTME: WithRawMode is the scoped acquisition: restore runs on every return and panic path.

package terminal

import (
	"errors"
	"fmt"
)

// Controller is the only component that changes terminal attributes.
// It is not safe for concurrent use; the terminal has a single owner.
type Controller struct {
	term     Terminal
	cfg      RawConfig
	orig     Attr
	captured bool
	raw      bool
}

// NewController returns a Controller that will apply cfg on
// EnterRawMode.
func NewController(t Terminal, cfg RawConfig) *Controller {
	return &Controller{term: t, cfg: cfg}
}

// Capture snapshots the terminal's current attributes. It must run
// before any mutation and runs at most once.
func (c *Controller) Capture() error {
	if c.captured {
		return ErrAlreadyCaptured
	}
	a, err := c.term.GetAttr()
	if err != nil {
		return fmt.Errorf("capturing terminal attributes: %w", NewError("tcgetattr", ErrQuery, err))
	}
	c.orig = a
	c.captured = true
	return nil
}

// Original returns the captured attributes and whether a capture has
// happened.
func (c *Controller) Original() (Attr, bool) {
	return c.orig, c.captured
}

// IsRaw reports whether raw mode is currently applied.
func (c *Controller) IsRaw() bool {
	return c.raw
}

// EnterRawMode derives the raw attributes from the captured snapshot and
// applies them in one call. If the apply fails the snapshot is reapplied
// so the terminal is never left half-configured.
func (c *Controller) EnterRawMode() error {
	if !c.captured {
		return ErrNotCaptured
	}
	if c.raw {
		return nil
	}
	if err := c.term.SetAttr(c.orig.Raw(c.cfg)); err != nil {
		err = fmt.Errorf("entering raw mode: %w", NewError("tcsetattr", ErrSet, err))
		if rerr := c.term.SetAttr(c.orig); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restoring terminal: %w", NewError("tcsetattr", ErrSet, rerr)))
		}
		return err
	}
	c.raw = true
	return nil
}

// Restore reapplies the captured attributes. It is a no-op when raw mode
// is not applied. A failure is returned, but the controller still counts
// as released: restore is the last action before exit, not a retry point.
func (c *Controller) Restore() error {
	if !c.raw {
		return nil
	}
	c.raw = false
	if err := c.term.SetAttr(c.orig); err != nil {
		return fmt.Errorf("restoring terminal: %w", NewError("tcsetattr", ErrSet, err))
	}
	return nil
}

// WithRawMode captures (unless already captured), enters raw mode, runs
// fn and restores the original attributes however fn finishes,
// including a panic unwinding through it.
func (c *Controller) WithRawMode(fn func() error) (err error) {
	if !c.captured {
		if err := c.Capture(); err != nil {
			return err
		}
	}
	if err := c.EnterRawMode(); err != nil {
		return err
	}

	defer func() {
		if rerr := c.Restore(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return fn()
}
