// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Scripts input and failures, records applied attributes, and captures output.

package terminal

import (
	"bytes"
	"io"
	"sync"
)

// CookedAttr returns the attribute set a VirtualTerminal starts in: a
// conventional line-buffered, echoing terminal.
func CookedAttr() Attr {
	return Attr{
		Input:    InputFlags{FlowControl: true, CRToNL: true, BreakSignal: true},
		Output:   OutputFlags{PostProcess: true},
		Local:    LocalFlags{Echo: true, Canonical: true, Signals: true, Extended: true},
		Control:  ControlFlags{EightBit: true},
		MinBytes: 1,
	}
}

type readStep struct {
	b   byte
	err error
}

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu      sync.Mutex
	attr    Attr
	applied []Attr
	input   []readStep
	buf     bytes.Buffer
	width   int
	height  int

	getErr   error
	setErrs  map[int]error
	writeErr error
	getCount int
	setCount int
}

// NewVirtualTerminal returns a VirtualTerminal in CookedAttr with the
// given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		attr:    CookedAttr(),
		width:   width,
		height:  height,
		setErrs: make(map[int]error),
	}
}

// GetAttr returns the current attributes or the injected query error.
func (v *VirtualTerminal) GetAttr() (Attr, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.getCount++
	if v.getErr != nil {
		return Attr{}, v.getErr
	}
	return v.attr, nil
}

// SetAttr records a and makes it current, unless a failure was injected
// for this call.
func (v *VirtualTerminal) SetAttr(a Attr) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.setCount++
	if err, ok := v.setErrs[v.setCount]; ok {
		return err
	}
	v.attr = a
	v.applied = append(v.applied, a)
	return nil
}

// ReadByte pops the next scripted step. An exhausted script reads as
// end of file.
func (v *VirtualTerminal) ReadByte() (byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, &Error{Op: "read", Kind: ErrRead, Err: io.EOF}
	}
	step := v.input[0]
	v.input = v.input[1:]
	return step.b, step.err
}

// Write appends p to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	return v.buf.Write(p)
}

// Size returns the configured dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues bytes for ReadByte.
func (v *VirtualTerminal) Feed(bs ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, b := range bs {
		v.input = append(v.input, readStep{b: b})
	}
}

// FeedWouldBlock queues n reads that report ErrWouldBlock.
func (v *VirtualTerminal) FeedWouldBlock(n int) {
	v.FeedError(ErrWouldBlock, n)
}

// FeedTimeout queues n reads that report ErrTimeout.
func (v *VirtualTerminal) FeedTimeout(n int) {
	v.FeedError(ErrTimeout, n)
}

// FeedError queues n reads that fail with err.
func (v *VirtualTerminal) FeedError(err error, n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := 0; i < n; i++ {
		v.input = append(v.input, readStep{err: err})
	}
}

// FailGetAttr makes every GetAttr fail with err.
func (v *VirtualTerminal) FailGetAttr(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.getErr = err
}

// FailSetAttr makes the call-th SetAttr (1-based) fail with err.
func (v *VirtualTerminal) FailSetAttr(call int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.setErrs[call] = err
}

// FailWrite makes every Write fail with err.
func (v *VirtualTerminal) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// Attr returns the current attributes.
func (v *VirtualTerminal) Attr() Attr {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.attr
}

// Applied returns every attribute set successfully applied, in order.
func (v *VirtualTerminal) Applied() []Attr {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]Attr(nil), v.applied...)
}

// SetAttrCalls returns how many times SetAttr was called, failed calls
// included.
func (v *VirtualTerminal) SetAttrCalls() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.setCount
}

// GetAttrCalls returns how many times GetAttr was called.
func (v *VirtualTerminal) GetAttrCalls() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.getCount
}

// Pending returns the number of scripted reads not yet consumed.
func (v *VirtualTerminal) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.input)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether the current attributes have echo and
// canonical input off.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return !v.attr.Local.Echo && !v.attr.Local.Canonical
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}
