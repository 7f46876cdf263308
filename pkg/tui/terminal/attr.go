// ABOUTME: Platform-neutral terminal attribute record and the raw-mode derivation.
// ABOUTME: Named fields per feature; bit layouts live only in the termios boundary code.

package terminal

// InputFlags are the input-layer features raw mode controls.
type InputFlags struct {
	FlowControl bool // IXON: Ctrl-S/Ctrl-Q pause and resume output
	CRToNL      bool // ICRNL: carriage return read as newline
	ParityCheck bool // INPCK
	Strip8thBit bool // ISTRIP
	BreakSignal bool // BRKINT: break condition raises SIGINT
}

// OutputFlags are the output-layer features raw mode controls.
type OutputFlags struct {
	PostProcess bool // OPOST: "\n" written as "\r\n"
}

// LocalFlags are the local-mode features raw mode controls.
type LocalFlags struct {
	Echo      bool // ECHO
	Canonical bool // ICANON: line-buffered input
	Signals   bool // ISIG: Ctrl-C/Ctrl-Z raise signals
	Extended  bool // IEXTEN: Ctrl-V literal-next and friends
}

// ControlFlags are the control-mode features raw mode controls.
type ControlFlags struct {
	EightBit bool // CSIZE == CS8
}

// Attr is a snapshot of terminal attributes.
//
// Values are copied, never shared: a captured Attr cannot be changed
// through another copy. Bits that have no named field are carried in an
// opaque native snapshot so they round-trip unchanged.
type Attr struct {
	Input   InputFlags
	Output  OutputFlags
	Local   LocalFlags
	Control ControlFlags

	// MinBytes and Timeout mirror VMIN and VTIME. Timeout is in tenths
	// of a second.
	MinBytes uint8
	Timeout  uint8

	native any
}

// Equal reports whether a and b describe the same terminal state,
// including the native bits.
func (a Attr) Equal(b Attr) bool {
	return a == b
}

// RawConfig selects what raw mode turns off. Every field is a feature
// name, not a bit.
type RawConfig struct {
	DisableFlowControl bool
	DisableCRToNL      bool
	DisableParityCheck bool
	DisableStrip8thBit bool
	DisableBreakSignal bool

	DisablePostProcess bool

	DisableEcho      bool
	DisableCanonical bool
	DisableSignals   bool
	DisableExtended  bool

	EightBitChars bool

	MinBytes uint8
	Timeout  uint8
}

// DefaultRawConfig disables every input, output and local feature and
// makes reads block until one byte is available.
func DefaultRawConfig() RawConfig {
	return RawConfig{
		DisableFlowControl: true,
		DisableCRToNL:      true,
		DisableParityCheck: true,
		DisableStrip8thBit: true,
		DisableBreakSignal: true,
		DisablePostProcess: true,
		DisableEcho:        true,
		DisableCanonical:   true,
		DisableSignals:     true,
		DisableExtended:    true,
		EightBitChars:      true,
		MinBytes:           1,
		Timeout:            0,
	}
}

// WithReadTimeout returns c configured for timeout-bounded reads: a read
// returns after deciseconds tenths of a second even when no byte arrived.
func (c RawConfig) WithReadTimeout(deciseconds uint8) RawConfig {
	c.MinBytes = 0
	c.Timeout = deciseconds
	return c
}

// Raw derives the raw-mode attributes from a. The receiver is unchanged.
func (a Attr) Raw(c RawConfig) Attr {
	r := a
	if c.DisableFlowControl {
		r.Input.FlowControl = false
	}
	if c.DisableCRToNL {
		r.Input.CRToNL = false
	}
	if c.DisableParityCheck {
		r.Input.ParityCheck = false
	}
	if c.DisableStrip8thBit {
		r.Input.Strip8thBit = false
	}
	if c.DisableBreakSignal {
		r.Input.BreakSignal = false
	}
	if c.DisablePostProcess {
		r.Output.PostProcess = false
	}
	if c.DisableEcho {
		r.Local.Echo = false
	}
	if c.DisableCanonical {
		r.Local.Canonical = false
	}
	if c.DisableSignals {
		r.Local.Signals = false
	}
	if c.DisableExtended {
		r.Local.Extended = false
	}
	if c.EightBitChars {
		r.Control.EightBit = true
	}
	r.MinBytes = c.MinBytes
	r.Timeout = c.Timeout
	return r
}
