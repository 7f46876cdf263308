// ABOUTME: Classifies single raw input bytes as quit, control, or printable events.
// ABOUTME: Derives control-key bytes the way a terminal does: the letter with its top three bits cleared.

package key

import "fmt"

// Kind enumerates the kinds of input events.
type Kind int

const (
	Printable Kind = iota // Any byte outside the control range
	Control               // 0x00..0x1F and DEL (0x7F)
	Quit                  // The designated quit byte
)

// kindNames provides human-readable labels for each Kind.
var kindNames = map[Kind]string{
	Printable: "printable",
	Control:   "control",
	Quit:      "quit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one classified input byte.
type Event struct {
	Kind Kind
	Code byte
}

// Ctrl returns the byte a terminal sends for Ctrl plus letter.
func Ctrl(letter byte) byte {
	return letter & 0x1f
}

// IsControl reports whether b is a non-printable control byte.
func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// Classifier maps bytes to events for one quit key.
type Classifier struct {
	quit byte
}

// NewClassifier returns a Classifier whose quit byte is Ctrl plus
// quitLetter.
func NewClassifier(quitLetter byte) Classifier {
	return Classifier{quit: Ctrl(quitLetter)}
}

// QuitByte returns the byte that classifies as Quit.
func (c Classifier) QuitByte() byte {
	return c.quit
}

// Classify returns the event for b. Every byte yields exactly one kind.
func (c Classifier) Classify(b byte) Event {
	switch {
	case b == c.quit:
		return Event{Kind: Quit, Code: b}
	case IsControl(b):
		return Event{Kind: Control, Code: b}
	default:
		return Event{Kind: Printable, Code: b}
	}
}

// String returns a human-readable representation of the Event for debug display.
func (e Event) String() string {
	switch {
	case e.Code == 0x1b:
		return "Esc"
	case e.Code == 0x7f:
		return "DEL"
	case IsControl(e.Code):
		return "Ctrl+" + string(rune(e.Code|0x40))
	case e.Code >= 0x80:
		return fmt.Sprintf("0x%02X", e.Code)
	}
	return fmt.Sprintf("'%c'", e.Code)
}
