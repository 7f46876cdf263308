// ABOUTME: Error taxonomy for terminal operations: query, set, read and write failures.
// ABOUTME: Error carries the failing operation name and the underlying OS error.

package terminal

import "errors"

// Error kinds. Test with errors.Is.
var (
	ErrQuery = errors.New("terminal query failed")
	ErrSet   = errors.New("terminal set failed")
	ErrRead  = errors.New("terminal read failed")
	ErrWrite = errors.New("terminal write failed")
)

// Benign read outcomes. Neither is fatal; the reader retries.
var (
	ErrWouldBlock = errors.New("read would block")
	ErrTimeout    = errors.New("read timed out")
)

// Controller misuse.
var (
	ErrNotCaptured     = errors.New("terminal attributes not captured")
	ErrAlreadyCaptured = errors.New("terminal attributes already captured")
)

// Error describes a failed terminal operation.
type Error struct {
	Op   string // tcgetattr, tcsetattr, read, write
	Kind error  // one of ErrQuery, ErrSet, ErrRead, ErrWrite
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError wraps err as an *Error of the given kind. An err that already
// is (or wraps) an *Error is returned unchanged.
func NewError(op string, kind, err error) error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	return &Error{Op: op, Kind: kind, Err: err}
}
