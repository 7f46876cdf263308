// ABOUTME: Translates between Attr and unix.Termios at the ioctl boundary.
// ABOUTME: The only place in the package that knows flag bit layouts.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// fromTermios builds an Attr from t, keeping a copy of t as the native
// snapshot.
func fromTermios(t *unix.Termios) Attr {
	return Attr{
		Input: InputFlags{
			FlowControl: t.Iflag&unix.IXON != 0,
			CRToNL:      t.Iflag&unix.ICRNL != 0,
			ParityCheck: t.Iflag&unix.INPCK != 0,
			Strip8thBit: t.Iflag&unix.ISTRIP != 0,
			BreakSignal: t.Iflag&unix.BRKINT != 0,
		},
		Output: OutputFlags{
			PostProcess: t.Oflag&unix.OPOST != 0,
		},
		Local: LocalFlags{
			Echo:      t.Lflag&unix.ECHO != 0,
			Canonical: t.Lflag&unix.ICANON != 0,
			Signals:   t.Lflag&unix.ISIG != 0,
			Extended:  t.Lflag&unix.IEXTEN != 0,
		},
		Control: ControlFlags{
			EightBit: t.Cflag&unix.CSIZE == unix.CS8,
		},
		MinBytes: t.Cc[unix.VMIN],
		Timeout:  t.Cc[unix.VTIME],
		native:   *t,
	}
}

// toTermios renders a onto its native snapshot. An Attr without one
// (built by hand) starts from zeroed termios.
func toTermios(a Attr) unix.Termios {
	var t unix.Termios
	if n, ok := a.native.(unix.Termios); ok {
		t = n
	}

	setBit(&t.Iflag, unix.IXON, a.Input.FlowControl)
	setBit(&t.Iflag, unix.ICRNL, a.Input.CRToNL)
	setBit(&t.Iflag, unix.INPCK, a.Input.ParityCheck)
	setBit(&t.Iflag, unix.ISTRIP, a.Input.Strip8thBit)
	setBit(&t.Iflag, unix.BRKINT, a.Input.BreakSignal)

	setBit(&t.Oflag, unix.OPOST, a.Output.PostProcess)

	setBit(&t.Lflag, unix.ECHO, a.Local.Echo)
	setBit(&t.Lflag, unix.ICANON, a.Local.Canonical)
	setBit(&t.Lflag, unix.ISIG, a.Local.Signals)
	setBit(&t.Lflag, unix.IEXTEN, a.Local.Extended)

	// Only an explicit request changes the character size; there is no
	// single "not eight bit" size to fall back to.
	if a.Control.EightBit && t.Cflag&unix.CSIZE != unix.CS8 {
		t.Cflag &^= unix.CSIZE
		t.Cflag |= unix.CS8
	}

	t.Cc[unix.VMIN] = a.MinBytes
	t.Cc[unix.VTIME] = a.Timeout
	return t
}

func setBit[T ~uint32 | ~uint64](flags *T, mask T, on bool) {
	if on {
		*flags |= mask
	} else {
		*flags &^= mask
	}
}
