// ABOUTME: Tests for the refresh protocol: exact escape sequences, row count, idempotence
// ABOUTME: Uses in-memory writers to capture output for assertions

package screen

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestConstants_AreBitExact(t *testing.T) {
	t.Parallel()

	if ClearDisplay != "\x1b[2J" || len(ClearDisplay) != 4 {
		t.Errorf("ClearDisplay = %q", ClearDisplay)
	}
	if CursorHome != "\x1b[H" || len(CursorHome) != 3 {
		t.Errorf("CursorHome = %q", CursorHome)
	}
}

func TestFrame_Structure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		wantRows int
	}{
		{name: "default rows", opts: Options{}, wantRows: 24},
		{name: "configured rows", opts: Options{Rows: 5}, wantRows: 5},
		{name: "single row", opts: Options{Rows: 1}, wantRows: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			frame := string(New(tt.opts).Frame())

			if !strings.HasPrefix(frame, "\x1b[2J\x1b[H") {
				t.Fatalf("frame does not start with clear+home: %q", frame)
			}
			if !strings.HasSuffix(frame, "\r\n\x1b[H") {
				t.Fatalf("frame does not end with rows then home: %q", frame)
			}

			body := strings.TrimSuffix(strings.TrimPrefix(frame, "\x1b[2J\x1b[H"), "\x1b[H")
			want := strings.Repeat("~\r\n", tt.wantRows)
			if body != want {
				t.Errorf("rows = %q, want %q", body, want)
			}
		})
	}
}

func TestFrame_Idempotent(t *testing.T) {
	t.Parallel()

	r := New(Options{Rows: 10, Banner: "kilo", Width: 40})
	first := r.Frame()
	second := r.Frame()
	if !bytes.Equal(first, second) {
		t.Errorf("frames differ:\n%q\n%q", first, second)
	}

	var a, b bytes.Buffer
	if err := r.Refresh(&a); err != nil {
		t.Fatal(err)
	}
	if err := r.Refresh(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) || !bytes.Equal(a.Bytes(), first) {
		t.Error("Refresh output differs from Frame")
	}
}

func TestRefresh_SingleWrite(t *testing.T) {
	t.Parallel()

	var w countingWriter
	if err := New(Options{}).Refresh(&w); err != nil {
		t.Fatal(err)
	}
	if w.writes != 1 {
		t.Errorf("Refresh made %d writes, want 1", w.writes)
	}
}

func TestRefresh_WriteError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	if err := New(Options{}).Refresh(failingWriter{errBoom}); !errors.Is(err, errBoom) {
		t.Errorf("Refresh() = %v, want %v", err, errBoom)
	}
}

func TestFrame_BannerRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "centered", opts: Options{Rows: 6, Banner: "kilo", Width: 10}, want: "~  kilo"},
		{name: "unknown width", opts: Options{Rows: 6, Banner: "kilo"}, want: "~ kilo"},
		{name: "truncated", opts: Options{Rows: 6, Banner: "kilo editor", Width: 5}, want: "~kilo"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body := strings.TrimPrefix(string(New(tt.opts).Frame()), ClearDisplay+CursorHome)
			lines := strings.Split(body, "\r\n")
			if got := lines[tt.opts.Rows/3]; got != tt.want {
				t.Errorf("banner row = %q, want %q", got, tt.want)
			}
			if got := lines[0]; got != "~" {
				t.Errorf("row 0 = %q, want %q", got, "~")
			}
		})
	}
}

func TestFrame_CustomMarker(t *testing.T) {
	t.Parallel()

	frame := string(New(Options{Rows: 2, Marker: ">"}).Frame())
	if want := ClearDisplay + CursorHome + ">\r\n>\r\n" + CursorHome; frame != want {
		t.Errorf("Frame() = %q, want %q", frame, want)
	}
}

func TestClearAndHome(t *testing.T) {
	t.Parallel()

	var w countingWriter
	if err := ClearAndHome(&w); err != nil {
		t.Fatal(err)
	}
	if w.String() != "\x1b[2J\x1b[H" || w.writes != 1 {
		t.Errorf("ClearAndHome wrote %q in %d writes", w.String(), w.writes)
	}
}
