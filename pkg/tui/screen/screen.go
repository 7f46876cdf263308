// ABOUTME: Full-screen refresh protocol: clear, home, one marker per row, home again
// ABOUTME: Frames are built in memory and emitted with a single write

package screen

import (
	"bytes"
	"io"

	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// Escape sequences emitted by the renderer. Bit-exact VT100.
const (
	ClearDisplay = "\x1b[2J" // erase entire display
	CursorHome   = "\x1b[H"  // cursor to row 1, column 1
)

var clearAndHome = []byte(ClearDisplay + CursorHome)

// Defaults used when Options leaves a field zero.
const (
	DefaultRows   = 24
	DefaultMarker = "~"
)

// Options configures a Renderer.
type Options struct {
	Rows   int    // number of display rows; <= 0 means DefaultRows
	Marker string // placeholder glyph at the start of every row
	Banner string // optional text on row Rows/3
	Width  int    // terminal columns, for centering the banner; 0 if unknown
}

// Renderer draws placeholder frames. It holds only its configuration, so
// successive frames are byte-identical.
type Renderer struct {
	rows   int
	marker string
	banner string
	width  int
}

// New returns a Renderer for o.
func New(o Options) *Renderer {
	r := &Renderer{
		rows:   o.Rows,
		marker: o.Marker,
		banner: o.Banner,
		width:  o.Width,
	}
	if r.rows <= 0 {
		r.rows = DefaultRows
	}
	if r.marker == "" {
		r.marker = DefaultMarker
	}
	return r
}

// Rows returns the number of rows each frame draws.
func (r *Renderer) Rows() int {
	return r.rows
}

// Frame returns the bytes of one full redraw.
func (r *Renderer) Frame() []byte {
	buf := acquireBuffer()
	defer releaseBuffer(buf)

	r.render(buf)
	return bytes.Clone(buf.Bytes())
}

// Refresh writes one full redraw to w in a single Write call.
func (r *Renderer) Refresh(w io.Writer) error {
	buf := acquireBuffer()
	defer releaseBuffer(buf)

	r.render(buf)
	_, err := w.Write(buf.Bytes())
	return err
}

// render emits clear and home first, then the rows, then home again.
// The order is part of the output contract.
func (r *Renderer) render(buf *bytes.Buffer) {
	buf.WriteString(ClearDisplay)
	buf.WriteString(CursorHome)

	bannerRow := -1
	if r.banner != "" {
		bannerRow = r.rows / 3
	}
	for y := 0; y < r.rows; y++ {
		buf.WriteString(r.marker)
		if y == bannerRow {
			buf.WriteString(r.bannerText())
		}
		buf.WriteString("\r\n")
	}

	buf.WriteString(CursorHome)
}

func (r *Renderer) bannerText() string {
	if r.width <= 0 {
		return " " + r.banner
	}
	return width.Center(r.banner, r.width, width.Of(r.marker))
}

// ClearAndHome erases the display and homes the cursor in one write.
func ClearAndHome(w io.Writer) error {
	_, err := w.Write(clearAndHome)
	return err
}
