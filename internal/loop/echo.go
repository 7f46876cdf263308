// ABOUTME: Diagnostic echo format: decimal value, plus the glyph for printable bytes
// ABOUTME: Lines end in CR LF because raw mode turns off output newline translation

package loop

import (
	"strconv"

	"github.com/mauromedda/kilo-go/pkg/tui/key"
)

// echoLine formats ev as "17\r\n" for control bytes or "65 ('A')\r\n"
// for printable ones. The glyph is the raw byte, as the terminal would
// have echoed it.
func echoLine(ev key.Event) []byte {
	line := strconv.AppendInt(make([]byte, 0, 16), int64(ev.Code), 10)
	if ev.Kind == key.Printable {
		line = append(line, " ('"...)
		line = append(line, ev.Code)
		line = append(line, "')"...)
	}
	return append(line, '\r', '\n')
}
