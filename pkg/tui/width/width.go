// ABOUTME: Display width and column truncation with grapheme-aware segmentation
// ABOUTME: Fast path for pure ASCII; uniseg clusters measured with go-runewidth

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Of returns the number of terminal columns s occupies.
func Of(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Truncate returns the longest prefix of s that fits in cols columns,
// never splitting a grapheme cluster.
func Truncate(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) > cols {
			return s[:cols]
		}
		return s
	}
	used := 0
	end := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := clusterWidth(cluster)
		if used+w > cols {
			break
		}
		used += w
		end += len(cluster)
	}
	return s[:end]
}

// Center returns s truncated to the cols-lead columns left on a row whose
// first lead columns are taken, preceded by enough spaces to center it on
// the whole row.
func Center(s string, cols, lead int) string {
	s = Truncate(s, cols-lead)
	pad := (cols-Of(s))/2 - lead
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth returns the display width of a single grapheme cluster.
func clusterWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
