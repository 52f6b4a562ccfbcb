// Package render formats playlist data for terminal output.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8
// bytes so bad tag metadata cannot break the terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			// Invalid byte
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b == 0x7f || (b >= 0x80 && b <= 0x9f) {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && (s[i+1] == 0xa0 || s[i+1] < 0xa0) {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens s to fit within maxWidth cells, adding "..." if truncated.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateAndPad truncates s if necessary, then pads it to exactly width cells.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Columns lays cells out in fixed-width columns separated by two spaces.
// The last cell is truncated but not padded.
func Columns(widths []int, cells ...string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		switch {
		case i >= len(widths):
			parts[i] = Sanitize(c)
		case i == len(cells)-1:
			parts[i] = Truncate(c, widths[i])
		default:
			parts[i] = TruncateAndPad(c, widths[i])
		}
	}
	return strings.Join(parts, "  ")
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// Duration formats d as m:ss, or h:mm:ss from one hour up.
// Unknown (zero) durations render as "--:--".
func Duration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
