package playlist

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

const (
	// MaxNameLength is the maximum playlist name length in user-perceived characters.
	MaxNameLength = 100

	// FallbackName is used when a name sanitizes to nothing.
	FallbackName = "New Playlist"

	// DefaultName is the fixed name of the default playlist.
	DefaultName = "Default"
)

// unsafeNameChars cannot appear in file names on at least one common filesystem.
const unsafeNameChars = `/\:*?"<>|`

// SanitizeName trims name, replaces filesystem-unsafe characters with '_'
// and truncates it to MaxNameLength characters.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(unsafeNameChars, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))

	name = strings.TrimSpace(truncateGraphemes(name, MaxNameLength))
	if name == "" {
		return FallbackName
	}
	return name
}

// UniqueName returns name, or name with a " (n)" suffix, such that taken
// reports false for it. The result never exceeds MaxNameLength characters.
func UniqueName(name string, taken func(string) bool) string {
	if !taken(name) {
		return name
	}
	for n := 2; ; n++ {
		suffix := " (" + strconv.Itoa(n) + ")"
		base := truncateGraphemes(name, MaxNameLength-len(suffix))
		candidate := strings.TrimSpace(base) + suffix
		if !taken(candidate) {
			return candidate
		}
	}
}

// SameName reports whether two playlist names collide.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// truncateGraphemes cuts s after max grapheme clusters.
func truncateGraphemes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(s) <= maxLen {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for count := 0; count < maxLen && g.Next(); count++ {
		b.WriteString(g.Str())
	}
	return b.String()
}
