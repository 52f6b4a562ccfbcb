package playlists

import (
	"fmt"
	"strings"
)

// RepeatMode defines what happens when traversal reaches the end of the order.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota // stop at the end
	RepeatAll                   // wrap to the start
	RepeatOne                   // loop the current track
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Next returns the mode that follows m when cycling.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// ParseRepeatMode converts a config or command-line value to a RepeatMode.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "normal", "none":
		return RepeatOff, nil
	case "all", "playlist":
		return RepeatAll, nil
	case "one", "track":
		return RepeatOne, nil
	default:
		return RepeatOff, fmt.Errorf("unknown repeat mode %q", s)
	}
}
