// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpPlaylistCreate   Op = "create playlist"
	OpPlaylistRename   Op = "rename playlist"
	OpPlaylistDelete   Op = "delete playlist"
	OpPlaylistActivate Op = "switch playlist"
	OpPlaylistAddTrack Op = "add track to playlist"
	OpPlaylistRemove   Op = "remove track from playlist"
	OpPlaylistMove     Op = "move playlist item"
	OpPlaylistShow     Op = "show playlist"

	// Playback operations
	OpPlaybackStart  Op = "start playback"
	OpPlaybackNext   Op = "skip to next track"
	OpPlaybackPrev   Op = "go back to previous track"
	OpPlaybackRepeat Op = "set repeat mode"
	OpShuffleToggle  Op = "change shuffle"

	// State operations
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// File operations
	OpImportTags Op = "read file tags"
	OpExportFile Op = "export playlists"
	OpImportFile Op = "import playlists"
	OpM3UExport  Op = "export M3U playlist"
	OpM3UImport  Op = "import M3U playlist"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
