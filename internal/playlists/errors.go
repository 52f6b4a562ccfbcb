package playlists

import (
	"errors"
	"fmt"

	"github.com/llehouerou/setlist/internal/playlist"
)

var (
	// ErrPlaylistNotFound is returned when a playlist id is unknown.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrDefaultPlaylist is returned when renaming or deleting the default playlist.
	ErrDefaultPlaylist = errors.New("the default playlist cannot be renamed or deleted")

	// ErrDuplicateTrack is matched by *DuplicateTrackError.
	ErrDuplicateTrack = errors.New("track already in playlist")

	// ErrSamePlaylist is returned when copying or moving a selection onto its own playlist.
	ErrSamePlaylist = errors.New("source and target playlist are the same")

	// ErrNoSelection is returned by selection commands when nothing is selected.
	ErrNoSelection = errors.New("no tracks selected")
)

// DuplicateTrackError reports a track rejected by a duplicate-checked add.
type DuplicateTrackError struct {
	Track    playlist.Track
	Playlist string // playlist name
}

func (e *DuplicateTrackError) Error() string {
	return fmt.Sprintf("%q is already in playlist %q", e.Track.DisplayTitle(), e.Playlist)
}

// Is makes errors.Is(err, ErrDuplicateTrack) match.
func (e *DuplicateTrackError) Is(target error) bool {
	return target == ErrDuplicateTrack
}
