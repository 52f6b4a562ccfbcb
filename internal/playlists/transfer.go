package playlists

import (
	"github.com/llehouerou/setlist/internal/playlist"
)

// CopySelectedTo appends the selected tracks of the active playlist to
// playlist targetID, skipping tracks the target already contains.
// Returns the number of tracks added.
func (m *Manager) CopySelectedTo(targetID string) (int, error) {
	target, err := m.transferTarget(targetID)
	if err != nil {
		return 0, err
	}
	return m.copyInto(target, m.SelectedTracks()), nil
}

// CopySelectedToNew copies the selected tracks into a new playlist named
// name and returns its id and the number of tracks added.
func (m *Manager) CopySelectedToNew(name string) (string, int, error) {
	if len(m.selected) == 0 {
		return "", 0, ErrNoSelection
	}
	id := m.CreatePlaylist(name)
	return id, m.copyInto(m.find(id), m.SelectedTracks()), nil
}

// MoveSelectedTo appends the selected tracks to playlist targetID, skipping
// duplicates, then removes every selected track from the active playlist.
// Returns the number of tracks added to the target.
func (m *Manager) MoveSelectedTo(targetID string) (int, error) {
	target, err := m.transferTarget(targetID)
	if err != nil {
		return 0, err
	}
	added := m.copyInto(target, m.SelectedTracks())
	m.RemoveSelected()
	m.log.Debug("selection moved", "from", m.activeID, "to", targetID, "added", added)
	return added, nil
}

// MoveSelectedToNew moves the selected tracks into a new playlist named name.
func (m *Manager) MoveSelectedToNew(name string) (string, int, error) {
	if len(m.selected) == 0 {
		return "", 0, ErrNoSelection
	}
	id := m.CreatePlaylist(name)
	added := m.copyInto(m.find(id), m.SelectedTracks())
	m.RemoveSelected()
	return id, added, nil
}

func (m *Manager) transferTarget(targetID string) (*playlist.Playlist, error) {
	if len(m.selected) == 0 {
		return nil, ErrNoSelection
	}
	if targetID == m.activeID {
		return nil, ErrSamePlaylist
	}
	target := m.find(targetID)
	if target == nil {
		return nil, ErrPlaylistNotFound
	}
	return target, nil
}

// copyInto appends the tracks missing from target and returns how many were added.
func (m *Manager) copyInto(target *playlist.Playlist, tracks []playlist.Track) int {
	missing := make([]playlist.Track, 0, len(tracks))
	for _, t := range tracks {
		if target.Contains(t) || containsTrack(missing, t) {
			continue
		}
		missing = append(missing, t)
	}
	m.appendTracks(target, missing...)
	return len(missing)
}

func containsTrack(tracks []playlist.Track, t playlist.Track) bool {
	for i := range tracks {
		if tracks[i].Equal(t) {
			return true
		}
	}
	return false
}
