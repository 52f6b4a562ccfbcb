package playlists

import (
	"github.com/llehouerou/setlist/internal/playlist"
)

// AddTrack appends track to playlist id. Returns false if id is unknown.
func (m *Manager) AddTrack(id string, track playlist.Track) bool {
	p := m.find(id)
	if p == nil {
		return false
	}
	m.appendTracks(p, track)
	return true
}

// AddTracks appends tracks to playlist id and returns how many were added.
func (m *Manager) AddTracks(id string, tracks ...playlist.Track) int {
	p := m.find(id)
	if p == nil {
		return 0
	}
	m.appendTracks(p, tracks...)
	return len(tracks)
}

// AddTrackUnique appends track to playlist id unless it is already there.
// A rejected track is reported as a *DuplicateTrackError.
func (m *Manager) AddTrackUnique(id string, track playlist.Track) error {
	p := m.find(id)
	if p == nil {
		return ErrPlaylistNotFound
	}
	if p.Contains(track) {
		return &DuplicateTrackError{Track: track, Playlist: p.Name()}
	}
	m.appendTracks(p, track)
	return nil
}

// InsertTracks inserts tracks before index in playlist id.
func (m *Manager) InsertTracks(id string, index int, tracks ...playlist.Track) bool {
	p := m.find(id)
	if p == nil {
		return false
	}
	return m.insertTracks(p, index, tracks...)
}

// RemoveTrack removes the track at index from the active playlist.
func (m *Manager) RemoveTrack(index int) (playlist.Track, bool) {
	return m.removeTrack(m.active(), index)
}

// RemoveTrackFrom removes the track at index from playlist id.
func (m *Manager) RemoveTrackFrom(id string, index int) (playlist.Track, bool) {
	p := m.find(id)
	if p == nil {
		return playlist.Track{}, false
	}
	return m.removeTrack(p, index)
}

// MoveTrack moves a track within the active playlist. Selection and the
// playback pointer follow the moved tracks.
func (m *Manager) MoveTrack(from, to int) bool {
	return m.moveTrack(m.active(), from, to)
}

// MoveTrackIn moves a track within playlist id.
func (m *Manager) MoveTrackIn(id string, from, to int) bool {
	p := m.find(id)
	if p == nil {
		return false
	}
	return m.moveTrack(p, from, to)
}

func (m *Manager) appendTracks(p *playlist.Playlist, tracks ...playlist.Track) {
	m.insertTracks(p, p.Len(), tracks...)
}

// insertTracks inserts tracks and shifts every index that depends on p.
func (m *Manager) insertTracks(p *playlist.Playlist, at int, tracks ...playlist.Track) bool {
	if !p.Insert(at, tracks...) {
		return false
	}
	count := len(tracks)
	if count == 0 {
		return true
	}
	id := p.ID()

	if id == m.activeID {
		m.remapSelection(func(i int) int { return insertedIndex(i, at, count) })
	}
	if id == m.playingID {
		m.playingIndex = insertedIndex(m.playingIndex, at, count)
	}
	if id == m.shuffleID {
		for i, v := range m.shuffleOrder {
			m.shuffleOrder[i] = insertedIndex(v, at, count)
		}
		for i := range count {
			m.insertIntoShuffle(at + i)
		}
	}
	return true
}

// removeTrack removes one track and remaps every index that depends on p
// in the same step, so no stale index survives the call.
func (m *Manager) removeTrack(p *playlist.Playlist, index int) (playlist.Track, bool) {
	t, ok := p.Remove(index)
	if !ok {
		return playlist.Track{}, false
	}
	id := p.ID()

	if id == m.activeID {
		m.remapSelection(func(i int) int { return removedIndex(i, index) })
	}
	if id == m.shuffleID {
		m.removeFromShuffle(index)
	}
	if id == m.playingID {
		m.playingIndex = removedIndex(m.playingIndex, index)
		if m.playingIndex == noIndex {
			m.log.Debug("playing track removed", "playlist", id, "index", index)
			m.ClearCurrent()
		}
	}
	return t, true
}

func (m *Manager) moveTrack(p *playlist.Playlist, from, to int) bool {
	if !p.Move(from, to) {
		return false
	}
	if from == to {
		return true
	}
	id := p.ID()

	if id == m.activeID {
		m.remapSelection(func(i int) int { return movedIndex(i, from, to) })
	}
	if id == m.playingID {
		m.playingIndex = movedIndex(m.playingIndex, from, to)
	}
	if id == m.shuffleID {
		for i, v := range m.shuffleOrder {
			m.shuffleOrder[i] = movedIndex(v, from, to)
		}
	}
	return true
}
