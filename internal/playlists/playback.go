package playlists

import (
	"slices"

	"github.com/llehouerou/setlist/internal/playlist"
)

// RepeatMode returns the current repeat mode.
func (m *Manager) RepeatMode() RepeatMode {
	return m.repeat
}

// SetRepeatMode sets the repeat mode.
func (m *Manager) SetRepeatMode(mode RepeatMode) {
	m.repeat = mode
}

// CycleRepeatMode advances Off -> All -> One -> Off and returns the new mode.
func (m *Manager) CycleRepeatMode() RepeatMode {
	m.repeat = m.repeat.Next()
	return m.repeat
}

// PlayingPlaylistID returns the id of the playlist being played, or "" if none.
func (m *Manager) PlayingPlaylistID() string {
	return m.playingID
}

// CurrentIndex returns the index of the playing track (-1 if none).
func (m *Manager) CurrentIndex() int {
	return m.playingIndex
}

// CurrentTrack returns the playing track, or nil if none.
// It resolves through the playing playlist, never the active one.
func (m *Manager) CurrentTrack() *playlist.Track {
	p := m.find(m.playingID)
	if p == nil {
		return nil
	}
	return p.Track(m.playingIndex)
}

// SetCurrentIndex starts playing index of the active playlist.
// Returns false if index is out of bounds.
func (m *Manager) SetCurrentIndex(index int) bool {
	return m.SetPlaying(m.activeID, index)
}

// SetPlaying starts playing index of playlist id.
// Returns false if id is unknown or index is out of bounds.
func (m *Manager) SetPlaying(id string, index int) bool {
	p := m.find(id)
	if p == nil || index < 0 || index >= p.Len() {
		return false
	}
	m.playingID = id
	m.playingIndex = index
	m.syncShufflePosition()
	return true
}

// ClearCurrent resets the playback pointer.
func (m *Manager) ClearCurrent() {
	m.playingID = ""
	m.playingIndex = noIndex
	m.shufflePos = noIndex
}

// Next steps to the following track in playlist order, ignoring shuffle
// and repeat. With nothing playing it starts the active playlist. At the
// end it returns nil and leaves the pointer unchanged.
func (m *Manager) Next() *playlist.Track {
	if m.playingID == "" {
		if !m.SetPlaying(m.activeID, 0) {
			return nil
		}
		return m.CurrentTrack()
	}
	if m.playingIndex+1 >= m.find(m.playingID).Len() {
		return nil
	}
	m.playingIndex++
	m.syncShufflePosition()
	return m.CurrentTrack()
}

// Previous steps to the preceding track in playlist order, ignoring
// shuffle and repeat. At the start it returns nil and leaves the pointer unchanged.
func (m *Manager) Previous() *playlist.Track {
	if m.playingID == "" || m.playingIndex == 0 {
		return nil
	}
	m.playingIndex--
	m.syncShufflePosition()
	return m.CurrentTrack()
}

// NextWithModes advances the playback pointer honoring shuffle and repeat
// and returns the track to play, or nil when playback should stop.
func (m *Manager) NextWithModes() *playlist.Track {
	p := m.find(m.playingID)
	if p == nil {
		return m.startPlayback()
	}

	if m.repeat == RepeatOne {
		return m.CurrentTrack()
	}

	if m.shuffle {
		return m.nextShuffled(p)
	}

	switch {
	case m.playingIndex+1 < p.Len():
		m.playingIndex++
	case m.repeat == RepeatAll:
		m.playingIndex = 0
	default:
		m.ClearCurrent()
		return nil
	}
	return m.CurrentTrack()
}

func (m *Manager) nextShuffled(p *playlist.Playlist) *playlist.Track {
	m.ensureShuffleOrder(p)
	if m.shufflePos == noIndex {
		m.shufflePos = slices.Index(m.shuffleOrder, m.playingIndex)
	}

	switch {
	case m.shufflePos+1 < len(m.shuffleOrder):
		m.shufflePos++
	case m.repeat == RepeatAll:
		m.generateShuffleOrderFor(p)
		m.shufflePos = 0
	default:
		m.ClearCurrent()
		return nil
	}
	m.playingIndex = m.shuffleOrder[m.shufflePos]
	return m.CurrentTrack()
}

// startPlayback begins the active playlist at sequential index 0, or at
// shuffle position 0 when shuffle is enabled.
func (m *Manager) startPlayback() *playlist.Track {
	p := m.active()
	if p.IsEmpty() {
		return nil
	}
	index := 0
	if m.shuffle {
		m.ensureShuffleOrder(p)
		index = m.shuffleOrder[0]
	}
	m.playingID = p.ID()
	m.playingIndex = index
	if m.shuffle {
		m.shufflePos = 0
	}
	return m.CurrentTrack()
}

// PreviousWithModes steps back honoring shuffle. Going backward never
// wraps and ignores RepeatOne. At the start it returns nil and leaves the
// pointer unchanged.
func (m *Manager) PreviousWithModes() *playlist.Track {
	p := m.find(m.playingID)
	if p == nil {
		return nil
	}

	if m.shuffle {
		m.ensureShuffleOrder(p)
		if m.shufflePos == noIndex {
			m.shufflePos = slices.Index(m.shuffleOrder, m.playingIndex)
		}
		if m.shufflePos <= 0 {
			return nil
		}
		m.shufflePos--
		m.playingIndex = m.shuffleOrder[m.shufflePos]
		return m.CurrentTrack()
	}

	if m.playingIndex == 0 {
		return nil
	}
	m.playingIndex--
	return m.CurrentTrack()
}
