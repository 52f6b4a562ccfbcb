package playlists

import (
	"slices"

	"github.com/llehouerou/setlist/internal/playlist"
)

// Shuffle returns whether shuffle is enabled.
func (m *Manager) Shuffle() bool {
	return m.shuffle
}

// SetShuffle enables or disables shuffle. Enabling keeps an existing order
// that still covers the target playlist and points the position at the
// playing track; disabling discards the order.
func (m *Manager) SetShuffle(enabled bool) {
	m.shuffle = enabled
	if !enabled {
		m.discardShuffleOrder()
		return
	}
	p := m.find(m.playingID)
	if p == nil {
		p = m.active()
	}
	m.ensureShuffleOrder(p)
	m.shufflePos = noIndex
	if m.playingID == p.ID() {
		m.shufflePos = slices.Index(m.shuffleOrder, m.playingIndex)
	}
}

// ToggleShuffle flips the shuffle setting and returns the new value.
func (m *Manager) ToggleShuffle() bool {
	m.SetShuffle(!m.shuffle)
	return m.shuffle
}

// ShuffleOrder returns a copy of the current shuffle order.
func (m *Manager) ShuffleOrder() []int {
	return slices.Clone(m.shuffleOrder)
}

// ShufflePosition returns the position of the playing track in the
// shuffle order, or -1 if none.
func (m *Manager) ShufflePosition() int {
	return m.shufflePos
}

// GenerateShuffleOrder builds a fresh random order over the playing
// playlist, or over the active one when nothing is playing.
func (m *Manager) GenerateShuffleOrder() {
	m.generateShuffleOrder()
}

func (m *Manager) generateShuffleOrder() {
	p := m.find(m.playingID)
	if p == nil {
		p = m.active()
	}
	m.generateShuffleOrderFor(p)
}

// generateShuffleOrderFor runs a Fisher-Yates shuffle over the indices of p
// and relocates the playing track inside the new order.
func (m *Manager) generateShuffleOrderFor(p *playlist.Playlist) {
	n := p.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := m.rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	m.shuffleOrder = order
	m.shuffleID = p.ID()
	m.shufflePos = noIndex
	if m.playingID == p.ID() {
		m.shufflePos = slices.Index(order, m.playingIndex)
	}
}

// ensureShuffleOrder regenerates the order unless it already covers every track of p.
func (m *Manager) ensureShuffleOrder(p *playlist.Playlist) {
	if m.shuffleID != p.ID() || len(m.shuffleOrder) != p.Len() {
		m.generateShuffleOrderFor(p)
	}
}

func (m *Manager) discardShuffleOrder() {
	m.shuffleOrder = nil
	m.shufflePos = noIndex
	m.shuffleID = ""
}

// syncShufflePosition points the shuffle position at the playing track.
func (m *Manager) syncShufflePosition() {
	if !m.shuffle || m.playingID == "" {
		return
	}
	p := m.find(m.playingID)
	m.ensureShuffleOrder(p)
	m.shufflePos = slices.Index(m.shuffleOrder, m.playingIndex)
}

// insertIntoShuffle places a newly inserted index at a random position
// among the tracks not yet played in the current order.
func (m *Manager) insertIntoShuffle(index int) {
	start := m.shufflePos + 1
	pos := start + m.rng.IntN(len(m.shuffleOrder)-start+1)
	m.shuffleOrder = slices.Insert(m.shuffleOrder, pos, index)
}

// removeFromShuffle drops a removed index from the order and shifts the
// indices after it.
func (m *Manager) removeFromShuffle(index int) {
	pos := slices.Index(m.shuffleOrder, index)
	if pos < 0 {
		return
	}
	m.shuffleOrder = slices.Delete(m.shuffleOrder, pos, pos+1)
	for i, v := range m.shuffleOrder {
		if v > index {
			m.shuffleOrder[i] = v - 1
		}
	}
	switch {
	case pos < m.shufflePos:
		m.shufflePos--
	case pos == m.shufflePos:
		m.shufflePos = noIndex
	}
}
