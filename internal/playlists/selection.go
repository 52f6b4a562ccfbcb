package playlists

import (
	"slices"

	"github.com/llehouerou/setlist/internal/playlist"
)

// HandleItemSelection applies a click on index of the active playlist.
//
//   - shift with an anchor selects the inclusive range anchor..index and keeps the anchor
//   - shift without an anchor behaves like a plain click
//   - ctrl toggles index and moves the anchor to it
//   - a plain click selects only index and moves the anchor to it
//
// Returns false if index is out of bounds.
func (m *Manager) HandleItemSelection(index int, ctrl, shift bool) bool {
	if index < 0 || index >= m.active().Len() {
		return false
	}

	switch {
	case shift && m.anchor != noIndex:
		lo, hi := min(m.anchor, index), max(m.anchor, index)
		clear(m.selected)
		for i := lo; i <= hi; i++ {
			m.selected[i] = struct{}{}
		}
	case ctrl && !shift:
		if _, ok := m.selected[index]; ok {
			delete(m.selected, index)
		} else {
			m.selected[index] = struct{}{}
		}
		m.anchor = index
	default:
		clear(m.selected)
		m.selected[index] = struct{}{}
		m.anchor = index
	}
	return true
}

// SelectAll selects every track of the active playlist and clears the anchor.
func (m *Manager) SelectAll() {
	clear(m.selected)
	for i := range m.active().Len() {
		m.selected[i] = struct{}{}
	}
	m.anchor = noIndex
}

// ClearSelection empties the selection and clears the anchor.
func (m *Manager) ClearSelection() {
	clear(m.selected)
	m.anchor = noIndex
}

// SelectedIndices returns the selected indices in ascending order.
func (m *Manager) SelectedIndices() []int {
	result := make([]int, 0, len(m.selected))
	for i := range m.selected {
		result = append(result, i)
	}
	slices.Sort(result)
	return result
}

// SelectedTracks returns the selected tracks in playlist order.
func (m *Manager) SelectedTracks() []playlist.Track {
	p := m.active()
	indices := m.SelectedIndices()
	result := make([]playlist.Track, 0, len(indices))
	for _, i := range indices {
		if t := p.Track(i); t != nil {
			result = append(result, *t)
		}
	}
	return result
}

// IsSelected reports whether index is selected.
func (m *Manager) IsSelected(index int) bool {
	_, ok := m.selected[index]
	return ok
}

// SelectionAnchor returns the shift-selection anchor, or -1 if none.
func (m *Manager) SelectionAnchor() int {
	return m.anchor
}

// RemoveSelected removes every selected track from the active playlist
// and returns how many were removed.
func (m *Manager) RemoveSelected() int {
	indices := m.SelectedIndices()
	p := m.active()
	removed := 0
	// Descending so earlier removals do not shift later ones.
	for i := len(indices) - 1; i >= 0; i-- {
		if _, ok := m.removeTrack(p, indices[i]); ok {
			removed++
		}
	}
	m.ClearSelection()
	return removed
}

// MoveSelectedUp moves the selected tracks one position toward the start.
// Returns false if nothing is selected or the first selected track is already first.
func (m *Manager) MoveSelectedUp() bool {
	return m.applySteps(m.selectionCalculator().shiftSteps(-1))
}

// MoveSelectedDown moves the selected tracks one position toward the end.
// Returns false if nothing is selected or the last selected track is already last.
func (m *Manager) MoveSelectedDown() bool {
	return m.applySteps(m.selectionCalculator().shiftSteps(1))
}

// MoveSelectedToTop packs the selected tracks at the start, keeping their order.
func (m *Manager) MoveSelectedToTop() bool {
	return m.applySteps(m.selectionCalculator().toTopSteps())
}

// MoveSelectedToBottom packs the selected tracks at the end, keeping their order.
func (m *Manager) MoveSelectedToBottom() bool {
	return m.applySteps(m.selectionCalculator().toBottomSteps())
}

func (m *Manager) selectionCalculator() *positionCalculator {
	return newPositionCalculator(m.SelectedIndices(), m.active().Len())
}

// applySteps performs moves on the active playlist. moveTrack remaps the
// selection after each step, so the same tracks stay selected.
func (m *Manager) applySteps(steps []moveStep) bool {
	if len(steps) == 0 {
		return false
	}
	p := m.active()
	for _, s := range steps {
		m.moveTrack(p, s.from, s.to)
	}
	return true
}

// remapSelection rewrites every selected index and the anchor through f.
// Indices mapped to -1 are dropped.
func (m *Manager) remapSelection(f func(int) int) {
	if len(m.selected) > 0 {
		next := make(map[int]struct{}, len(m.selected))
		for i := range m.selected {
			if j := f(i); j != noIndex {
				next[j] = struct{}{}
			}
		}
		m.selected = next
	}
	if m.anchor != noIndex {
		m.anchor = f(m.anchor)
	}
}
