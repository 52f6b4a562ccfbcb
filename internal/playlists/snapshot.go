package playlists

import (
	"slices"
	"time"

	"github.com/llehouerou/setlist/internal/playlist"
)

// Snapshot is the serializable state of a Manager.
type Snapshot struct {
	Playlists        []PlaylistSnapshot `json:"playlists"`
	ActivePlaylistID string             `json:"active_playlist_id"`
	Playback         *PlaybackSnapshot  `json:"playback,omitempty"`
}

// PlaylistSnapshot is one persisted playlist.
type PlaylistSnapshot struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Tracks     []playlist.Track `json:"tracks"`
	CreatedAt  time.Time        `json:"created_at"`
	ModifiedAt time.Time        `json:"modified_at"`
}

// PlaybackSnapshot holds the playback pointer and navigation settings.
type PlaybackSnapshot struct {
	PlaylistID string     `json:"playlist_id,omitempty"`
	Index      int        `json:"index"`
	RepeatMode RepeatMode `json:"repeat_mode"`
	Shuffle    bool       `json:"shuffle"`

	// ShuffleOrder is the permutation being traversed over the playlist
	// ShufflePlaylistID. Empty when shuffle is off.
	ShufflePlaylistID string `json:"shuffle_playlist_id,omitempty"`
	ShuffleOrder      []int  `json:"shuffle_order,omitempty"`
}

// Snapshot captures the playlists, the active id, and the playback state.
// The selection is not persisted.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		Playlists:        make([]PlaylistSnapshot, len(m.playlists)),
		ActivePlaylistID: m.activeID,
		Playback: &PlaybackSnapshot{
			PlaylistID: m.playingID,
			Index:      m.playingIndex,
			RepeatMode: m.repeat,
			Shuffle:    m.shuffle,
		},
	}
	if m.shuffle && len(m.shuffleOrder) > 0 {
		s.Playback.ShufflePlaylistID = m.shuffleID
		s.Playback.ShuffleOrder = slices.Clone(m.shuffleOrder)
	}
	for i, p := range m.playlists {
		s.Playlists[i] = PlaylistSnapshot{
			ID:         p.ID(),
			Name:       p.Name(),
			Tracks:     p.Tracks(),
			CreatedAt:  p.CreatedAt(),
			ModifiedAt: p.ModifiedAt(),
		}
	}
	return s
}

// FromSnapshot rebuilds a Manager, repairing whatever violates its invariants:
// the default playlist is inserted when missing and keeps its fixed name,
// playlists with empty or repeated ids are dropped, names are re-sanitized
// and deduplicated, dangling active or playing ids fall back to the
// default playlist and no playback respectively, and a stored shuffle
// order that is not a permutation is regenerated.
// Options override the persisted repeat and shuffle settings only when
// the snapshot has no playback section.
func FromSnapshot(s Snapshot, opts ...Option) *Manager {
	m := newManager(opts)
	repaired := false

	seen := make(map[string]bool, len(s.Playlists))
	// The default name is reserved even when the default playlist is missing.
	assigned := []string{playlist.DefaultName}
	taken := func(name string) bool {
		for _, a := range assigned {
			if playlist.SameName(a, name) {
				return true
			}
		}
		return false
	}

	for _, ps := range s.Playlists {
		if ps.ID == "" || seen[ps.ID] {
			repaired = true
			continue
		}
		seen[ps.ID] = true

		name := playlist.DefaultName
		if ps.ID != playlist.DefaultID {
			name = playlist.UniqueName(playlist.SanitizeName(ps.Name), taken)
			assigned = append(assigned, name)
		}
		if name != ps.Name {
			repaired = true
		}
		m.playlists = append(m.playlists,
			playlist.Restore(ps.ID, name, ps.Tracks, ps.CreatedAt, ps.ModifiedAt, m.now))
	}

	if !seen[playlist.DefaultID] {
		repaired = true
		m.playlists = append([]*playlist.Playlist{m.newDefault()}, m.playlists...)
	}

	m.activeID = s.ActivePlaylistID
	if m.find(m.activeID) == nil {
		if m.activeID != "" {
			repaired = true
		}
		m.activeID = playlist.DefaultID
	}

	if pb := s.Playback; pb != nil {
		m.repeat = pb.RepeatMode
		m.shuffle = pb.Shuffle
		if !m.restoreShuffleOrder(pb) {
			repaired = true
		}
		if pb.PlaylistID != "" && !m.SetPlaying(pb.PlaylistID, pb.Index) {
			repaired = true
		}
	}
	if m.shuffle && len(m.shuffleOrder) == 0 {
		m.generateShuffleOrder()
	}

	if repaired {
		m.log.Warn("repaired inconsistent playlist state",
			"playlists", len(m.playlists), "active", m.activeID)
	}
	return m
}

// restoreShuffleOrder adopts the persisted order when it is a permutation
// of its playlist's indices. Returns false if a stored order was rejected.
func (m *Manager) restoreShuffleOrder(pb *PlaybackSnapshot) bool {
	if !m.shuffle || len(pb.ShuffleOrder) == 0 {
		return true
	}
	p := m.find(pb.ShufflePlaylistID)
	if p == nil || !isPermutation(pb.ShuffleOrder, p.Len()) {
		return false
	}
	m.shuffleOrder = slices.Clone(pb.ShuffleOrder)
	m.shuffleID = p.ID()
	return true
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
