// Package playlists owns the set of playlists, the selection in the
// displayed playlist, and the playback pointer with its shuffle and repeat
// traversal.
//
// A Manager is not safe for concurrent use. The caller's event loop is
// expected to serialize every command.
package playlists

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/setlist/internal/playlist"
)

// noIndex marks an absent index (nothing playing, no anchor, no shuffle position).
const noIndex = -1

// Manager is the aggregate root for playlists, selection and playback navigation.
type Manager struct {
	playlists []*playlist.Playlist
	activeID  string

	// Playback pointer, independent of activeID.
	playingID    string
	playingIndex int

	// Selection, valid only against the active playlist.
	selected map[int]struct{}
	anchor   int

	repeat  RepeatMode
	shuffle bool

	// shuffleOrder is a permutation of indices into the playlist shuffleID.
	shuffleOrder []int
	shufflePos   int
	shuffleID    string

	log   *slog.Logger
	now   func() time.Time
	rng   *rand.Rand
	newID func() string
}

// New creates a manager holding only the default playlist.
func New(opts ...Option) *Manager {
	m := newManager(opts)
	m.playlists = []*playlist.Playlist{m.newDefault()}
	m.activeID = playlist.DefaultID
	if m.shuffle {
		m.generateShuffleOrder()
	}
	return m
}

func newManager(opts []Option) *Manager {
	m := &Manager{
		playingIndex: noIndex,
		selected:     make(map[int]struct{}),
		anchor:       noIndex,
		shufflePos:   noIndex,
		log:          slog.New(slog.DiscardHandler),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = timeSeededRand()
	}
	return m
}

func (m *Manager) newDefault() *playlist.Playlist {
	return playlist.New(playlist.DefaultID, playlist.DefaultName, m.now)
}

// Stats holds quick counts for status displays.
type Stats struct {
	PlaylistCount int
	TrackCount    int
	Duration      time.Duration
}

// Stats returns the playlist count and the total track count across all playlists.
func (m *Manager) Stats() Stats {
	s := Stats{PlaylistCount: len(m.playlists)}
	for _, p := range m.playlists {
		s.TrackCount += p.Len()
		s.Duration += p.Duration()
	}
	return s
}

// Playlists returns copies of all playlists in tab order.
func (m *Manager) Playlists() []*playlist.Playlist {
	result := make([]*playlist.Playlist, len(m.playlists))
	for i, p := range m.playlists {
		result[i] = p.Clone()
	}
	return result
}

// Playlist returns a copy of the playlist with id, or nil if unknown.
func (m *Manager) Playlist(id string) *playlist.Playlist {
	p := m.find(id)
	if p == nil {
		return nil
	}
	return p.Clone()
}

// PlaylistByName returns the id of the playlist named name.
func (m *Manager) PlaylistByName(name string) (string, bool) {
	for _, p := range m.playlists {
		if playlist.SameName(p.Name(), name) {
			return p.ID(), true
		}
	}
	return "", false
}

// ActivePlaylistID returns the id of the displayed playlist.
func (m *Manager) ActivePlaylistID() string {
	return m.activeID
}

// ActivePlaylist returns a copy of the displayed playlist.
func (m *Manager) ActivePlaylist() *playlist.Playlist {
	return m.active().Clone()
}

// ActiveTracks returns the tracks of the displayed playlist.
func (m *Manager) ActiveTracks() []playlist.Track {
	return m.active().Tracks()
}

// SetActivePlaylist switches the displayed playlist. The selection is
// cleared; playback is never affected. Returns false if id is unknown.
func (m *Manager) SetActivePlaylist(id string) bool {
	if m.find(id) == nil {
		return false
	}
	if id != m.activeID {
		m.activeID = id
		m.ClearSelection()
	}
	return true
}

// CreatePlaylist adds an empty playlist at the end and returns its id.
// The name is sanitized and made unique.
func (m *Manager) CreatePlaylist(name string) string {
	p := playlist.New(m.newID(), m.uniqueName(name, ""), m.now)
	m.playlists = append(m.playlists, p)
	m.log.Debug("playlist created", "id", p.ID(), "name", p.Name())
	return p.ID()
}

// CreatePlaylistWithTracks creates a playlist named name holding tracks and returns its id.
func (m *Manager) CreatePlaylistWithTracks(name string, tracks ...playlist.Track) string {
	id := m.CreatePlaylist(name)
	m.appendTracks(m.find(id), tracks...)
	return id
}

// CreatePlaylistWithTrack creates a playlist named after track holding only it.
func (m *Manager) CreatePlaylistWithTrack(track playlist.Track) string {
	return m.CreatePlaylistWithTracks(track.DisplayTitle(), track)
}

// CreatePlaylistForAlbum creates a playlist named "Artist - Album" from
// the first track's tags, holding tracks.
func (m *Manager) CreatePlaylistForAlbum(tracks []playlist.Track) string {
	var name string
	if len(tracks) > 0 {
		first := tracks[0]
		switch artist := first.DisplayAlbumArtist(); {
		case artist != "" && first.Album != "":
			name = artist + " - " + first.Album
		case first.Album != "":
			name = first.Album
		default:
			name = artist
		}
	}
	return m.CreatePlaylistWithTracks(name, tracks...)
}

// CreatePlaylistForArtist creates a playlist named after the first track's artist.
func (m *Manager) CreatePlaylistForArtist(tracks []playlist.Track) string {
	var name string
	if len(tracks) > 0 {
		name = tracks[0].DisplayAlbumArtist()
	}
	return m.CreatePlaylistWithTracks(name, tracks...)
}

// RenamePlaylist renames playlist id and returns the name actually stored.
func (m *Manager) RenamePlaylist(id, name string) (string, error) {
	if id == playlist.DefaultID {
		return "", ErrDefaultPlaylist
	}
	p := m.find(id)
	if p == nil {
		return "", ErrPlaylistNotFound
	}
	unique := m.uniqueName(name, id)
	p.SetName(unique)
	m.log.Debug("playlist renamed", "id", id, "name", unique)
	return unique, nil
}

// DeletePlaylist removes playlist id. Deleting the active playlist shows
// the default one; deleting the playing playlist stops the playback pointer.
func (m *Manager) DeletePlaylist(id string) error {
	if id == playlist.DefaultID {
		return ErrDefaultPlaylist
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return ErrPlaylistNotFound
	}
	m.playlists = slices.Delete(m.playlists, idx, idx+1)

	if id == m.activeID {
		m.activeID = playlist.DefaultID
		m.ClearSelection()
	}
	if id == m.playingID {
		m.ClearCurrent()
	}
	if id == m.shuffleID {
		m.discardShuffleOrder()
	}
	m.log.Debug("playlist deleted", "id", id)
	return nil
}

// MovePlaylist reorders the playlist tabs. Returns false if either index is out of bounds.
func (m *Manager) MovePlaylist(from, to int) bool {
	n := len(m.playlists)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	p := m.playlists[from]
	m.playlists = slices.Delete(m.playlists, from, from+1)
	m.playlists = slices.Insert(m.playlists, to, p)
	return true
}

// ClearPlaylist removes every track from playlist id.
func (m *Manager) ClearPlaylist(id string) bool {
	p := m.find(id)
	if p == nil {
		return false
	}
	p.Clear()
	if id == m.activeID {
		m.ClearSelection()
	}
	if id == m.playingID {
		m.ClearCurrent()
	}
	if id == m.shuffleID {
		m.discardShuffleOrder()
	}
	return true
}

// uniqueName sanitizes name and dedupes it against every playlist except exceptID.
func (m *Manager) uniqueName(name, exceptID string) string {
	return playlist.UniqueName(playlist.SanitizeName(name), func(candidate string) bool {
		for _, p := range m.playlists {
			if p.ID() != exceptID && playlist.SameName(p.Name(), candidate) {
				return true
			}
		}
		return false
	})
}

func (m *Manager) find(id string) *playlist.Playlist {
	if idx := m.indexOf(id); idx >= 0 {
		return m.playlists[idx]
	}
	return nil
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.playlists, func(p *playlist.Playlist) bool {
		return p.ID() == id
	})
}

// active returns the displayed playlist. activeID always names an existing playlist.
func (m *Manager) active() *playlist.Playlist {
	return m.find(m.activeID)
}
