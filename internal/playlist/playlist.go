package playlist

import "time"

// DefaultID is the id of the playlist that always exists.
const DefaultID = "default"

// Playlist holds a named, ordered collection of tracks.
type Playlist struct {
	id         string
	name       string
	tracks     []Track
	createdAt  time.Time
	modifiedAt time.Time
	now        func() time.Time
}

// New creates an empty playlist. A nil clock defaults to time.Now.
func New(id, name string, now func() time.Time) *Playlist {
	if now == nil {
		now = time.Now
	}
	ts := now()
	return &Playlist{
		id:         id,
		name:       name,
		tracks:     make([]Track, 0),
		createdAt:  ts,
		modifiedAt: ts,
		now:        now,
	}
}

// Restore rebuilds a playlist from persisted fields without touching its timestamps.
func Restore(id, name string, tracks []Track, createdAt, modifiedAt time.Time, now func() time.Time) *Playlist {
	if now == nil {
		now = time.Now
	}
	p := &Playlist{
		id:         id,
		name:       name,
		tracks:     make([]Track, len(tracks)),
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
		now:        now,
	}
	copy(p.tracks, tracks)
	return p
}

// ID returns the playlist id.
func (p *Playlist) ID() string { return p.id }

// Name returns the playlist name.
func (p *Playlist) Name() string { return p.name }

// IsDefault reports whether this is the default playlist.
func (p *Playlist) IsDefault() bool { return p.id == DefaultID }

// CreatedAt returns the creation time.
func (p *Playlist) CreatedAt() time.Time { return p.createdAt }

// ModifiedAt returns the time of the last structural change or rename.
func (p *Playlist) ModifiedAt() time.Time { return p.modifiedAt }

// SetName stores name as-is. Callers are responsible for sanitizing it.
func (p *Playlist) SetName(name string) {
	p.name = name
	p.touch()
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	if len(tracks) == 0 {
		return
	}
	p.tracks = append(p.tracks, tracks...)
	p.touch()
}

// Insert places tracks before index. index == Len() appends.
// Returns false if index is out of bounds.
func (p *Playlist) Insert(index int, tracks ...Track) bool {
	if index < 0 || index > len(p.tracks) {
		return false
	}
	if len(tracks) == 0 {
		return true
	}
	p.tracks = append(p.tracks[:index], append(append([]Track{}, tracks...), p.tracks[index:]...)...)
	p.touch()
	return true
}

// Remove removes the track at the given index and returns it.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) (Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return Track{}, false
	}
	t := p.tracks[index]
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	p.touch()
	return t, true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
	p.touch()
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	t := p.tracks[index]
	return &t
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// IndexOf returns the position of the first track equal to t, or -1.
func (p *Playlist) IndexOf(t Track) int {
	for i := range p.tracks {
		if p.tracks[i].Equal(t) {
			return i
		}
	}
	return -1
}

// Contains reports whether a track equal to t is in the playlist.
func (p *Playlist) Contains(t Track) bool {
	return p.IndexOf(t) >= 0
}

// Duration returns the sum of the known track durations.
func (p *Playlist) Duration() time.Duration {
	var total time.Duration
	for i := range p.tracks {
		total += p.tracks[i].Duration
	}
	return total
}

// Move moves the track at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.tracks) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.tracks) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	track := p.tracks[fromIndex]
	// Remove from old position
	p.tracks = append(p.tracks[:fromIndex], p.tracks[fromIndex+1:]...)
	// Insert at new position
	p.tracks = append(p.tracks[:toIndex], append([]Track{track}, p.tracks[toIndex:]...)...)
	p.touch()
	return true
}

// Clone returns an independent copy sharing no track storage with p.
func (p *Playlist) Clone() *Playlist {
	return Restore(p.id, p.name, p.tracks, p.createdAt, p.modifiedAt, p.now)
}

func (p *Playlist) touch() {
	p.modifiedAt = p.now()
}
