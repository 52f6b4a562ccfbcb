//nolint:goconst // test file with repeated string literals
package playlist

import (
	"testing"
	"time"
)

// fakeClock returns a clock that advances one second per call.
func fakeClock() func() time.Time {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func newTestPlaylist(paths ...string) *Playlist {
	p := New("test", "Test", fakeClock())
	for _, path := range paths {
		p.Add(Track{Path: path})
	}
	return p
}

func paths(p *Playlist) []string {
	tracks := p.Tracks()
	result := make([]string, len(tracks))
	for i, t := range tracks {
		result[i] = t.Path
	}
	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	p := New("id1", "Mix", nil)

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
	if p.ID() != "id1" || p.Name() != "Mix" {
		t.Errorf("ID(), Name() = %q, %q, want id1, Mix", p.ID(), p.Name())
	}
	if !p.CreatedAt().Equal(p.ModifiedAt()) {
		t.Error("new playlist should have CreatedAt == ModifiedAt")
	}
}

func TestPlaylist_Add(t *testing.T) {
	p := newTestPlaylist()
	before := p.ModifiedAt()

	p.Add(Track{Path: "/a.mp3"}, Track{Path: "/b.mp3"})

	if got := paths(p); !equalStrings(got, []string{"/a.mp3", "/b.mp3"}) {
		t.Errorf("Tracks() = %v, want [/a.mp3 /b.mp3]", got)
	}
	if !p.ModifiedAt().After(before) {
		t.Error("Add should update ModifiedAt")
	}
}

func TestPlaylist_Add_Empty(t *testing.T) {
	p := newTestPlaylist()
	before := p.ModifiedAt()

	p.Add()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if !p.ModifiedAt().Equal(before) {
		t.Error("Add with no tracks should not update ModifiedAt")
	}
}

func TestPlaylist_Remove(t *testing.T) {
	p := newTestPlaylist("/a.mp3", "/b.mp3", "/c.mp3")

	removed, ok := p.Remove(1)

	if !ok {
		t.Fatal("Remove should return true")
	}
	if removed.Path != "/b.mp3" {
		t.Errorf("removed = %q, want /b.mp3", removed.Path)
	}
	if got := paths(p); !equalStrings(got, []string{"/a.mp3", "/c.mp3"}) {
		t.Errorf("Tracks() = %v, want [/a.mp3 /c.mp3]", got)
	}
}

func TestPlaylist_Remove_OutOfBounds(t *testing.T) {
	p := newTestPlaylist("/a.mp3")

	for _, idx := range []int{-1, 1, 10} {
		if _, ok := p.Remove(idx); ok {
			t.Errorf("Remove(%d) should return false", idx)
		}
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPlaylist_Insert(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		wantOK bool
		want   []string
	}{
		{"at start", 0, true, []string{"/x.mp3", "/a.mp3", "/b.mp3"}},
		{"in middle", 1, true, []string{"/a.mp3", "/x.mp3", "/b.mp3"}},
		{"at end", 2, true, []string{"/a.mp3", "/b.mp3", "/x.mp3"}},
		{"negative", -1, false, []string{"/a.mp3", "/b.mp3"}},
		{"past end", 3, false, []string{"/a.mp3", "/b.mp3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlaylist("/a.mp3", "/b.mp3")

			ok := p.Insert(tt.index, Track{Path: "/x.mp3"})

			if ok != tt.wantOK {
				t.Errorf("Insert(%d) = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if got := paths(p); !equalStrings(got, tt.want) {
				t.Errorf("Tracks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaylist_Clear(t *testing.T) {
	p := newTestPlaylist("/a.mp3", "/b.mp3")

	p.Clear()

	if !p.IsEmpty() {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPlaylist_Track(t *testing.T) {
	p := newTestPlaylist("/a.mp3", "/b.mp3")

	if tr := p.Track(1); tr == nil || tr.Path != "/b.mp3" {
		t.Errorf("Track(1) = %v, want /b.mp3", tr)
	}
	if tr := p.Track(2); tr != nil {
		t.Errorf("Track(2) = %v, want nil", tr)
	}
	if tr := p.Track(-1); tr != nil {
		t.Errorf("Track(-1) = %v, want nil", tr)
	}
}

func TestPlaylist_Track_ReturnsCopy(t *testing.T) {
	p := newTestPlaylist("/a.mp3")

	p.Track(0).Path = "/changed.mp3"

	if p.Track(0).Path != "/a.mp3" {
		t.Error("mutating the returned track should not change the playlist")
	}
}

func TestPlaylist_Move(t *testing.T) {
	tests := []struct {
		name   string
		from   int
		to     int
		wantOK bool
		want   []string
	}{
		{"forward", 0, 2, true, []string{"/b.mp3", "/c.mp3", "/a.mp3"}},
		{"backward", 2, 0, true, []string{"/c.mp3", "/a.mp3", "/b.mp3"}},
		{"same index", 1, 1, true, []string{"/a.mp3", "/b.mp3", "/c.mp3"}},
		{"from out of bounds", 3, 0, false, []string{"/a.mp3", "/b.mp3", "/c.mp3"}},
		{"to out of bounds", 0, -1, false, []string{"/a.mp3", "/b.mp3", "/c.mp3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlaylist("/a.mp3", "/b.mp3", "/c.mp3")

			ok := p.Move(tt.from, tt.to)

			if ok != tt.wantOK {
				t.Errorf("Move(%d, %d) = %v, want %v", tt.from, tt.to, ok, tt.wantOK)
			}
			if got := paths(p); !equalStrings(got, tt.want) {
				t.Errorf("Tracks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaylist_Contains(t *testing.T) {
	withArt := Track{Path: "/a.mp3", Title: "A", CoverArt: []byte{1, 2}}
	p := newTestPlaylist()
	p.Add(withArt)

	if !p.Contains(Track{Path: "/a.mp3", Title: "A", CoverArt: []byte{1, 2}}) {
		t.Error("Contains should match an equal track value")
	}
	if p.Contains(Track{Path: "/a.mp3", Title: "Other"}) {
		t.Error("Contains should not match a track with different metadata")
	}
	if p.IndexOf(Track{Path: "/missing.mp3"}) != -1 {
		t.Error("IndexOf should return -1 for a missing track")
	}
}

func TestPlaylist_Clone(t *testing.T) {
	p := newTestPlaylist("/a.mp3")

	c := p.Clone()
	c.Add(Track{Path: "/b.mp3"})

	if p.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", p.Len())
	}
	if c.ID() != p.ID() || !c.CreatedAt().Equal(p.CreatedAt()) {
		t.Error("clone should keep id and timestamps")
	}
}

func TestPlaylist_Duration(t *testing.T) {
	p := newTestPlaylist()
	p.Add(Track{Path: "/a.mp3", Duration: time.Minute}, Track{Path: "/b.mp3", Duration: 30 * time.Second})

	if got := p.Duration(); got != 90*time.Second {
		t.Errorf("Duration() = %v, want 1m30s", got)
	}
}

func TestTrack_DisplayTitle(t *testing.T) {
	if got := (Track{Path: "/music/song.flac"}).DisplayTitle(); got != "song.flac" {
		t.Errorf("DisplayTitle() = %q, want song.flac", got)
	}
	if got := (Track{Path: "/music/song.flac", Title: "Song"}).DisplayTitle(); got != "Song" {
		t.Errorf("DisplayTitle() = %q, want Song", got)
	}
}
