package playlist

import (
	"bytes"
	"path/filepath"
	"time"
)

// Track is a single audio file with its tag metadata.
// Empty strings and zero numbers mean the tag is absent.
type Track struct {
	Path        string        `json:"path"`
	Title       string        `json:"title"`
	Artist      string        `json:"artist"`
	AlbumArtist string        `json:"album_artist,omitempty"`
	Album       string        `json:"album"`
	Composer    string        `json:"composer,omitempty"`
	Genre       string        `json:"genre,omitempty"`
	Date        string        `json:"date,omitempty"`
	TrackNumber int           `json:"track_number,omitempty"`
	TrackTotal  int           `json:"track_total,omitempty"`
	DiscNumber  int           `json:"disc_number,omitempty"`
	DiscTotal   int           `json:"disc_total,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	CoverArt    []byte        `json:"cover_art,omitempty"`
}

// Equal reports whether both tracks describe the same file with the same metadata.
func (t Track) Equal(o Track) bool {
	return t.Path == o.Path &&
		t.Title == o.Title &&
		t.Artist == o.Artist &&
		t.AlbumArtist == o.AlbumArtist &&
		t.Album == o.Album &&
		t.Composer == o.Composer &&
		t.Genre == o.Genre &&
		t.Date == o.Date &&
		t.TrackNumber == o.TrackNumber &&
		t.TrackTotal == o.TrackTotal &&
		t.DiscNumber == o.DiscNumber &&
		t.DiscTotal == o.DiscTotal &&
		t.Duration == o.Duration &&
		bytes.Equal(t.CoverArt, o.CoverArt)
}

// DisplayTitle returns the title, or the file name when the title tag is empty.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}

// DisplayAlbumArtist returns the album artist, falling back to the track artist.
func (t Track) DisplayAlbumArtist() string {
	if t.AlbumArtist != "" {
		return t.AlbumArtist
	}
	return t.Artist
}

// FromPath creates a track that only knows its file path.
func FromPath(path string) Track {
	return Track{
		Path:  path,
		Title: filepath.Base(path),
	}
}
