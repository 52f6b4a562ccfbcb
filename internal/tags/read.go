package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/llehouerou/setlist/internal/playlist"
)

// Read reads tag metadata from a music file into a track.
// Cover art comes from the embedded picture, or from an image in the
// file's folder when none is embedded. Duration is only known for MP3
// files carrying a TLEN frame.
func Read(path string) (playlist.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return playlist.Track{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if strings.ToLower(filepath.Ext(path)) == ExtMP3 {
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		}
		return playlist.Track{}, fmt.Errorf("read tags: %w", err)
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}
	track, totalTracks := m.Track()
	disc, totalDiscs := m.Disc()

	t := playlist.Track{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Composer:    m.Composer(),
		Genre:       m.Genre(),
		Date:        yearToDate(m.Year()),
		TrackNumber: track,
		TrackTotal:  totalTracks,
		DiscNumber:  disc,
		DiscTotal:   totalDiscs,
	}
	if pic := m.Picture(); pic != nil {
		t.CoverArt = pic.Data
	}

	if strings.ToLower(filepath.Ext(path)) == ExtMP3 {
		readMP3ExtendedTags(path, &t)
	}
	if t.CoverArt == nil {
		t.CoverArt = findFolderArt(filepath.Dir(path))
	}
	return t, nil
}

// Load returns the track for path. A file whose tags cannot be parsed
// still yields a track holding its path and file name; only a file that
// cannot be opened is an error.
func Load(path string) (playlist.Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return playlist.Track{}, err
	}
	if info.IsDir() {
		return playlist.Track{}, fmt.Errorf("%s is a directory", path)
	}
	t, err := Read(path)
	if err != nil {
		return playlist.FromPath(path), nil //nolint:nilerr // untagged files are still playable
	}
	return t, nil
}
