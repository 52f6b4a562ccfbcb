package tags

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/bogem/id3v2/v2"

	"github.com/llehouerou/setlist/internal/playlist"
)

// readMP3ExtendedTags fills the fields dhowden/tag leaves out: the full
// recording date and the TLEN duration.
func readMP3ExtendedTags(path string, t *playlist.Track) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()

	if date := readID3Date(id3tag); date != "" {
		t.Date = date
	}
	t.Duration = readID3Length(id3tag)
}

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
// This is used as a fallback when dhowden/tag fails (e.g., on some UTF-16 encoded tags).
func readMP3WithID3v2Fallback(path string) (playlist.Track, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return playlist.Track{}, err
	}
	defer id3tag.Close()

	title := id3tag.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	track, totalTracks := parseNumberPair(getID3TextFrame(id3tag, "TRCK"))
	disc, totalDiscs := parseNumberPair(getID3TextFrame(id3tag, "TPOS"))

	t := playlist.Track{
		Path:        path,
		Title:       title,
		Artist:      id3tag.Artist(),
		AlbumArtist: getID3TextFrame(id3tag, "TPE2"), // Album artist frame
		Album:       id3tag.Album(),
		Composer:    getID3TextFrame(id3tag, "TCOM"),
		Genre:       id3tag.Genre(),
		Date:        readID3Date(id3tag),
		TrackNumber: track,
		TrackTotal:  totalTracks,
		DiscNumber:  disc,
		DiscTotal:   totalDiscs,
		Duration:    readID3Length(id3tag),
	}

	for _, frame := range id3tag.GetFrames(id3tag.CommonID("Attached picture")) {
		if pic, ok := frame.(id3v2.PictureFrame); ok && len(pic.Picture) > 0 {
			t.CoverArt = pic.Picture
			break
		}
	}
	if t.CoverArt == nil {
		t.CoverArt = findFolderArt(filepath.Dir(path))
	}
	return t, nil
}

// readID3Date tries ID3v2.4 TDRC first, then ID3v2.3 TYER with TDAT.
func readID3Date(id3tag *id3v2.Tag) string {
	if date := getID3TextFrame(id3tag, "TDRC"); date != "" {
		return date
	}
	year := getID3TextFrame(id3tag, "TYER")
	if year == "" {
		return ""
	}
	// TDAT is DDMM format, convert to YYYY-MM-DD
	if tdat := getID3TextFrame(id3tag, "TDAT"); len(tdat) == 4 {
		return year + "-" + tdat[2:4] + "-" + tdat[0:2]
	}
	return year
}

// readID3Length returns the TLEN frame (milliseconds) as a duration.
func readID3Length(id3tag *id3v2.Tag) time.Duration {
	ms, err := strconv.Atoi(getID3TextFrame(id3tag, "TLEN"))
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
