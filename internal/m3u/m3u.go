// Package m3u reads and writes extended M3U playlists.
package m3u

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/setlist/internal/playlist"
)

const (
	header    = "#EXTM3U"
	extinfTag = "#EXTINF:"
)

// Entry is one playlist line with the metadata of its preceding EXTINF.
type Entry struct {
	Path     string
	Artist   string
	Title    string
	Duration time.Duration // 0 when unknown
}

// Track converts the entry into a playlist track. Tags read from the
// file itself should be preferred when available.
func (e Entry) Track() playlist.Track {
	t := playlist.FromPath(e.Path)
	if e.Title != "" {
		t.Title = e.Title
	}
	t.Artist = e.Artist
	t.Duration = e.Duration
	return t
}

// Write writes tracks as an extended M3U playlist.
func Write(w io.Writer, tracks []playlist.Track) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return err
	}
	for _, t := range tracks {
		secs := -1
		if t.Duration > 0 {
			secs = int(t.Duration.Round(time.Second) / time.Second)
		}
		label := t.DisplayTitle()
		if t.Artist != "" {
			label = t.Artist + " - " + label
		}
		if _, err := fmt.Fprintf(bw, "%s%d,%s\n%s\n", extinfTag, secs, label, t.Path); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads an M3U or M3U8 playlist. Relative paths are resolved
// against baseDir, usually the directory holding the playlist file.
// Comment lines other than EXTINF are ignored.
func Parse(r io.Reader, baseDir string) ([]Entry, error) {
	var entries []Entry
	var pending *Entry

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, extinfTag) {
			e := parseExtinf(strings.TrimPrefix(line, extinfTag))
			pending = &e
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		path := strings.Trim(line, "\"'")
		if path == "" {
			continue
		}
		path = strings.TrimPrefix(path, "file://")
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}

		var e Entry
		if pending != nil {
			e = *pending
			pending = nil
		}
		e.Path = filepath.Clean(path)
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse m3u: %w", err)
	}
	return entries, nil
}

// parseExtinf parses "<secs>,<artist> - <title>" or "<secs>,<title>".
func parseExtinf(s string) Entry {
	var e Entry
	secs, label, found := strings.Cut(s, ",")
	if !found {
		return e
	}
	// Attributes like tvg-id="x" may follow the duration.
	if i := strings.IndexByte(secs, ' '); i >= 0 {
		secs = secs[:i]
	}
	if n, err := strconv.Atoi(strings.TrimSpace(secs)); err == nil && n > 0 {
		e.Duration = time.Duration(n) * time.Second
	}
	label = strings.TrimSpace(label)
	if artist, title, ok := strings.Cut(label, " - "); ok {
		e.Artist = strings.TrimSpace(artist)
		e.Title = strings.TrimSpace(title)
	} else {
		e.Title = label
	}
	return e
}
