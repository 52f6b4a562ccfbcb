package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/render"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	playingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	playingMark = "▶"
	activeMark  = "*"

	nameWidth   = 30
	titleWidth  = 40
	artistWidth = 24
)

// printPlaylists writes the playlist tabs with their counts and markers.
func printPlaylists(w io.Writer, m *playlists.Manager, now time.Time) {
	fmt.Fprintln(w, headerStyle.Render(render.Columns(
		[]int{2, nameWidth, 7, 9},
		"", "NAME", "TRACKS", "LENGTH", "MODIFIED",
	)))
	for _, p := range m.Playlists() {
		mark := " "
		style := lipgloss.NewStyle()
		switch p.ID() {
		case m.PlayingPlaylistID():
			mark, style = playingMark, playingStyle
		case m.ActivePlaylistID():
			mark, style = activeMark, activeStyle
		}
		line := render.Columns(
			[]int{2, nameWidth, 7, 9},
			mark, p.Name(), strconv.Itoa(p.Len()), render.Duration(p.Duration()),
			humanize.RelTime(p.ModifiedAt(), now, "ago", "from now"),
		)
		fmt.Fprintln(w, style.Render(line))
	}
}

// printTracks writes the tracks of p with one-based positions.
func printTracks(w io.Writer, m *playlists.Manager, p *playlist.Playlist) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render(render.Sanitize(p.Name())),
		dimStyle.Render(fmt.Sprintf("(%d tracks, %s)", p.Len(), render.Duration(p.Duration()))))
	if p.IsEmpty() {
		fmt.Fprintln(w, dimStyle.Render("  empty"))
		return
	}
	playing := -1
	if m.PlayingPlaylistID() == p.ID() {
		playing = m.CurrentIndex()
	}
	for i, t := range p.Tracks() {
		mark := " "
		style := lipgloss.NewStyle()
		if i == playing {
			mark, style = playingMark, playingStyle
		}
		line := render.Columns(
			[]int{2, 4, titleWidth, artistWidth},
			mark, strconv.Itoa(i+1), t.DisplayTitle(), t.Artist, render.Duration(t.Duration),
		)
		fmt.Fprintln(w, style.Render(line))
	}
}

// printNowPlaying reports the track the pointer landed on.
func printNowPlaying(w io.Writer, m *playlists.Manager, t *playlist.Track) {
	if t == nil {
		fmt.Fprintln(w, dimStyle.Render("Nothing playing"))
		return
	}
	name := ""
	if p := m.Playlist(m.PlayingPlaylistID()); p != nil {
		name = p.Name()
	}
	label := t.DisplayTitle()
	if t.Artist != "" {
		label = t.Artist + " - " + label
	}
	fmt.Fprintf(w, "%s %s %s\n",
		playingStyle.Render(playingMark),
		render.Sanitize(label),
		dimStyle.Render(fmt.Sprintf("[%s #%d]", render.Sanitize(name), m.CurrentIndex()+1)))
}

// printModes reports the repeat and shuffle settings.
func printModes(w io.Writer, m *playlists.Manager) {
	shuffle := "off"
	if m.Shuffle() {
		shuffle = "on"
	}
	fmt.Fprintf(w, "Repeat: %s  Shuffle: %s\n", m.RepeatMode(), shuffle)
}
