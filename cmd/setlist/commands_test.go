package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/setlist/internal/config"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/state"
)

// createTestApplication returns an application backed by an in-memory state.
func createTestApplication(t *testing.T) (*Application, *state.Mock) {
	t.Helper()
	store := state.NewMock()
	app := &Application{
		Config: &config.Config{
			Playback: config.PlaybackConfig{Repeat: "off"},
			Log:      config.LogConfig{Level: "warn", Format: "text"},
		},
		Store:          store,
		Logger:         slog.New(slog.DiscardHandler),
		ManagerOptions: []playlists.Option{playlists.WithRand(rand.New(rand.NewPCG(1, 2)))},
	}
	return app, store
}

// runCommand executes the root command with args and returns stdout and stderr.
func runCommand(t *testing.T, app *Application, args ...string) (string, string, error) {
	t.Helper()
	root := app.newRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func mustRun(t *testing.T, app *Application, args ...string) string {
	t.Helper()
	out, _, err := runCommand(t, app, args...)
	require.NoError(t, err, "setlist %s", strings.Join(args, " "))
	return out
}

// seedTracks stores a snapshot whose default playlist holds the titles.
func seedTracks(store *state.Mock, names ...string) {
	tracks := make([]playlist.Track, len(names))
	for i, n := range names {
		tracks[i] = playlist.Track{Path: "/music/" + n + ".mp3", Title: n}
	}
	store.SetSnapshot(&playlists.Snapshot{
		Playlists: []playlists.PlaylistSnapshot{
			{ID: playlist.DefaultID, Name: playlist.DefaultName, Tracks: tracks},
		},
		ActivePlaylistID: playlist.DefaultID,
	})
}

func savedManager(t *testing.T, store *state.Mock) *playlists.Manager {
	t.Helper()
	snap, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap, "nothing was saved")
	return playlists.FromSnapshot(*snap)
}

func savedTitles(t *testing.T, store *state.Mock, id string) []string {
	t.Helper()
	p := savedManager(t, store).Playlist(id)
	require.NotNil(t, p, "playlist %s not saved", id)
	var result []string
	for _, tr := range p.Tracks() {
		result = append(result, tr.Title)
	}
	return result
}

func TestCmdList_FirstRun(t *testing.T) {
	app, store := createTestApplication(t)

	out := mustRun(t, app, "list")

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, playlist.DefaultName)
	assert.Equal(t, 0, store.Saves(), "list must not save")
}

func TestCmdCreateRenameDelete(t *testing.T) {
	app, store := createTestApplication(t)

	out := mustRun(t, app, "create", "Rock")
	assert.Contains(t, out, `Created "Rock"`)
	out = mustRun(t, app, "create", "rock")
	assert.Contains(t, out, `Created "rock (2)"`)

	out = mustRun(t, app, "rename", "rock (2)", "Jazz")
	assert.Contains(t, out, `Renamed to "Jazz"`)

	out = mustRun(t, app, "delete", "Rock")
	assert.Contains(t, out, `Deleted "Rock"`)

	var names []string
	for _, p := range savedManager(t, store).Playlists() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{playlist.DefaultName, "Jazz"}, names)
}

func TestCmdDelete_DefaultPlaylist(t *testing.T) {
	app, store := createTestApplication(t)

	_, _, err := runCommand(t, app, "delete", playlist.DefaultID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, playlists.ErrDefaultPlaylist))
	assert.Contains(t, err.Error(), "Failed to delete playlist")
	assert.Equal(t, 0, store.Saves(), "failed command must not save")
}

func TestCmdUnknownPlaylist(t *testing.T) {
	app, _ := createTestApplication(t)

	_, _, err := runCommand(t, app, "show", "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, playlists.ErrPlaylistNotFound))
	assert.Contains(t, err.Error(), "Failed to show playlist")
}

func TestCmdActivate_KeepsPlayback(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a", "b")
	mustRun(t, app, "play")
	mustRun(t, app, "create", "Other")

	out := mustRun(t, app, "activate", "Other")

	assert.Contains(t, out, "Active playlist: Other")
	m := savedManager(t, store)
	otherID, _ := m.PlaylistByName("Other")
	assert.Equal(t, otherID, m.ActivePlaylistID())
	assert.Equal(t, playlist.DefaultID, m.PlayingPlaylistID())
	assert.Equal(t, 0, m.CurrentIndex())
}

func TestCmdShow(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "First Song", "Second Song")
	mustRun(t, app, "play", playlist.DefaultID, "2")

	out := mustRun(t, app, "show")

	assert.Contains(t, out, "2 tracks")
	assert.Contains(t, out, "First Song")
	lines := strings.Split(out, "\n")
	var playingLine string
	for _, l := range lines {
		if strings.Contains(l, playingMark) {
			playingLine = l
		}
	}
	assert.Contains(t, playingLine, "Second Song")
}

func TestCmdRemove(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a", "b", "c", "d")

	out := mustRun(t, app, "remove", "1", "3", "3")

	assert.Contains(t, out, "Removed 2 tracks")
	assert.Equal(t, []string{"b", "d"}, savedTitles(t, store, playlist.DefaultID))
}

func TestCmdRemove_OutOfRange(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a")

	_, _, err := runCommand(t, app, "remove", "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Equal(t, 0, store.Saves())
}

func TestCmdMove(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a", "b", "c")

	mustRun(t, app, "move", "1", "3")

	assert.Equal(t, []string{"b", "c", "a"}, savedTitles(t, store, playlist.DefaultID))
}

func TestCmdShift(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"shift", "up", "2", "4"}, []string{"b", "a", "d", "c", "e"}},
		{[]string{"shift", "down", "1"}, []string{"b", "a", "c", "d", "e"}},
		{[]string{"shift", "top", "3", "5"}, []string{"c", "e", "a", "b", "d"}},
		{[]string{"shift", "bottom", "1"}, []string{"b", "c", "d", "e", "a"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			app, store := createTestApplication(t)
			seedTracks(store, "a", "b", "c", "d", "e")

			mustRun(t, app, tt.args...)

			assert.Equal(t, tt.want, savedTitles(t, store, playlist.DefaultID))
		})
	}
}

func TestCmdShift_Blocked(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a", "b")

	out := mustRun(t, app, "shift", "up", "1")

	assert.Contains(t, out, "Nothing moved")
	assert.Equal(t, []string{"a", "b"}, savedTitles(t, store, playlist.DefaultID))
}

func TestCmdCopy(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a", "b", "c")

	out := mustRun(t, app, "copy", "--new", "Picks", "1", "3")
	assert.Contains(t, out, `Copied 2 tracks to "Picks"`)

	out = mustRun(t, app, "copy", "--move", "Picks", "2")
	assert.Contains(t, out, `Moved 1 tracks to "Picks"`)

	m := savedManager(t, store)
	picks, ok := m.PlaylistByName("Picks")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c", "b"}, savedTitles(t, store, picks))
	assert.Equal(t, []string{"a", "c"}, savedTitles(t, store, playlist.DefaultID))
}

func TestCmdCopy_SamePlaylist(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a")

	_, _, err := runCommand(t, app, "copy", playlist.DefaultName, "1")

	assert.True(t, errors.Is(err, playlists.ErrSamePlaylist))
}

func TestCmdAdd(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	for _, f := range []string{"album/01.mp3", "album/02.flac", "album/cover.jpg", "single.ogg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("not audio"), 0o600))
	}

	app, store := createTestApplication(t)
	out, stderr, err := runCommand(t, app, "add", playlist.DefaultID,
		sub, filepath.Join(dir, "single.ogg"), filepath.Join(dir, "missing.mp3"))

	require.NoError(t, err)
	assert.Contains(t, out, "Added 3 tracks")
	assert.Contains(t, stderr, "Failed to read file tags")
	assert.Contains(t, stderr, "missing.mp3")
	assert.Equal(t, []string{"01.mp3", "02.flac", "single.ogg"}, savedTitles(t, store, playlist.DefaultID))
}

func TestCmdAdd_Unique(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	app, store := createTestApplication(t)
	mustRun(t, app, "add", playlist.DefaultID, file)

	out := mustRun(t, app, "add", "--unique", playlist.DefaultID, file)
	assert.Contains(t, out, "Added 0 tracks")
	assert.Contains(t, out, "1 already present")

	app.Config.Playlists.UniqueTracks = true
	out = mustRun(t, app, "add", playlist.DefaultID, file)
	assert.Contains(t, out, "1 already present")

	out = mustRun(t, app, "add", "--unique=false", playlist.DefaultID, file)
	assert.Contains(t, out, "Added 1 tracks")
	assert.Len(t, savedTitles(t, store, playlist.DefaultID), 2)
}

func TestCmdPlayNextPrev(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "A", "B", "C")

	out := mustRun(t, app, "next")
	assert.Contains(t, out, "A")
	out = mustRun(t, app, "next")
	assert.Contains(t, out, "B")
	out = mustRun(t, app, "prev")
	assert.Contains(t, out, "A")
	out = mustRun(t, app, "prev")
	assert.Contains(t, out, "Start of playlist")

	mustRun(t, app, "play", playlist.DefaultID, "3")
	out = mustRun(t, app, "next")
	assert.Contains(t, out, "End of playlist")
	assert.Nil(t, savedManager(t, store).CurrentTrack(), "normal mode stops at the end")
}

func TestCmdNext_RepeatAllWraps(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "A", "B")
	mustRun(t, app, "repeat", "all")
	mustRun(t, app, "play", playlist.DefaultID, "2")

	out := mustRun(t, app, "next")

	assert.Contains(t, out, "A")
	assert.Equal(t, 0, savedManager(t, store).CurrentIndex())
}

func TestCmdNext_Plain(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "A", "B")
	mustRun(t, app, "repeat", "one")
	mustRun(t, app, "play")

	mustRun(t, app, "next", "--plain")

	assert.Equal(t, 1, savedManager(t, store).CurrentIndex())
}

func TestCmdPlay_EmptyPlaylist(t *testing.T) {
	app, _ := createTestApplication(t)

	_, _, err := runCommand(t, app, "play")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestCmdShuffle_VisitsEveryTrack(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "A", "B", "C", "D")
	mustRun(t, app, "shuffle", "on")

	seen := map[int]bool{}
	for range 4 {
		mustRun(t, app, "next")
		seen[savedManager(t, store).CurrentIndex()] = true
	}

	assert.Len(t, seen, 4)
}

func TestCmdRepeatAndShuffleModes(t *testing.T) {
	app, store := createTestApplication(t)

	out := mustRun(t, app, "repeat")
	assert.Contains(t, out, "Repeat: All")
	out = mustRun(t, app, "repeat", "one")
	assert.Contains(t, out, "Repeat: One")
	out = mustRun(t, app, "shuffle")
	assert.Contains(t, out, "Shuffle: on")
	out = mustRun(t, app, "shuffle", "off")
	assert.Contains(t, out, "Shuffle: off")

	m := savedManager(t, store)
	assert.Equal(t, playlists.RepeatOne, m.RepeatMode())
	assert.False(t, m.Shuffle())

	_, _, err := runCommand(t, app, "repeat", "sometimes")
	assert.Error(t, err)
	_, _, err = runCommand(t, app, "shuffle", "maybe")
	assert.Error(t, err)
}

func TestCmdStats(t *testing.T) {
	app, store := createTestApplication(t)
	seedTracks(store, "a", "b")

	out := mustRun(t, app, "stats")

	assert.Contains(t, out, "Playlists: 1")
	assert.Contains(t, out, "Tracks:    2")
	assert.Contains(t, out, "Length:    unknown")
}

func TestCmdExportImport(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state.json")

	app, store := createTestApplication(t)
	seedTracks(store, "a", "b")
	mustRun(t, app, "create", "Mix")
	out := mustRun(t, app, "export", file)
	assert.Contains(t, out, "Exported 2 playlists")

	other, otherStore := createTestApplication(t)
	out = mustRun(t, other, "import", file)
	assert.Contains(t, out, "Imported 2 playlists")

	assert.Equal(t, []string{"a", "b"}, savedTitles(t, otherStore, playlist.DefaultID))
	_, ok := savedManager(t, otherStore).PlaylistByName("Mix")
	assert.True(t, ok)
}

func TestCmdImport_BadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o600))
	app, store := createTestApplication(t)

	_, _, err := runCommand(t, app, "import", file)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to import playlists")
	assert.Equal(t, 0, store.Saves())
}

func TestCmdM3U(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "road trip.m3u")

	app, store := createTestApplication(t)
	seedTracks(store, "a", "b")
	out := mustRun(t, app, "m3u", "export", playlist.DefaultName, file)
	assert.Contains(t, out, "Wrote 2 tracks")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#EXTM3U\n"))

	out = mustRun(t, app, "m3u", "import", file)
	assert.Contains(t, out, `Created "road trip" with 2 tracks`)

	m := savedManager(t, store)
	id, ok := m.PlaylistByName("road trip")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, savedTitles(t, store, id))
	assert.Equal(t, "/music/a.mp3", m.Playlist(id).Tracks()[0].Path)
}

func TestCmdSaveError(t *testing.T) {
	app, store := createTestApplication(t)
	store.SetSaveError(errors.New("disk full"))

	_, _, err := runCommand(t, app, "create", "X")

	require.Error(t, err)
	assert.Equal(t, "Failed to save state: disk full", err.Error())
}

func TestApplication_OpensStoreFromFlag(t *testing.T) {
	db := filepath.Join(t.TempDir(), "nested", "setlist.db")
	app := &Application{
		Config: &config.Config{Playback: config.PlaybackConfig{Repeat: "off"}},
		Logger: slog.New(slog.DiscardHandler),
	}

	mustRun(t, app, "--db", db, "create", "Persisted")
	app.close()

	_, err := os.Stat(db)
	require.NoError(t, err)

	reopened := &Application{
		Config: &config.Config{Playback: config.PlaybackConfig{Repeat: "off"}},
		Logger: slog.New(slog.DiscardHandler),
	}
	out := mustRun(t, reopened, "--db", db, "list")
	reopened.close()
	assert.Contains(t, out, "Persisted")
}
