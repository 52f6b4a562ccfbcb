package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/tags"
)

func (app *Application) createAddCommand() *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "add <playlist> <file|dir>...",
		Short: "Append music files to a playlist",
		Long:  "Append music files to a playlist. Directories are scanned recursively for supported files.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("unique") {
				unique = app.Config.Playlists.UniqueTracks
			}
			tracks := app.loadTracks(cmd, args[1:])
			return app.update(cmd.Context(), errmsg.OpPlaylistAddTrack, func(m *playlists.Manager) error {
				id, err := resolvePlaylist(m, args[0])
				if err != nil {
					return err
				}
				added, skipped := addTracks(m, id, tracks, unique)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d tracks to %q", added, m.Playlist(id).Name())
				if skipped > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), " (%d already present)", skipped)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "skip tracks already in the playlist (default from config)")
	return cmd
}

func addTracks(m *playlists.Manager, id string, tracks []playlist.Track, unique bool) (added, skipped int) {
	if !unique {
		return m.AddTracks(id, tracks...), 0
	}
	for _, t := range tracks {
		if err := m.AddTrackUnique(id, t); err != nil {
			if errors.Is(err, playlists.ErrDuplicateTrack) {
				skipped++
			}
			continue
		}
		added++
	}
	return added, skipped
}

// loadTracks reads the tags of every music file named by paths.
// Unreadable files are reported and skipped.
func (app *Application) loadTracks(cmd *cobra.Command, paths []string) []playlist.Track {
	var tracks []playlist.Track
	for _, path := range expandMusicPaths(paths) {
		t, err := tags.Load(path)
		if err != nil {
			app.Logger.Debug("skip file", "path", path, "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), errmsg.FormatWith(errmsg.OpImportTags, path, err))
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks
}

// expandMusicPaths replaces directories with the music files they hold,
// in lexical order. Plain files are kept as given.
func expandMusicPaths(paths []string) []string {
	var result []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			result = append(result, p)
			continue
		}
		_ = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped
			}
			if !d.IsDir() && tags.IsMusicFile(path) {
				result = append(result, path)
			}
			return nil
		})
	}
	return result
}

func (app *Application) createRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position>...",
		Short: "Remove tracks from the active playlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistRemove, func(m *playlists.Manager) error {
				if err := selectPositions(m, args); err != nil {
					return err
				}
				removed := m.RemoveSelected()
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tracks from %q\n", removed, m.ActivePlaylist().Name())
				return nil
			})
		},
	}
}

func (app *Application) createMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a track within the active playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistMove, func(m *playlists.Manager) error {
				n := m.ActivePlaylist().Len()
				from, err := parsePosition(args[0], n)
				if err != nil {
					return err
				}
				to, err := parsePosition(args[1], n)
				if err != nil {
					return err
				}
				m.MoveTrack(from, to)
				printTracks(cmd.OutOrStdout(), m, m.ActivePlaylist())
				return nil
			})
		},
	}
}

func (app *Application) createShiftCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "shift <up|down|top|bottom> <position>...",
		Short:     "Move a block of tracks in the active playlist",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{"up", "down", "top", "bottom"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistMove, func(m *playlists.Manager) error {
				var move func() bool
				switch args[0] {
				case "up":
					move = m.MoveSelectedUp
				case "down":
					move = m.MoveSelectedDown
				case "top":
					move = m.MoveSelectedToTop
				case "bottom":
					move = m.MoveSelectedToBottom
				default:
					return fmt.Errorf("unknown direction %q", args[0])
				}
				if err := selectPositions(m, args[1:]); err != nil {
					return err
				}
				if !move() {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing moved")
					return nil
				}
				printTracks(cmd.OutOrStdout(), m, m.ActivePlaylist())
				return nil
			})
		},
	}
}

func (app *Application) createCopyCommand() *cobra.Command {
	var move, create bool
	cmd := &cobra.Command{
		Use:   "copy <target> <position>...",
		Short: "Copy tracks of the active playlist into another playlist",
		Long: "Copy tracks of the active playlist into another playlist. With --new the target " +
			"argument is the name of a playlist to create.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistAddTrack, func(m *playlists.Manager) error {
				if err := selectPositions(m, args[1:]); err != nil {
					return err
				}
				id, added, err := transferSelection(m, args[0], create, move)
				if err != nil {
					return err
				}
				verb := "Copied"
				if move {
					verb = "Moved"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d tracks to %q\n", verb, added, m.Playlist(id).Name())
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&move, "move", "m", false, "remove the tracks from the active playlist")
	cmd.Flags().BoolVar(&create, "new", false, "create the target playlist")
	return cmd
}

func transferSelection(m *playlists.Manager, target string, create, move bool) (string, int, error) {
	if create {
		if move {
			return m.MoveSelectedToNew(target)
		}
		return m.CopySelectedToNew(target)
	}
	id, err := resolvePlaylist(m, target)
	if err != nil {
		return "", 0, err
	}
	var added int
	if move {
		added, err = m.MoveSelectedTo(id)
	} else {
		added, err = m.CopySelectedTo(id)
	}
	return id, added, err
}

// selectPositions replaces the selection of the active playlist with the
// given one-based positions.
func selectPositions(m *playlists.Manager, args []string) error {
	m.ClearSelection()
	n := m.ActivePlaylist().Len()
	for _, arg := range args {
		i, err := parsePosition(arg, n)
		if err != nil {
			return err
		}
		if !m.IsSelected(i) {
			m.HandleItemSelection(i, true, false)
		}
	}
	return nil
}
