package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/m3u"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/state"
	"github.com/llehouerou/setlist/internal/tags"
)

func (app *Application) createExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every playlist and the playback state to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.view(cmd.Context(), errmsg.OpExportFile, func(m *playlists.Manager) error {
				if err := writeFile(args[0], func(f *os.File) error {
					return state.WriteJSON(f, m.Snapshot())
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d playlists to %s\n", len(m.Playlists()), args[0])
				return nil
			})
		},
	}
}

func (app *Application) createImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved state with a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fail(errmsg.OpImportFile, err)
			}
			defer f.Close()
			snap, err := state.ReadJSON(f)
			if err != nil {
				return fail(errmsg.OpImportFile, err)
			}

			m := playlists.FromSnapshot(snap, app.managerOptions()...)
			if err := app.Store.SaveSnapshot(cmd.Context(), m.Snapshot()); err != nil {
				return fail(errmsg.OpStateSave, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d playlists from %s\n", len(m.Playlists()), args[0])
			return nil
		},
	}
}

func (app *Application) createM3UCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "m3u",
		Short: "Exchange playlists with M3U files",
	}
	cmd.AddCommand(app.createM3UExportCommand(), app.createM3UImportCommand())
	return cmd
}

func (app *Application) createM3UExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <playlist> <file>",
		Short: "Write a playlist as an extended M3U file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.view(cmd.Context(), errmsg.OpM3UExport, func(m *playlists.Manager) error {
				id, err := resolvePlaylist(m, args[0])
				if err != nil {
					return err
				}
				p := m.Playlist(id)
				if err := writeFile(args[1], func(f *os.File) error {
					return m3u.Write(f, p.Tracks())
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tracks of %q to %s\n", p.Len(), p.Name(), args[1])
				return nil
			})
		},
	}
}

func (app *Application) createM3UImportCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create a playlist from an M3U file",
		Long: "Create a playlist from an M3U file. Entries whose file exists get their tags read; " +
			"the others keep the EXTINF metadata.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fail(errmsg.OpM3UImport, err)
			}
			defer f.Close()
			entries, err := m3u.Parse(f, filepath.Dir(path))
			if err != nil {
				return fail(errmsg.OpM3UImport, err)
			}

			tracks := make([]playlist.Track, 0, len(entries))
			for _, e := range entries {
				tracks = append(tracks, entryTrack(e))
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			return app.update(cmd.Context(), errmsg.OpM3UImport, func(m *playlists.Manager) error {
				id := m.CreatePlaylistWithTracks(name, tracks...)
				fmt.Fprintf(cmd.OutOrStdout(), "Created %q with %d tracks\n", m.Playlist(id).Name(), len(tracks))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "playlist name (default: the file name)")
	return cmd
}

// entryTrack prefers the file's own tags over the EXTINF metadata.
func entryTrack(e m3u.Entry) playlist.Track {
	if t, err := tags.Read(e.Path); err == nil {
		return t
	}
	return e.Track()
}

// writeFile creates path and lets write fill it. A failed write or close
// is reported as an error.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
