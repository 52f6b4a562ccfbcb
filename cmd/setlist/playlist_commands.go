package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/playlists"
)

func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List playlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), errmsg.OpPlaylistShow, func(m *playlists.Manager) error {
				printPlaylists(cmd.OutOrStdout(), m, time.Now())
				return nil
			})
		},
	}
}

func (app *Application) createShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [playlist]",
		Short: "Show the tracks of a playlist (default: the active one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.view(cmd.Context(), errmsg.OpPlaylistShow, func(m *playlists.Manager) error {
				id := m.ActivePlaylistID()
				if len(args) == 1 {
					var err error
					if id, err = resolvePlaylist(m, args[0]); err != nil {
						return err
					}
				}
				printTracks(cmd.OutOrStdout(), m, m.Playlist(id))
				return nil
			})
		},
	}
}

func (app *Application) createCreateCommand() *cobra.Command {
	var activate bool
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create an empty playlist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return app.update(cmd.Context(), errmsg.OpPlaylistCreate, func(m *playlists.Manager) error {
				id := m.CreatePlaylist(name)
				if activate {
					m.SetActivePlaylist(id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s)\n", m.Playlist(id).Name(), id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&activate, "activate", "a", false, "make the new playlist active")
	return cmd
}

func (app *Application) createRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <playlist> <name>",
		Short: "Rename a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistRename, func(m *playlists.Manager) error {
				id, err := resolvePlaylist(m, args[0])
				if err != nil {
					return err
				}
				name, err := m.RenamePlaylist(id, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed to %q\n", name)
				return nil
			})
		},
	}
}

func (app *Application) createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <playlist>",
		Short: "Delete a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistDelete, func(m *playlists.Manager) error {
				id, err := resolvePlaylist(m, args[0])
				if err != nil {
					return err
				}
				name := m.Playlist(id).Name()
				if err := m.DeletePlaylist(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)
				return nil
			})
		},
	}
}

func (app *Application) createActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <playlist>",
		Short: "Switch the displayed playlist without touching playback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaylistActivate, func(m *playlists.Manager) error {
				id, err := resolvePlaylist(m, args[0])
				if err != nil {
					return err
				}
				m.SetActivePlaylist(id)
				fmt.Fprintf(cmd.OutOrStdout(), "Active playlist: %s\n", m.ActivePlaylist().Name())
				return nil
			})
		},
	}
}

func (app *Application) createStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show playlist and track counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), errmsg.OpPlaylistShow, func(m *playlists.Manager) error {
				s := m.Stats()
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Playlists: %d\n", s.PlaylistCount)
				fmt.Fprintf(w, "Tracks:    %d\n", s.TrackCount)
				fmt.Fprintf(w, "Length:    %s\n", formatTotal(s.Duration))
				printModes(w, m)
				return nil
			})
		},
	}
}

func formatTotal(d time.Duration) string {
	if d <= 0 {
		return "unknown"
	}
	return d.Round(time.Second).String()
}

// parsePosition converts a one-based position argument to an index.
func parsePosition(arg string, length int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", arg)
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("position %d out of range 1-%d", n, length)
	}
	return n - 1, nil
}
