package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/playlists"
)

func (app *Application) createPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [playlist] [position]",
		Short: "Start playing a track",
		Long: "Start playing a track. Without a position the first track is played; " +
			"without a playlist the active one is used.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaybackStart, func(m *playlists.Manager) error {
				id := m.ActivePlaylistID()
				if len(args) > 0 {
					var err error
					if id, err = resolvePlaylist(m, args[0]); err != nil {
						return err
					}
				}
				p := m.Playlist(id)
				index := 0
				if len(args) == 2 {
					var err error
					if index, err = parsePosition(args[1], p.Len()); err != nil {
						return err
					}
				}
				if !m.SetPlaying(id, index) {
					return fmt.Errorf("playlist %q is empty", p.Name())
				}
				printNowPlaying(cmd.OutOrStdout(), m, m.CurrentTrack())
				return nil
			})
		},
	}
}

func (app *Application) createNextCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Advance to the next track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaybackNext, func(m *playlists.Manager) error {
				next := m.NextWithModes
				if plain {
					next = m.Next
				}
				wasPlaying := m.CurrentTrack() != nil
				t := next()
				if t == nil && wasPlaying {
					fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("End of playlist"))
					return nil
				}
				printNowPlaying(cmd.OutOrStdout(), m, t)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "follow playlist order, ignoring shuffle and repeat")
	return cmd
}

func (app *Application) createPrevCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "prev",
		Short: "Go back to the previous track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaybackPrev, func(m *playlists.Manager) error {
				prev := m.PreviousWithModes
				if plain {
					prev = m.Previous
				}
				t := prev()
				if t == nil && m.CurrentTrack() != nil {
					fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("Start of playlist"))
					return nil
				}
				printNowPlaying(cmd.OutOrStdout(), m, t)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "follow playlist order, ignoring shuffle and repeat")
	return cmd
}

func (app *Application) createRepeatCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "repeat [off|all|one]",
		Short:     "Set the repeat mode, or cycle it without an argument",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"off", "all", "one"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpPlaybackRepeat, func(m *playlists.Manager) error {
				if len(args) == 0 {
					m.CycleRepeatMode()
				} else {
					mode, err := playlists.ParseRepeatMode(args[0])
					if err != nil {
						return err
					}
					m.SetRepeatMode(mode)
				}
				printModes(cmd.OutOrStdout(), m)
				return nil
			})
		},
	}
}

func (app *Application) createShuffleCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "shuffle [on|off]",
		Short:     "Enable or disable shuffle, or toggle it without an argument",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.update(cmd.Context(), errmsg.OpShuffleToggle, func(m *playlists.Manager) error {
				if len(args) == 0 {
					m.ToggleShuffle()
				} else {
					switch args[0] {
					case "on", "true", "1":
						m.SetShuffle(true)
					case "off", "false", "0":
						m.SetShuffle(false)
					default:
						return fmt.Errorf("expected on or off, got %q", args[0])
					}
				}
				printModes(cmd.OutOrStdout(), m)
				return nil
			})
		},
	}
}
