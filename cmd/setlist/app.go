package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/llehouerou/setlist/internal/config"
	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/logging"
	"github.com/llehouerou/setlist/internal/playlists"
	"github.com/llehouerou/setlist/internal/state"
)

// Application holds the dependencies shared by every command.
// Fields left nil are filled from flags and config before a command runs.
type Application struct {
	Config *config.Config
	Store  state.Interface
	Logger *slog.Logger

	// Options appended after the config-derived manager options.
	ManagerOptions []playlists.Option

	configPath string
	dbPath     string
	ownsStore  bool
}

func (app *Application) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "setlist",
		Short:         "Manage playlists and navigate playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.setup()
		},
	}
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default: ~/.config/setlist/config.toml, ./config.toml)")
	root.PersistentFlags().StringVar(&app.dbPath, "db", "", "state database (default: $XDG_DATA_HOME/setlist/setlist.db)")

	root.AddCommand(
		app.createListCommand(),
		app.createShowCommand(),
		app.createCreateCommand(),
		app.createRenameCommand(),
		app.createDeleteCommand(),
		app.createActivateCommand(),
		app.createAddCommand(),
		app.createRemoveCommand(),
		app.createMoveCommand(),
		app.createShiftCommand(),
		app.createCopyCommand(),
		app.createPlayCommand(),
		app.createNextCommand(),
		app.createPrevCommand(),
		app.createRepeatCommand(),
		app.createShuffleCommand(),
		app.createStatsCommand(),
		app.createExportCommand(),
		app.createImportCommand(),
		app.createM3UCommand(),
	)
	return root
}

func (app *Application) setup() error {
	if app.Config == nil {
		cfg, err := config.Load(app.configPath)
		if err != nil {
			return fail(errmsg.OpConfigLoad, err)
		}
		app.Config = cfg
	}
	if app.Logger == nil {
		app.Logger = logging.New(app.Config.Log)
	}
	if app.Store == nil {
		path := app.dbPath
		if path == "" {
			path = app.Config.StatePath
		}
		store, err := state.Open(path)
		if err != nil {
			return fail(errmsg.OpInitialize, err)
		}
		app.Store = store
		app.ownsStore = true
	}
	return nil
}

func (app *Application) close() {
	if app.ownsStore && app.Store != nil {
		if err := app.Store.Close(); err != nil {
			app.Logger.Warn("close state store", "error", err)
		}
	}
}

// loadManager restores the manager from the saved state, or starts a
// fresh one on first run.
func (app *Application) loadManager(ctx context.Context) (*playlists.Manager, error) {
	snap, err := app.Store.LoadSnapshot(ctx)
	if err != nil {
		return nil, fail(errmsg.OpStateLoad, err)
	}
	if snap == nil {
		return playlists.New(app.managerOptions()...), nil
	}
	return playlists.FromSnapshot(*snap, app.managerOptions()...), nil
}

func (app *Application) managerOptions() []playlists.Option {
	opts := append(app.Config.ManagerOptions(), playlists.WithLogger(app.Logger))
	return append(opts, app.ManagerOptions...)
}

// view runs fn against the saved state without writing it back.
func (app *Application) view(ctx context.Context, op errmsg.Op, fn func(*playlists.Manager) error) error {
	m, err := app.loadManager(ctx)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return fail(op, err)
	}
	return nil
}

// update runs fn against the saved state and saves the result.
// Nothing is saved when fn fails.
func (app *Application) update(ctx context.Context, op errmsg.Op, fn func(*playlists.Manager) error) error {
	m, err := app.loadManager(ctx)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return fail(op, err)
	}
	if err := app.Store.SaveSnapshot(ctx, m.Snapshot()); err != nil {
		return fail(errmsg.OpStateSave, err)
	}
	return nil
}

// commandError carries the operation for the user-facing message.
type commandError struct {
	op  errmsg.Op
	err error
}

func (e *commandError) Error() string { return errmsg.Format(e.op, e.err) }

func (e *commandError) Unwrap() error { return e.err }

func fail(op errmsg.Op, err error) error {
	var ce *commandError
	if errors.As(err, &ce) {
		return err
	}
	return &commandError{op: op, err: err}
}

// resolvePlaylist accepts a playlist id or name.
func resolvePlaylist(m *playlists.Manager, ref string) (string, error) {
	if m.Playlist(ref) != nil {
		return ref, nil
	}
	if id, ok := m.PlaylistByName(ref); ok {
		return id, nil
	}
	return "", fmt.Errorf("%q: %w", ref, playlists.ErrPlaylistNotFound)
}
