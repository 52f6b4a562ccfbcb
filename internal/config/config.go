// Package config loads the TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/setlist/internal/playlists"
)

type Config struct {
	StatePath string `koanf:"state_path"` // SQLite database, empty means the XDG data dir

	Playback  PlaybackConfig  `koanf:"playback"`
	Playlists PlaylistsConfig `koanf:"playlists"`
	Log       LogConfig       `koanf:"log"`
}

// PlaybackConfig holds the navigation settings used when no state is saved yet.
type PlaybackConfig struct {
	Repeat  string `koanf:"repeat"` // "off", "all" or "one"
	Shuffle bool   `koanf:"shuffle"`
}

// PlaylistsConfig holds playlist editing preferences.
type PlaylistsConfig struct {
	UniqueTracks bool `koanf:"unique_tracks"` // reject tracks already in the target playlist
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn" or "error"
	Format string `koanf:"format"` // "text", "logfmt" or "json"
}

// Load reads configuration. With a non-empty path only that file is read
// and it must exist; otherwise the default locations are tried in order
// of priority, last wins.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("load %s: %w", p, err)
				}
			}
		}
	}

	cfg := &Config{
		Playback: PlaybackConfig{Repeat: "off"},
		Log:      LogConfig{Level: "warn", Format: "text"},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in state_path
	if cfg.StatePath != "" {
		cfg.StatePath = expandPath(cfg.StatePath)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if _, err := cfg.RepeatMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RepeatMode parses the configured repeat mode.
func (c *Config) RepeatMode() (playlists.RepeatMode, error) {
	return playlists.ParseRepeatMode(c.Playback.Repeat)
}

// ManagerOptions returns the manager options derived from the playback settings.
// Saved state takes precedence over them.
func (c *Config) ManagerOptions() []playlists.Option {
	mode, _ := c.RepeatMode() // validated by Load
	return []playlists.Option{
		playlists.WithRepeatMode(mode),
		playlists.WithShuffle(c.Playback.Shuffle),
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/setlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "setlist", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
