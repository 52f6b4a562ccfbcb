package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	dbutil "github.com/llehouerou/setlist/internal/db"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/playlists"
)

// SaveSnapshot replaces the stored state with s in a single transaction.
// Every track row is rewritten; each CLI command saves at most once.
func (s *Store) SaveSnapshot(ctx context.Context, snap playlists.Snapshot) error {
	return dbutil.WithTxContext(ctx, s.db, func(tx *sql.Tx) error {
		// Cascades to playlist_tracks.
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlists`); err != nil {
			return err
		}

		playlistStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO playlists (id, position, name, created_at, modified_at)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer playlistStmt.Close()

		trackStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO playlist_tracks (
				playlist_id, position, path, title, artist, album_artist, album,
				composer, genre, date, track_number, track_total, disc_number,
				disc_total, duration_ms, cover_art
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer trackStmt.Close()

		for i, p := range snap.Playlists {
			_, err := playlistStmt.ExecContext(ctx, p.ID, i, p.Name,
				p.CreatedAt.UnixMilli(), p.ModifiedAt.UnixMilli())
			if err != nil {
				return err
			}
			for j, t := range p.Tracks {
				_, err := trackStmt.ExecContext(ctx, p.ID, j, t.Path, t.Title,
					t.Artist, t.AlbumArtist, t.Album, t.Composer, t.Genre, t.Date,
					t.TrackNumber, t.TrackTotal, t.DiscNumber, t.DiscTotal,
					t.Duration.Milliseconds(), t.CoverArt)
				if err != nil {
					return err
				}
			}
		}

		pb := snap.Playback
		if pb == nil {
			pb = &playlists.PlaybackSnapshot{Index: -1}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO session_state (
				id, active_playlist_id, playing_playlist_id, playing_index,
				repeat_mode, shuffle, shuffle_playlist_id, shuffle_order
			) VALUES (1, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				active_playlist_id = excluded.active_playlist_id,
				playing_playlist_id = excluded.playing_playlist_id,
				playing_index = excluded.playing_index,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle,
				shuffle_playlist_id = excluded.shuffle_playlist_id,
				shuffle_order = excluded.shuffle_order
		`, snap.ActivePlaylistID, dbutil.NullString(pb.PlaylistID), pb.Index, int(pb.RepeatMode), pb.Shuffle,
			dbutil.NullString(pb.ShufflePlaylistID), dbutil.NullString(encodeOrder(pb.ShuffleOrder)))
		return err
	})
}

// LoadSnapshot reads the stored state. It returns nil on first run, when
// nothing has been saved yet.
func (s *Store) LoadSnapshot(ctx context.Context) (*playlists.Snapshot, error) {
	var snap playlists.Snapshot
	var playingID, shuffleID, shuffleOrder sql.NullString
	var playingIndex, repeatMode int
	var shuffle bool

	row := s.db.QueryRowContext(ctx, `
		SELECT active_playlist_id, playing_playlist_id, playing_index, repeat_mode,
		       shuffle, shuffle_playlist_id, shuffle_order
		FROM session_state WHERE id = 1
	`)
	err := row.Scan(&snap.ActivePlaylistID, &playingID, &playingIndex, &repeatMode,
		&shuffle, &shuffleID, &shuffleOrder)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	case err != nil:
		return nil, err
	}
	snap.Playback = &playlists.PlaybackSnapshot{
		PlaylistID: dbutil.NullStringValue(playingID),
		Index:      playingIndex,
		RepeatMode: playlists.RepeatMode(repeatMode),
		Shuffle:    shuffle,

		ShufflePlaylistID: dbutil.NullStringValue(shuffleID),
	}
	snap.Playback.ShuffleOrder, err = decodeOrder(dbutil.NullStringValue(shuffleOrder))
	if err != nil {
		return nil, err
	}

	snap.Playlists, err = loadPlaylists(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func loadPlaylists(ctx context.Context, db *sql.DB) ([]playlists.PlaylistSnapshot, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, created_at, modified_at
		FROM playlists
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []playlists.PlaylistSnapshot
	for rows.Next() {
		var p playlists.PlaylistSnapshot
		var createdAt, modifiedAt int64
		if err := rows.Scan(&p.ID, &p.Name, &createdAt, &modifiedAt); err != nil {
			return nil, err
		}
		p.CreatedAt = time.UnixMilli(createdAt)
		p.ModifiedAt = time.UnixMilli(modifiedAt)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		result[i].Tracks, err = loadTracks(ctx, db, result[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func loadTracks(ctx context.Context, db *sql.DB, playlistID string) ([]playlist.Track, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT path, title, artist, album_artist, album, composer, genre, date,
		       track_number, track_total, disc_number, disc_total, duration_ms, cover_art
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []playlist.Track
	for rows.Next() {
		var t playlist.Track
		var artist, albumArtist, album, composer, genre, date sql.NullString
		var trackNumber, trackTotal, discNumber, discTotal, durationMS sql.NullInt64

		err := rows.Scan(&t.Path, &t.Title, &artist, &albumArtist, &album, &composer,
			&genre, &date, &trackNumber, &trackTotal, &discNumber, &discTotal,
			&durationMS, &t.CoverArt)
		if err != nil {
			return nil, err
		}

		t.Artist = dbutil.NullStringValue(artist)
		t.AlbumArtist = dbutil.NullStringValue(albumArtist)
		t.Album = dbutil.NullStringValue(album)
		t.Composer = dbutil.NullStringValue(composer)
		t.Genre = dbutil.NullStringValue(genre)
		t.Date = dbutil.NullStringValue(date)
		t.TrackNumber = int(dbutil.NullInt64Value(trackNumber))
		t.TrackTotal = int(dbutil.NullInt64Value(trackTotal))
		t.DiscNumber = int(dbutil.NullInt64Value(discNumber))
		t.DiscTotal = int(dbutil.NullInt64Value(discTotal))
		t.Duration = time.Duration(dbutil.NullInt64Value(durationMS)) * time.Millisecond
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// encodeOrder stores a shuffle order as comma-separated indices.
func encodeOrder(order []int) string {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func decodeOrder(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	order := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("decode shuffle order: %w", err)
		}
		order[i] = v
	}
	return order, nil
}
