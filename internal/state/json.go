package state

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/llehouerou/setlist/internal/playlists"
)

const jsonFormatVersion = 1

type document struct {
	Version int `json:"version"`
	playlists.Snapshot
}

// WriteJSON encodes s as an indented JSON document.
func WriteJSON(w io.Writer, s playlists.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Version: jsonFormatVersion, Snapshot: s})
}

// ReadJSON decodes a document written by WriteJSON. The snapshot is not
// validated; playlists.FromSnapshot repairs it.
func ReadJSON(r io.Reader) (playlists.Snapshot, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return playlists.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version > jsonFormatVersion {
		return playlists.Snapshot{}, fmt.Errorf("snapshot format %d is newer than supported %d",
			doc.Version, jsonFormatVersion)
	}
	return doc.Snapshot, nil
}
