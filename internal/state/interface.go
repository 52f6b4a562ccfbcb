package state

import (
	"context"

	"github.com/llehouerou/setlist/internal/playlists"
)

// Interface defines the state store contract for dependency injection and testing.
type Interface interface {
	SaveSnapshot(ctx context.Context, s playlists.Snapshot) error
	LoadSnapshot(ctx context.Context) (*playlists.Snapshot, error)
	Close() error
}

// Verify Store implements Interface at compile time.
var _ Interface = (*Store)(nil)
