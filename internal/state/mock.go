package state

import (
	"context"

	"github.com/llehouerou/setlist/internal/playlists"
)

// Mock is an in-memory test double for Store.
type Mock struct {
	snapshot *playlists.Snapshot
	saves    int
	saveErr  error
	closed   bool
}

// NewMock creates a new mock state store for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveSnapshot(_ context.Context, s playlists.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshot = &s
	m.saves++
	return nil
}

func (m *Mock) LoadSnapshot(_ context.Context) (*playlists.Snapshot, error) {
	return m.snapshot, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSnapshot(s *playlists.Snapshot) { m.snapshot = s }

func (m *Mock) SetSaveError(err error) { m.saveErr = err }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
