package playlists

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock sets the time source used for playlist timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithRand sets the random source used for shuffle orders.
// Pass a seeded source for reproducible orders.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithIDGenerator sets the playlist id generator. Ids must never repeat.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// WithRepeatMode sets the initial repeat mode.
func WithRepeatMode(mode RepeatMode) Option {
	return func(m *Manager) {
		m.repeat = mode
	}
}

// WithShuffle sets the initial shuffle setting.
func WithShuffle(enabled bool) Option {
	return func(m *Manager) {
		m.shuffle = enabled
	}
}

// timeSeededRand returns a PCG source seeded from the wall clock.
func timeSeededRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano()) //nolint:gosec // shuffle variety, not security
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
