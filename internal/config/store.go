package config

import (
	"sync"
	"time"
)

// Store holds live settings. The coordinator reads a snapshot every
// tick, so writes from the UI take effect without a restart.
type Store struct {
	mu       sync.Mutex
	settings Settings
}

// NewStore creates a store seeded with the given settings (clamped).
func NewStore(s Settings) *Store {
	s.Clamp()
	return &Store{settings: s}
}

// Snapshot returns a copy of the current settings.
func (st *Store) Snapshot() Settings {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.settings
}

// SetIdleThreshold updates the idle threshold, clamped to its range,
// and returns the value actually stored.
func (st *Store) SetIdleThreshold(d time.Duration) time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.settings.IdleThreshold.Duration = clamp(d, MinIdleThreshold, MaxIdleThreshold)
	return st.settings.IdleThreshold.Duration
}

// SetMoveInterval updates the move interval, clamped to its range,
// and returns the value actually stored.
func (st *Store) SetMoveInterval(d time.Duration) time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.settings.MoveInterval.Duration = clamp(d, MinMoveInterval, MaxMoveInterval)
	return st.settings.MoveInterval.Duration
}
