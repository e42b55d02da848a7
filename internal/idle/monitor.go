// Package idle reports how long the system has gone without keyboard
// or pointer input, with sleep/wake awareness.
package idle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrSignalUnavailable means the platform idle counter could not
	// be reached. Callers should keep their last known-good reading.
	ErrSignalUnavailable = errors.New("idle signal unavailable")

	// ErrInvalidReading means the platform returned a negative or
	// implausibly large idle value.
	ErrInvalidReading = errors.New("invalid idle reading")
)

// State describes the monitor's power-transition state.
type State int

const (
	StateAwake State = iota
	StateSleeping
	StateWaking
)

func (s State) String() string {
	switch s {
	case StateAwake:
		return "Awake"
	case StateSleeping:
		return "Sleeping"
	case StateWaking:
		return "Waking"
	default:
		return "Unknown"
	}
}

// Reading is one sample of the system idle counter.
type Reading struct {
	Idle time.Duration
	At   time.Time
}

const (
	// maxPlausibleIdle rejects counter values over a year as garbage.
	maxPlausibleIdle = 365 * 24 * time.Hour

	// wakeSettleDelay holds the Waking state briefly after wake so a
	// stale counter value cannot produce a spurious idle reading.
	wakeSettleDelay = time.Second

	// sleepGapThreshold is the tick gap that implies the host slept.
	sleepGapThreshold = 5 * time.Second
)

// Monitor wraps the platform idle counter. The read function is
// injectable so the monitor is testable without the OS.
type Monitor struct {
	mu     sync.Mutex
	readFn func() (time.Duration, error)
	now    func() time.Time
	logger *zap.Logger

	state  State
	last   Reading
	wokeAt time.Time
}

// NewMonitor creates a monitor backed by the platform idle counter.
func NewMonitor(logger *zap.Logger) *Monitor {
	return &Monitor{
		readFn: systemIdleTime,
		now:    time.Now,
		logger: logger,
		state:  StateAwake,
	}
}

// Read queries the idle counter. On error the returned Reading is the
// last known-good value, so callers never observe a gap.
func (m *Monitor) Read() (Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	switch m.state {
	case StateSleeping:
		// Frozen until wake.
		return m.last, nil
	case StateWaking:
		if now.Sub(m.wokeAt) < wakeSettleDelay {
			m.last = Reading{Idle: 0, At: now}
			return m.last, nil
		}
		m.state = StateAwake
	}

	d, err := m.readFn()
	if err != nil {
		return m.last, fmt.Errorf("%w: %v", ErrSignalUnavailable, err)
	}
	if d < 0 || d > maxPlausibleIdle {
		return m.last, fmt.Errorf("%w: %v", ErrInvalidReading, d)
	}

	m.last = Reading{Idle: d, At: now}
	return m.last, nil
}

// State returns the current power-transition state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// HandleSystemWillSleep freezes the last reading; the idle clock does
// not notionally advance while the host is asleep.
func (m *Monitor) HandleSystemWillSleep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateSleeping
	m.logger.Info("idle monitor: system will sleep, freezing reading",
		zap.Duration("idle", m.last.Idle))
}

// HandleSystemDidWake resets idle time to zero, since waking requires
// user interaction, and enters the transitional Waking state.
func (m *Monitor) HandleSystemDidWake() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.state = StateWaking
	m.wokeAt = now
	m.last = Reading{Idle: 0, At: now}
	m.logger.Info("idle monitor: system woke, idle reset to zero")
}

// Stream emits one reading per interval until the context is
// cancelled. The channel is closed on cancellation. A gap between
// ticks larger than sleepGapThreshold is treated as a sleep/wake
// cycle. Sends never block; slow consumers see the latest value.
func (m *Monitor) Stream(ctx context.Context, interval time.Duration) <-chan Reading {
	ch := make(chan Reading, 1)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		lastTick := m.now()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				if gap := t.Sub(lastTick); gap > sleepGapThreshold {
					m.logger.Info("idle monitor: detected wake from tick gap",
						zap.Duration("gap", gap))
					m.HandleSystemDidWake()
				}
				lastTick = t

				r, err := m.Read()
				if err != nil {
					m.logger.Warn("idle monitor: read failed, reusing last reading",
						zap.Error(err))
				}

				select {
				case ch <- r:
				default:
					// Drop: the consumer only wants the latest value.
					select {
					case <-ch:
					default:
					}
					select {
					case ch <- r:
					default:
					}
				}
			}
		}
	}()

	return ch
}
