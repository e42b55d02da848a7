// Package jiggle drives the idle/monitoring/jiggling state machine.
// It combines the system idle counter with locally tracked still-time
// and invokes the cursor actuator at the configured cadence.
package jiggle

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/config"
	"github.com/jigglemouse/jiggle/internal/idle"
)

const (
	// tickInterval is the fixed cadence of the coordinator loop.
	tickInterval = time.Second

	// rearmThreshold is the fixed fast re-arm bound: once jiggling,
	// any system idle reading under this means genuine user input
	// arrived. It is deliberately distinct from the configurable idle
	// threshold and does not scale with it.
	rearmThreshold = 2 * time.Second
)

// Actuator is the cursor mover the coordinator fires.
type Actuator interface {
	Jiggle()
	InFlight() bool
}

// Classifier is the local still-time tracker sampled every tick.
type Classifier interface {
	Sample(tick time.Duration)
	StillTime() time.Duration
	UserMoving() bool
	SetStillTime(d time.Duration)
	Reset()
}

// IdleSource streams system idle readings.
type IdleSource interface {
	Stream(ctx context.Context, interval time.Duration) <-chan idle.Reading
}

// Notifier receives fire-and-forget state-transition notices.
type Notifier interface {
	Notify(title, message string)
}

// Permission gates activation on the OS input-synthesis grant.
type Permission interface {
	Granted() bool
	Request()
}

// Snapshot is the read-only view published for the UI.
type Snapshot struct {
	State      State
	Active     bool
	IdleTime   time.Duration
	StillTime  time.Duration
	LastJiggle time.Time
}

// Coordinator owns the three-state machine. All transitions happen on
// its tick goroutine; Start/Stop/Toggle are the only external inputs.
type Coordinator struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	state   State

	idleSource IdleSource
	classifier Classifier
	actuator   Actuator
	notifier   Notifier
	permission Permission
	settings   *config.Store
	logger     *zap.Logger
	now        func() time.Time

	lastReading idle.Reading
	lastJiggle  time.Time
}

// New wires a coordinator from its collaborators. notifier and
// permission may be nil.
func New(src IdleSource, cls Classifier, act Actuator, settings *config.Store, logger *zap.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		idleSource: src,
		classifier: cls,
		actuator:   act,
		settings:   settings,
		logger:     logger,
		now:        time.Now,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures optional collaborators.
type Option func(*Coordinator)

// WithNotifier attaches a notification collaborator.
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) { c.notifier = n }
}

// WithPermission attaches a permission collaborator checked on Start.
func WithPermission(p Permission) Option {
	return func(c *Coordinator) { c.permission = p }
}

// IsRunning reports whether the coordinator is active.
func (c *Coordinator) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start enters Monitoring. Without the OS permission it is a no-op
// that triggers the permission prompt instead. Starting twice is a
// no-op. Start never returns an error to its caller.
func (c *Coordinator) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}

	if c.permission != nil && !c.permission.Granted() {
		c.mu.Unlock()
		c.logger.Warn("coordinator: start refused, permission not granted")
		c.permission.Request()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.running = true
	c.state = StateMonitoring
	c.lastReading = idle.Reading{}
	c.lastJiggle = time.Time{}
	c.classifier.Reset()
	c.mu.Unlock()

	readings := c.idleSource.Stream(ctx, tickInterval)
	go c.run(ctx, readings)

	c.logger.Info("coordinator: started, monitoring for inactivity")
	c.notify("Jiggle", "Monitoring for inactivity")
}

// Stop forces Idle. The tick loop and idle stream halt synchronously;
// an in-flight cursor animation is left to run to completion so the
// pointer is not abandoned mid-transit.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.cancel()
	c.cancel = nil
	c.running = false
	c.state = StateIdle
	c.mu.Unlock()

	c.logger.Info("coordinator: stopped")
	c.notify("Jiggle", "Stopped")
}

// Toggle starts when idle and stops when active.
func (c *Coordinator) Toggle() {
	if c.IsRunning() {
		c.Stop()
	} else {
		c.Start()
	}
}

// Snapshot returns the published read-only state for display.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:      c.state,
		Active:     c.running,
		IdleTime:   c.lastReading.Idle,
		StillTime:  c.classifier.StillTime(),
		LastJiggle: c.lastJiggle,
	}
}

// run is the single tick loop. Idle readings are merged by field
// assignment; transitions only ever happen inside tick, so ticks are
// strictly sequential.
func (c *Coordinator) run(ctx context.Context, readings <-chan idle.Reading) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-readings:
			if !ok {
				readings = nil
				continue
			}
			c.mu.Lock()
			c.lastReading = r
			c.mu.Unlock()
		case <-ticker.C:
			c.tick()
		}
	}
}

// tick evaluates one step of the state machine.
func (c *Coordinator) tick() {
	c.classifier.Sample(tickInterval)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	settings := c.settings.Snapshot()
	threshold := settings.IdleThreshold.Duration
	interval := settings.MoveInterval.Duration
	reading := c.lastReading

	switch c.state {
	case StateMonitoring:
		if reading.Idle >= threshold &&
			c.classifier.StillTime() >= threshold &&
			!c.classifier.UserMoving() {
			c.state = StateJiggling
			c.logger.Info("coordinator: idle threshold reached, jiggling",
				zap.Duration("idle", reading.Idle),
				zap.Duration("still", c.classifier.StillTime()))
			c.fireJiggleLocked()
			c.notify("Jiggle", "Jiggling started")
		}

	case StateJiggling:
		if reading.Idle < rearmThreshold {
			c.state = StateMonitoring
			c.classifier.SetStillTime(reading.Idle)
			c.logger.Info("coordinator: user activity detected, re-arming",
				zap.Duration("idle", reading.Idle))
			c.notify("Jiggle", "Jiggling paused")
			return
		}
		if c.now().Sub(c.lastJiggle) >= interval {
			c.fireJiggleLocked()
		}
	}
}

// fireJiggleLocked invokes the actuator fire-and-forget. A previous
// animation still in flight defers the fire to a later tick, so
// lastJiggle only records moves that actually started.
func (c *Coordinator) fireJiggleLocked() {
	if c.actuator.InFlight() {
		c.logger.Debug("coordinator: animation in flight, deferring jiggle")
		return
	}
	c.lastJiggle = c.now()
	c.actuator.Jiggle()
}

// notify is fire-and-forget; a nil notifier is fine.
func (c *Coordinator) notify(title, message string) {
	if c.notifier != nil {
		c.notifier.Notify(title, message)
	}
}
