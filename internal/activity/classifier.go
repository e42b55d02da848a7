// Package activity tracks how long the pointer has been stationary,
// independent of the OS idle counter, and distinguishes genuine user
// motion from the jiggler's own cursor warps.
package activity

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/screen"
)

const (
	// movementThreshold is the position delta, in pixels, above which
	// a sample counts as user movement.
	movementThreshold = 5.0

	// maskWindow is how long deltas are ignored after a completed
	// jiggle, so a self-inflicted warp is not read as user activity.
	maskWindow = time.Second
)

// Classifier turns per-tick pointer samples into a still-time counter.
type Classifier struct {
	mu     sync.Mutex
	screen screen.Screen
	logger *zap.Logger
	now    func() time.Time

	last      screen.Point
	hasLast   bool
	still     time.Duration
	moving    bool
	maskUntil time.Time
}

// New creates a classifier reading positions from the given screen.
func New(s screen.Screen, logger *zap.Logger) *Classifier {
	return &Classifier{
		screen: s,
		logger: logger,
		now:    time.Now,
	}
}

// Sample reads the current pointer position and updates the
// still-time counter. tick is the sampling period the caller runs at.
func (c *Classifier) Sample(tick time.Duration) {
	pos, err := c.screen.PointerPosition()
	if err != nil {
		c.logger.Warn("classifier: pointer position unavailable", zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasLast {
		c.last = pos
		c.hasLast = true
		return
	}

	if c.now().Before(c.maskUntil) {
		// Inside the masking window the position is tracked but not
		// classified.
		c.last = pos
		return
	}

	dist := c.last.Dist(pos)
	c.last = pos

	if dist > movementThreshold {
		c.moving = true
		c.still = 0
		return
	}

	c.moving = false
	c.still += tick
}

// MaskMovement opens the masking window. The actuator calls this when
// an animation completes.
func (c *Classifier) MaskMovement() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maskUntil = c.now().Add(maskWindow)
}

// StillTime returns how long the pointer has been stationary.
func (c *Classifier) StillTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.still
}

// UserMoving reports whether the last sample showed user movement.
func (c *Classifier) UserMoving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moving
}

// SetStillTime overrides the still-time counter. The coordinator uses
// this when re-arming after a jiggle session.
func (c *Classifier) SetStillTime(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.still = d
}

// Reset clears all tracked state.
func (c *Classifier) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasLast = false
	c.still = 0
	c.moving = false
	c.maskUntil = time.Time{}
}
