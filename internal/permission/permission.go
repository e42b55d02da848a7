// Package permission checks whether the OS lets this process
// synthesize pointer input, and can raise the system prompt.
package permission

import (
	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/screen"
)

// Checker probes input-synthesis permission by warping the pointer a
// single pixel and reading the position back. If the warp did not
// land, the platform is blocking synthetic events.
type Checker struct {
	screen screen.Screen
	logger *zap.Logger
}

// New creates a permission checker against the given screen.
func New(s screen.Screen, logger *zap.Logger) *Checker {
	return &Checker{screen: s, logger: logger}
}

// Granted reports whether synthetic pointer events are allowed.
func (c *Checker) Granted() bool {
	if !probeRequired() {
		return true
	}

	pos, err := c.screen.PointerPosition()
	if err != nil {
		c.logger.Warn("permission: probe could not read pointer", zap.Error(err))
		return false
	}

	probe := screen.Point{X: pos.X + 1, Y: pos.Y + 1}
	if err := c.screen.WarpPointer(probe); err != nil {
		c.logger.Warn("permission: probe warp failed", zap.Error(err))
		return false
	}

	after, err := c.screen.PointerPosition()
	// Restore the original position regardless of the outcome.
	_ = c.screen.WarpPointer(pos)
	if err != nil {
		return false
	}

	if after.Dist(probe) > 0.5 {
		c.logger.Warn("permission: synthetic pointer events appear blocked; " +
			"enable Accessibility for this process in System Settings, Privacy and Security")
		return false
	}
	return true
}

// Request raises the platform permission surface, if there is one.
func (c *Checker) Request() {
	requestPermission(c.logger)
}
