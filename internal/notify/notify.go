// Package notify sends fire-and-forget desktop notifications at
// jiggle state transitions.
package notify

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Desktop delivers notifications through the platform notification
// service. Failures are logged and dropped; Notify never blocks.
type Desktop struct {
	logger *zap.Logger
}

// New creates a desktop notifier.
func New(logger *zap.Logger) *Desktop {
	return &Desktop{logger: logger}
}

// Notify delivers a notification asynchronously.
func (d *Desktop) Notify(title, message string) {
	go func() {
		if err := beeep.Notify(title, message, ""); err != nil {
			d.logger.Warn("notify: delivery failed",
				zap.String("title", title), zap.Error(err))
		}
	}()
}

// Nop is a notifier that discards everything. Useful when the user
// disables notifications.
type Nop struct{}

// Notify implements the notifier contract by doing nothing.
func (Nop) Notify(title, message string) {}
