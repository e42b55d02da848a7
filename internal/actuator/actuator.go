// Package actuator relocates the pointer to a plausible, bounded new
// position with a short eased animation.
package actuator

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/screen"
)

const (
	// animDuration and animSteps define the fixed animation: 20
	// discrete positions over half a second of wall-clock time.
	animDuration = 500 * time.Millisecond
	animSteps    = 20

	// framePadding insets every usable frame before target selection.
	framePadding = 20.0

	// fullScreenCoverage is the display-area share at which a
	// normal-layer window is treated as a full-screen app. Best
	// effort: overlapping large windows can misclassify.
	fullScreenCoverage = 0.95

	// Radial target bounds used when a full-screen app is detected.
	radialMin = 50.0
	radialMax = 200.0

	// stayProbability is the chance of staying on the current display
	// when more than one is connected.
	stayProbability = 0.7
)

// Actuator animates cursor relocations. At most one animation is in
// flight at a time; overlapping Jiggle calls are logged no-ops.
type Actuator struct {
	screen screen.Screen
	logger *zap.Logger
	rnd    *rand.Rand
	sleep  func(time.Duration)
	onDone func()

	// 0 or 1
	moving uint32
}

// New creates an actuator driving the given screen.
func New(s screen.Screen, logger *zap.Logger) *Actuator {
	return &Actuator{
		screen: s,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:  time.Sleep,
	}
}

// OnComplete registers a hook invoked after each finished animation.
// The classifier uses it to open its masking window.
func (a *Actuator) OnComplete(fn func()) {
	a.onDone = fn
}

// InFlight reports whether an animation is currently running.
func (a *Actuator) InFlight() bool {
	return atomic.LoadUint32(&a.moving) == 1
}

// Jiggle selects a target and starts the relocation animation. While
// a previous animation is still running this is a no-op. All failures
// are logged and swallowed; the worst outcome is no movement.
func (a *Actuator) Jiggle() {
	if !atomic.CompareAndSwapUint32(&a.moving, 0, 1) {
		a.logger.Debug("actuator: jiggle requested while animating, ignoring")
		return
	}

	pos, err := a.screen.PointerPosition()
	if err != nil {
		a.logger.Warn("actuator: skipping jiggle", zap.Error(err))
		atomic.StoreUint32(&a.moving, 0)
		return
	}

	displays, err := a.screen.Displays()
	if err != nil || len(displays) == 0 {
		a.logger.Warn("actuator: skipping jiggle, no displays", zap.Error(err))
		atomic.StoreUint32(&a.moving, 0)
		return
	}

	current, ok := displayContaining(displays, pos)
	if !ok {
		a.logger.Warn("actuator: skipping jiggle", zap.Error(screen.ErrDisplayUnresolved))
		atomic.StoreUint32(&a.moving, 0)
		return
	}

	fullScreen := a.hasFullScreenApp(current)
	target := a.chooseTargetDisplay(current, displays)
	point := a.chooseTargetPoint(target, pos, fullScreen && target.ID == current.ID)

	a.logger.Debug("actuator: jiggling",
		zap.Float64("from_x", pos.X), zap.Float64("from_y", pos.Y),
		zap.Float64("to_x", point.X), zap.Float64("to_y", point.Y),
		zap.Int("display", target.ID),
		zap.Bool("full_screen", fullScreen))

	go a.animate(pos, point)
}

// displayContaining finds the display whose frame holds the point.
func displayContaining(displays []screen.Display, p screen.Point) (screen.Display, bool) {
	for _, d := range displays {
		if d.Frame.Contains(p) {
			return d, true
		}
	}
	return screen.Display{}, false
}

// hasFullScreenApp reports whether a normal-layer window covers at
// least fullScreenCoverage of the display's area.
func (a *Actuator) hasFullScreenApp(d screen.Display) bool {
	windows, err := a.screen.Windows(d)
	if err != nil {
		a.logger.Debug("actuator: window check failed", zap.Error(err))
		return false
	}

	area := d.Frame.Area()
	if area <= 0 {
		return false
	}

	for _, w := range windows {
		if w.Layer != 0 {
			continue
		}
		if w.Frame.Area() >= fullScreenCoverage*area {
			return true
		}
	}
	return false
}

// chooseTargetDisplay stays on the current display with probability
// stayProbability, otherwise picks uniformly among the others.
func (a *Actuator) chooseTargetDisplay(current screen.Display, displays []screen.Display) screen.Display {
	if len(displays) < 2 || a.rnd.Float64() < stayProbability {
		return current
	}

	others := make([]screen.Display, 0, len(displays)-1)
	for _, d := range displays {
		if d.ID != current.ID {
			others = append(others, d)
		}
	}
	if len(others) == 0 {
		return current
	}
	return others[a.rnd.Intn(len(others))]
}

// chooseTargetPoint picks the destination inside the display's padded
// usable frame. Under a full-screen app the movement stays within a
// small radial band of the current position.
func (a *Actuator) chooseTargetPoint(d screen.Display, pos screen.Point, fullScreen bool) screen.Point {
	bounds := d.Usable.Inset(framePadding)

	if fullScreen {
		angle := a.rnd.Float64() * 2 * math.Pi
		radius := radialMin + a.rnd.Float64()*(radialMax-radialMin)
		p := screen.Point{
			X: pos.X + radius*math.Cos(angle),
			Y: pos.Y + radius*math.Sin(angle),
		}
		return bounds.Clamp(p)
	}

	return screen.Point{
		X: bounds.X + a.rnd.Float64()*bounds.W,
		Y: bounds.Y + a.rnd.Float64()*bounds.H,
	}
}

// animate interpolates from start to end with an ease-in-out curve.
// Once started it runs to completion; only process exit aborts it.
func (a *Actuator) animate(from, to screen.Point) {
	defer func() {
		atomic.StoreUint32(&a.moving, 0)
		if a.onDone != nil {
			a.onDone()
		}
	}()

	stepDelay := animDuration / animSteps
	for i := 1; i <= animSteps; i++ {
		t := easeInOut(float64(i) / animSteps)
		p := screen.Point{
			X: from.X + (to.X-from.X)*t,
			Y: from.Y + (to.Y-from.Y)*t,
		}
		if err := a.screen.WarpPointer(p); err != nil {
			a.logger.Warn("actuator: warp failed mid-animation", zap.Error(err))
		}
		a.sleep(stepDelay)
	}
}

// easeInOut is the quadratic ease curve used for every animation.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
