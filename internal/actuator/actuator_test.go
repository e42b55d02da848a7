package actuator

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jigglemouse/jiggle/internal/screen"
)

// fakeScreen records warps against a configurable desktop.
type fakeScreen struct {
	mu       sync.Mutex
	pos      screen.Point
	posErr   error
	displays []screen.Display
	dispErr  error
	windows  []screen.Window
	warps    []screen.Point
}

func (f *fakeScreen) PointerPosition() (screen.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos, f.posErr
}

func (f *fakeScreen) WarpPointer(p screen.Point) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warps = append(f.warps, p)
	f.pos = p
	return nil
}

func (f *fakeScreen) Displays() ([]screen.Display, error) {
	return f.displays, f.dispErr
}

func (f *fakeScreen) Windows(screen.Display) ([]screen.Window, error) {
	return f.windows, nil
}

func (f *fakeScreen) warpCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.warps)
}

func singleDisplay() []screen.Display {
	frame := screen.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	return []screen.Display{{ID: 0, Frame: frame, Usable: frame}}
}

func newTestActuator(f *fakeScreen) *Actuator {
	a := New(f, zap.NewNop())
	a.rnd = rand.New(rand.NewSource(1))
	a.sleep = func(time.Duration) {}
	return a
}

func TestJiggleAnimatesToCompletion(t *testing.T) {
	f := &fakeScreen{pos: screen.Point{X: 500, Y: 500}, displays: singleDisplay()}
	a := newTestActuator(f)

	done := make(chan struct{})
	a.OnComplete(func() { close(done) })

	a.Jiggle()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animation did not complete")
	}

	require.Equal(t, animSteps, f.warpCount())
	assert.False(t, a.InFlight())

	// The final warp is the chosen target, inside the padded frame.
	final := f.warps[len(f.warps)-1]
	padded := f.displays[0].Usable.Inset(framePadding)
	assert.True(t, padded.Contains(final) || onBoundary(padded, final),
		"final position %v outside padded frame %v", final, padded)
}

func onBoundary(r screen.Rect, p screen.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func TestJiggleOnNegativeCoordinateDisplay(t *testing.T) {
	// A monitor arranged left of and above the primary has a negative
	// origin, so the pointer legitimately sits at negative global
	// coordinates. The jiggle must resolve that display and fire.
	left := screen.Rect{X: -1920, Y: -1080, W: 1920, H: 1080}
	primary := screen.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	f := &fakeScreen{
		pos: screen.Point{X: -500, Y: -200},
		displays: []screen.Display{
			{ID: 0, Frame: left, Usable: left},
			{ID: 1, Frame: primary, Usable: primary},
		},
	}
	a := newTestActuator(f)

	done := make(chan struct{})
	a.OnComplete(func() { close(done) })

	a.Jiggle()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animation did not complete")
	}
	require.Equal(t, animSteps, f.warpCount(), "pointer on a negative-origin display must still be jiggled")
}

func TestOverlappingJiggleIsNoOp(t *testing.T) {
	f := &fakeScreen{pos: screen.Point{X: 500, Y: 500}, displays: singleDisplay()}
	a := newTestActuator(f)

	release := make(chan struct{})
	a.sleep = func(time.Duration) { <-release }

	done := make(chan struct{})
	a.OnComplete(func() { close(done) })

	a.Jiggle()
	require.Eventually(t, func() bool { return f.warpCount() >= 1 }, time.Second, time.Millisecond)

	before := f.warpCount()
	a.Jiggle() // must not start a second animation
	assert.Equal(t, before, f.warpCount())

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animation did not complete")
	}
	assert.Equal(t, animSteps, f.warpCount(), "exactly one animation's worth of warps")
}

func TestJiggleFailsSilently(t *testing.T) {
	t.Run("pointer unavailable", func(t *testing.T) {
		f := &fakeScreen{posErr: errors.New("no session"), displays: singleDisplay()}
		a := newTestActuator(f)

		a.Jiggle()
		assert.Zero(t, f.warpCount())
		assert.False(t, a.InFlight(), "in-flight flag must be released on failure")
	})

	t.Run("no displays", func(t *testing.T) {
		f := &fakeScreen{pos: screen.Point{X: 10, Y: 10}}
		a := newTestActuator(f)

		a.Jiggle()
		assert.Zero(t, f.warpCount())
		assert.False(t, a.InFlight())
	})

	t.Run("pointer outside all displays", func(t *testing.T) {
		f := &fakeScreen{pos: screen.Point{X: -5000, Y: -5000}, displays: singleDisplay()}
		a := newTestActuator(f)

		a.Jiggle()
		assert.Zero(t, f.warpCount())
		assert.False(t, a.InFlight())
	})
}

func TestTargetPointStaysInPaddedFrame(t *testing.T) {
	frame := screen.Rect{X: 100, Y: 50, W: 1440, H: 900}
	d := screen.Display{ID: 0, Frame: frame, Usable: frame}
	padded := frame.Inset(framePadding)

	a := newTestActuator(&fakeScreen{displays: []screen.Display{d}})
	pos := screen.Point{X: 120, Y: 70}

	for _, fullScreen := range []bool{false, true} {
		for i := 0; i < 1000; i++ {
			p := a.chooseTargetPoint(d, pos, fullScreen)
			if !onBoundary(padded, p) {
				t.Fatalf("trial %d (fullScreen=%v): target %v outside %v", i, fullScreen, p, padded)
			}
		}
	}
}

func TestRadialTargetStaysNearPointer(t *testing.T) {
	frame := screen.Rect{X: 0, Y: 0, W: 5000, H: 5000}
	d := screen.Display{ID: 0, Frame: frame, Usable: frame}

	a := newTestActuator(&fakeScreen{displays: []screen.Display{d}})
	pos := screen.Point{X: 2500, Y: 2500}

	for i := 0; i < 1000; i++ {
		p := a.chooseTargetPoint(d, pos, true)
		dist := pos.Dist(p)
		assert.GreaterOrEqual(t, dist, radialMin-1e-9)
		assert.LessOrEqual(t, dist, radialMax+1e-9)
	}
}

func TestChooseTargetDisplay(t *testing.T) {
	frameA := screen.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	frameB := screen.Rect{X: 1920, Y: 0, W: 1920, H: 1080}
	displays := []screen.Display{
		{ID: 0, Frame: frameA, Usable: frameA},
		{ID: 1, Frame: frameB, Usable: frameB},
	}

	a := newTestActuator(&fakeScreen{displays: displays})

	stays := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if a.chooseTargetDisplay(displays[0], displays).ID == 0 {
			stays++
		}
	}

	ratio := float64(stays) / trials
	assert.InDelta(t, 0.7, ratio, 0.03, "should stay on the current display about 70 percent of the time")

	// Single display: never leaves.
	one := displays[:1]
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, a.chooseTargetDisplay(one[0], one).ID)
	}
}

func TestFullScreenHeuristic(t *testing.T) {
	frame := screen.Rect{X: 0, Y: 0, W: 1000, H: 1000}
	d := screen.Display{ID: 0, Frame: frame, Usable: frame}

	tests := []struct {
		name    string
		windows []screen.Window
		want    bool
	}{
		{"no windows", nil, false},
		{"small window", []screen.Window{{Frame: screen.Rect{W: 400, H: 300}}}, false},
		{"covering window", []screen.Window{{Frame: screen.Rect{W: 1000, H: 960}}}, true},
		{"covering but non-normal layer", []screen.Window{{Frame: screen.Rect{W: 1000, H: 1000}, Layer: 25}}, false},
		{"exactly at threshold", []screen.Window{{Frame: screen.Rect{W: 1000, H: 950}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestActuator(&fakeScreen{windows: tt.windows})
			assert.Equal(t, tt.want, a.hasFullScreenApp(d))
		})
	}
}

func TestEaseInOut(t *testing.T) {
	assert.InDelta(t, 0.0, easeInOut(0), 1e-9)
	assert.InDelta(t, 0.5, easeInOut(0.5), 1e-9)
	assert.InDelta(t, 1.0, easeInOut(1), 1e-9)
	assert.InDelta(t, 0.08, easeInOut(0.2), 1e-9)
	assert.InDelta(t, 0.92, easeInOut(0.8), 1e-9)

	// Monotone non-decreasing over the animation range.
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := easeInOut(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
