package screen

import (
	"fmt"

	"github.com/go-vgo/robotgo"
	"go.uber.org/zap"
)

// System is the robotgo-backed Screen implementation.
type System struct {
	logger *zap.Logger
}

// NewSystem creates a Screen backed by the real desktop session.
func NewSystem(logger *zap.Logger) *System {
	return &System{logger: logger}
}

// PointerPosition returns the current global cursor position.
// Negative coordinates are valid: displays arranged left of or above
// the primary have negative origins.
func (s *System) PointerPosition() (Point, error) {
	x, y := robotgo.Location()
	return Point{X: float64(x), Y: float64(y)}, nil
}

// WarpPointer moves the cursor to the given global position.
func (s *System) WarpPointer(p Point) error {
	robotgo.Move(int(p.X), int(p.Y))
	return nil
}

// Displays enumerates connected displays fresh on every call.
func (s *System) Displays() ([]Display, error) {
	n := robotgo.DisplaysNum()
	if n <= 0 {
		return nil, fmt.Errorf("%w: no displays reported", ErrDisplayUnresolved)
	}

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		x, y, w, h := robotgo.GetDisplayBounds(i)
		frame := Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
		displays = append(displays, Display{
			ID:     i,
			Frame:  frame,
			Usable: usableFrame(frame),
		})
	}
	return displays, nil
}

// Windows lists on-screen windows intersecting the display. Platforms
// without a window list return none, which disables the full-screen
// heuristic rather than failing the jiggle.
func (s *System) Windows(d Display) ([]Window, error) {
	wins, err := listWindows()
	if err != nil {
		s.logger.Debug("screen: window listing failed", zap.Error(err))
		return nil, nil
	}

	out := wins[:0]
	for _, w := range wins {
		if intersects(w.Frame, d.Frame) {
			out = append(out, w)
		}
	}
	return out, nil
}

func intersects(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
