package screen

import "errors"

var (
	// ErrPositionUnavailable means the pointer position could not be read.
	ErrPositionUnavailable = errors.New("pointer position unavailable")

	// ErrDisplayUnresolved means no connected display contains the pointer.
	ErrDisplayUnresolved = errors.New("display for pointer position unresolved")
)

// Display identifies one connected screen. IDs are stable per boot;
// displays may come and go at runtime, so enumerate fresh each time.
type Display struct {
	ID     int
	Frame  Rect
	Usable Rect
}

// Window is an on-screen window as far as the full-screen heuristic
// cares: its bounds and its layer (0 is the normal window layer).
type Window struct {
	Frame Rect
	Layer int
}

// Screen is the desktop surface the jiggler reads and writes.
type Screen interface {
	// PointerPosition returns the current global cursor position.
	PointerPosition() (Point, error)

	// WarpPointer moves the cursor to the given global position.
	WarpPointer(p Point) error

	// Displays enumerates connected displays.
	Displays() ([]Display, error)

	// Windows lists on-screen windows intersecting the display.
	Windows(d Display) ([]Window, error)
}
