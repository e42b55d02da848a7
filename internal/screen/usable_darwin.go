//go:build darwin

package screen

// menuBarHeight is the system chrome reserved at the top of every
// display. The Dock auto-hides for most setups, so only the menu bar
// is subtracted here.
const menuBarHeight = 25.0

func usableFrame(frame Rect) Rect {
	return Rect{
		X: frame.X,
		Y: frame.Y + menuBarHeight,
		W: frame.W,
		H: frame.H - menuBarHeight,
	}
}
