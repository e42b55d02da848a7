//go:build !darwin

package screen

func usableFrame(frame Rect) Rect {
	return frame
}
