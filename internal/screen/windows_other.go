//go:build !darwin

package screen

import "fmt"

func listWindows() ([]Window, error) {
	return nil, fmt.Errorf("window listing unsupported on this platform")
}
