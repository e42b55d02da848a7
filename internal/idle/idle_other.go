//go:build !darwin && !windows && !linux

package idle

import (
	"fmt"
	"time"
)

func systemIdleTime() (time.Duration, error) {
	return 0, fmt.Errorf("idle detection unsupported on this platform")
}
