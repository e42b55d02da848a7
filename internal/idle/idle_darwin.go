//go:build darwin

package idle

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

var hidIdleTimeRe = regexp.MustCompile(`"HIDIdleTime"\s*=\s*(\d+)`)

// systemIdleTime returns the system idle time on macOS by querying
// the IOHIDSystem registry entry. The value is in nanoseconds.
func systemIdleTime() (time.Duration, error) {
	out, err := exec.Command("ioreg", "-c", "IOHIDSystem").Output()
	if err != nil {
		return 0, err
	}

	matches := hidIdleTimeRe.FindSubmatch(out)
	if len(matches) < 2 {
		return 0, fmt.Errorf("HIDIdleTime not found in ioreg output")
	}

	nanos, err := strconv.ParseInt(string(matches[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse HIDIdleTime: %v", err)
	}

	return time.Duration(nanos), nil
}
