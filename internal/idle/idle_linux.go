//go:build linux

package idle

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/jigglemouse/jiggle/internal/util"
)

// systemIdleTime returns the X11 idle time via xprintidle, which
// reports milliseconds. Wayland sessions without XWayland will fail
// here; the monitor's caller falls back to the last good reading.
func systemIdleTime() (time.Duration, error) {
	if !util.HasCommand("xprintidle") {
		return 0, fmt.Errorf("xprintidle not installed")
	}

	out, err := exec.Command("xprintidle").Output()
	if err != nil {
		return 0, err
	}

	millis, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse xprintidle output: %v", err)
	}

	return time.Duration(millis) * time.Millisecond, nil
}
