//go:build darwin

package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// scriptExecutionTimeout limits how long we wait for osascript to
// complete if the scripting environment is not responding.
const scriptExecutionTimeout = 3 * time.Second

// windowListScript dumps on-screen window bounds and layers as JSON.
const windowListScript = `
ObjC.import('CoreGraphics');

var opts = $.kCGWindowListOptionOnScreenOnly | $.kCGWindowListExcludeDesktopElements;
var list = ObjC.deepUnwrap($.CFBridgingRelease($.CGWindowListCopyWindowInfo(opts, $.kCGNullWindowID)));

var out = [];
for (var i = 0; i < list.length; i++) {
	var w = list[i];
	var b = w.kCGWindowBounds;
	if (!b) continue;
	out.push({x: b.X, y: b.Y, w: b.Width, h: b.Height, layer: w.kCGWindowLayer || 0});
}
console.log(JSON.stringify(out));
`

type windowInfo struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Layer int     `json:"layer"`
}

// listWindows queries the window server via a JXA script.
func listWindows() ([]Window, error) {
	out, err := runJXAScript(windowListScript)
	if err != nil {
		return nil, err
	}

	var infos []windowInfo
	if err := json.Unmarshal(out, &infos); err != nil {
		return nil, fmt.Errorf("parse window list: %w", err)
	}

	windows := make([]Window, 0, len(infos))
	for _, w := range infos {
		windows = append(windows, Window{
			Frame: Rect{X: w.X, Y: w.Y, W: w.W, H: w.H},
			Layer: w.Layer,
		})
	}
	return windows, nil
}

func runJXAScript(script string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptExecutionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", script)
	out, err := cmd.Output()

	if ctx.Err() == context.DeadlineExceeded {
		return out, fmt.Errorf("osascript timed out after %s", scriptExecutionTimeout)
	}

	return out, err
}
