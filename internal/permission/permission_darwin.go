//go:build darwin

package permission

import (
	"os/exec"

	"go.uber.org/zap"
)

func probeRequired() bool { return true }

// requestPermission opens the Accessibility pane; macOS only adds the
// process to the list after it first attempts a synthetic event,
// which the Granted probe has already done.
func requestPermission(logger *zap.Logger) {
	err := exec.Command("open",
		"x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility").Run()
	if err != nil {
		logger.Warn("permission: could not open Accessibility settings", zap.Error(err))
	}
}
