//go:build !darwin

package permission

import "go.uber.org/zap"

// Only macOS gates synthetic input behind a user-visible grant.
func probeRequired() bool { return false }

func requestPermission(logger *zap.Logger) {
	logger.Info("permission: no grant required on this platform")
}
