//go:build windows

package idle

import (
	"syscall"
	"time"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	kernel32             = syscall.NewLazyDLL("kernel32.dll")
	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount     = kernel32.NewProc("GetTickCount")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

// systemIdleTime returns the time since the last input event, derived
// from GetLastInputInfo against the current tick count.
func systemIdleTime() (time.Duration, error) {
	var info lastInputInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return 0, err
	}

	tick, _, _ := procGetTickCount.Call()

	idleMillis := uint32(tick) - info.dwTime
	return time.Duration(idleMillis) * time.Millisecond, nil
}
