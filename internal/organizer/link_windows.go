//go:build windows

package organizer

import (
	"errors"
	"syscall"
)

// ERROR_NOT_SAME_DEVICE
const errNotSameDevice = syscall.Errno(17)

// isCrossDevice reports whether err is the platform's cross-device
// link error.
func isCrossDevice(err error) bool {
	return errors.Is(err, errNotSameDevice)
}
