//go:build !windows

package organizer

import (
	"errors"
	"syscall"
)

// isCrossDevice reports whether err is the platform's cross-device
// link error.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
