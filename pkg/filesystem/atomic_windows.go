//go:build windows

package filesystem

import (
	"os"

	"golang.org/x/sys/windows"
)

// isCrossDeviceError checks whether or not an error returned by os.Rename is
// due to an attempted rename across devices.
func isCrossDeviceError(err error) bool {
	linkErr, ok := err.(*os.LinkError)
	if !ok {
		return false
	}
	errno, ok := linkErr.Err.(windows.Errno)
	return ok && errno == windows.ERROR_NOT_SAME_DEVICE
}
