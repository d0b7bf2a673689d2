//go:build linux

package linux

import (
	"golang.org/x/sys/unix"

	"github.com/srlehn/fbclock/internal/errors"
)

const kdGetMode = 0x4b3b // KDGETMODE

// KDGetMode queries the console mode of the terminal behind fd.
// isLinuxConsole is false if fd is not a virtual console.
func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	m, err := unix.IoctlGetInt(int(fd), kdGetMode)
	if err == nil {
		return KDMode(m), true, nil
	}
	if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL) {
		return -1, false, nil
	}
	return -1, false, errors.New(err)
}
