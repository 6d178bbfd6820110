//go:build !linux

package affinity

import "errors"

// pin is a stub for platforms without thread affinity support.
func pin(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}
