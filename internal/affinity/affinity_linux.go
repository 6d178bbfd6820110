//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pin sets the calling thread's affinity mask to the single CPU cpuID.
func pin(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: pin to CPU %d: %w", cpuID, err)
	}
	return nil
}
