//go:build linux

package pmu

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const onlineCPUPath = "/sys/devices/system/cpu/online"

// onlineCPUs returns every online logical processor.
func onlineCPUs() ([]int, error) {
	data, err := os.ReadFile(onlineCPUPath)
	if err != nil {
		return nil, err
	}
	return parseCPUList(string(data))
}

// counterConfigs are the hardware events enabled on each processor. The
// cycle counter is the one the reader needs; the fixed-rate reference
// counter and the retired-instruction counter are enabled alongside it,
// matching the broad grant a counter-enable register covers.
var counterConfigs = []uint64{
	unix.PERF_COUNT_HW_CPU_CYCLES,
	unix.PERF_COUNT_HW_REF_CPU_CYCLES,
	unix.PERF_COUNT_HW_INSTRUCTIONS,
}

// cpuEvents holds the open descriptors keeping the counters of one
// logical processor enabled.
type cpuEvents struct {
	cpu int
	fds []int
}

// enableCounter starts hardware counting on one logical processor. Each
// event is pinned to the processor, reset to zero, and enabled; it stays
// active until the descriptor is closed.
func enableCounter(cpu int) (*cpuEvents, error) {
	ev := &cpuEvents{cpu: cpu}
	for _, config := range counterConfigs {
		attr := unix.PerfEventAttr{
			Type:   unix.PERF_TYPE_HARDWARE,
			Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
			Config: config,
			Bits:   unix.PerfBitPinned,
		}
		fd, err := unix.PerfEventOpen(&attr, -1, cpu, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			ev.disable()
			return nil, fmt.Errorf("perf_event_open config %#x: %w", config, err)
		}
		ev.fds = append(ev.fds, fd)
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
			ev.disable()
			return nil, fmt.Errorf("reset counter %#x: %w", config, err)
		}
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			ev.disable()
			return nil, fmt.Errorf("enable counter %#x: %w", config, err)
		}
	}
	return ev, nil
}

// disable stops every counter of the processor and closes the
// descriptors, mirroring enableCounter exactly.
func (ev *cpuEvents) disable() error {
	var firstErr error
	for _, fd := range ev.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_DISABLE, 0); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("disable counter: %w", err)
		}
		unix.Close(fd)
	}
	ev.fds = nil
	return firstErr
}
