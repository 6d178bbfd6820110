//go:build !linux

package pmu

import "errors"

var errUnsupported = errors.New("pmu: counter access control is not supported on this platform")

type cpuEvents struct {
	cpu int
}

func onlineCPUs() ([]int, error) {
	return nil, errUnsupported
}

func enableCounter(cpu int) (*cpuEvents, error) {
	return nil, errUnsupported
}

func (ev *cpuEvents) disable() error {
	return nil
}
