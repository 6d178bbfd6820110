package pmu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// parseCPUList parses the kernel's CPU list format, e.g. "0-3,5,7-8".
func parseCPUList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("pmu: empty CPU list")
	}
	var cpus []int
	for _, field := range strings.Split(s, ",") {
		first, last, isRange := strings.Cut(field, "-")
		lo, err := strconv.Atoi(first)
		if err != nil || lo < 0 {
			return nil, fmt.Errorf("pmu: bad CPU list entry %q", field)
		}
		hi := lo
		if isRange {
			hi, err = strconv.Atoi(last)
			if err != nil || hi < lo {
				return nil, fmt.Errorf("pmu: bad CPU range %q", field)
			}
		}
		for cpu := lo; cpu <= hi; cpu++ {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}
