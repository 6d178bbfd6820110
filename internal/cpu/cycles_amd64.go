//go:build amd64

package cpu

// readCycleCounter reads the fixed-function cycle counter with RDPMC,
// preceded by LFENCE so the read cannot retire before earlier
// instructions complete. Implemented in cycles_amd64.s.
//
// Requires the host rdpmc toggle:
//
//	echo 2 > /sys/bus/event_source/devices/cpu/rdpmc
//
//go:noescape
func readCycleCounter() uint64
