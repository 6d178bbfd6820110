//go:build arm64

package cpu

// readCycleCounter reads PMCCNTR_EL0 behind a full system barrier, so
// the observation point cannot drift across pending loads and stores.
// Implemented in cycles_arm64.s.
//
// Requires unprivileged PMU access to have been enabled on the current
// logical processor (see internal/pmu and cmd/cycctl).
//
//go:noescape
func readCycleCounter() uint64
