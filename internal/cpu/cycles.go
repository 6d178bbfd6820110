// Package cpu reads the hardware cycle counter from userspace.
//
// The read is architecture-selected at build time; there is no runtime
// dispatch and no fallback. Building for an architecture without an
// implementation fails at compile time, which is deliberate: a wall-clock
// substitute would silently produce numbers that are not cycles.
//
// Precondition: unprivileged counter access must have been enabled first
// (cycctl on ARMv8/RISC-V, the host rdpmc toggle on x86). Without it a
// read may fault or return garbage; no defensive check is performed.
package cpu

// ReadCycleCounter returns the current value of the CPU cycle counter.
// The value is opaque: only differences between two reads taken on the
// same logical processor are meaningful.
func ReadCycleCounter() uint64 {
	return readCycleCounter()
}

// CyclesSince returns the number of cycles elapsed since start, by
// unsigned subtraction. Counter wraparound is not handled; at realistic
// frequencies a 64-bit counter does not wrap within a measurement window.
func CyclesSince(start uint64) uint64 {
	return ReadCycleCounter() - start
}
