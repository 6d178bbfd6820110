//go:build riscv64

package cpu

// readCycleCounter reads the cycle CSR with rdcycle. The ISA already
// orders the CSR read with respect to surrounding instructions, so no
// explicit barrier is issued. Implemented in cycles_riscv64.s.
//
// Requires scounteren bit 0 to be set and the counter started via the
// SBI (see internal/pmu and cmd/cycctl).
//
//go:noescape
func readCycleCounter() uint64
