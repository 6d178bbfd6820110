// Package cyccnt measures instruction-level latency in CPU cycles.
//
// Measurements read the hardware cycle counter directly from userspace
// (see internal/cpu). On ARMv8 and RISC-V, unprivileged access to the
// counter must first be enabled on every logical processor by running the
// cycctl tool as root; on x86, the host-wide rdpmc toggle must be set
// out-of-band:
//
//	echo 2 > /sys/bus/event_source/devices/cpu/rdpmc
//
// If access was never enabled, reading the counter is undefined: the
// process may fault, or measurements may come back as garbage. The
// harness performs no probing for this condition.
package cyccnt

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/cwbudde/cyccnt/internal/affinity"
	"github.com/cwbudde/cyccnt/internal/cpu"
)

// Workload is a fixed, data-dependent operation chain whose steady-state
// per-operation cost is estimated by Measure.
type Workload struct {
	// Name labels the workload in reports.
	Name string

	// OpsPerRep is the number of measured operations executed by one
	// repetition of Run's inner body. Measure divides the per-window
	// cycle count by InnerReps*OpsPerRep.
	OpsPerRep int

	// Setup, if non-nil, runs once before the measurement loop. Chained
	// workloads use it to derive their inputs from a predecessor's final
	// state.
	Setup func()

	// Run executes reps repetitions of the operation chain. The chain
	// state must persist across calls so the optimizer cannot fold the
	// operations away.
	Run func(reps int)
}

// Options control the shape of the measurement loop.
type Options struct {
	// Iterations is the number of outer timed iterations.
	Iterations int

	// Warmup is the number of leading samples discarded unconditionally,
	// defending against cold caches, cold branch predictors and frequency
	// scaling.
	Warmup int

	// InnerReps is the number of workload repetitions inside one timed
	// window.
	InnerReps int

	// PinCPU pins the measuring thread to the given logical CPU for the
	// duration of the run. A negative value leaves placement to the
	// scheduler. The thread is locked to its OS thread either way;
	// counter deltas only mean something when both reads happen on the
	// same logical processor. The narrowed affinity mask is not restored
	// afterwards, so pinning is meant for short-lived benchmark
	// processes.
	PinCPU int
}

// DefaultOptions returns the measurement shape used by the cyclebench
// tool: 120 outer iterations of 1000 inner repetitions, with the first 20
// samples discarded and the median of the remaining 100 taken as the
// representative cost.
func DefaultOptions() Options {
	return Options{Iterations: 120, Warmup: 20, InnerReps: 1000, PinCPU: -1}
}

// Measure estimates the steady-state cost of w in cycles per operation.
//
// It reads the cycle counter immediately before and after each timed
// window, discards the warm-up prefix, and reduces the remaining deltas
// to their median. The median is chosen over the mean to resist the heavy
// right tail that scheduler preemption and interrupts put on unisolated
// userspace timings.
func Measure(w *Workload, opt Options) (float64, error) {
	if w == nil || w.Run == nil {
		return 0, ErrNilWorkload
	}
	if w.OpsPerRep < 1 {
		return 0, ErrBadWorkload
	}
	if opt.Iterations <= 0 || opt.InnerReps <= 0 || opt.Warmup < 0 || opt.Warmup >= opt.Iterations {
		return 0, ErrBadOptions
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if opt.PinCPU >= 0 {
		if err := affinity.Pin(opt.PinCPU); err != nil {
			return 0, fmt.Errorf("cyccnt: pin measuring thread: %w", err)
		}
	}

	if w.Setup != nil {
		w.Setup()
	}

	samples := make([]uint64, 0, opt.Iterations-opt.Warmup)
	for i := 0; i < opt.Iterations; i++ {
		begin := cpu.ReadCycleCounter()
		w.Run(opt.InnerReps)
		delta := cpu.CyclesSince(begin)
		if i >= opt.Warmup {
			samples = append(samples, delta)
		}
	}

	total := median(samples)
	return float64(total) / float64(opt.InnerReps*w.OpsPerRep), nil
}

// median sorts tt in place and returns the element at rank len(tt)/2 of
// the sorted order.
func median(tt []uint64) uint64 {
	sort.Slice(tt, func(i, j int) bool { return tt[i] < tt[j] })
	return tt[len(tt)/2]
}
