package cyccnt

import "errors"

// Sentinel errors returned by the measurement harness.
var (
	// ErrNilWorkload is returned when a nil workload, or a workload with
	// no Run function, is passed to Measure.
	ErrNilWorkload = errors.New("cyccnt: nil workload")

	// ErrBadWorkload is returned when a workload declares a non-positive
	// operation count per repetition.
	ErrBadWorkload = errors.New("cyccnt: workload operation count must be positive")

	// ErrBadOptions is returned when Options values are out of range,
	// e.g. a warm-up discard at least as long as the iteration count.
	ErrBadOptions = errors.New("cyccnt: invalid measurement options")
)
