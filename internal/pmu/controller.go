// Package pmu broadcasts the hardware cycle-counter enable and disable
// sequences to every online logical processor.
//
// Go userspace cannot write the privileged counter-control registers
// directly, so the enable sequence is expressed through the platform's
// privileged counter interface. On Linux that is the perf subsystem: one
// pinned per-CPU event group per logical processor keeps the cycle
// counter (plus the fixed-rate reference counter and the retired
// instruction counter, as a broad-access convenience) active and reset
// for as long as the descriptors stay open. Activation therefore lasts
// only while the controlling process lives; run cycctl in the background
// for the duration of a benchmark session.
package pmu

import (
	"fmt"
	"log"
	"sync"
)

// Controller owns the per-processor counter state between Activate and
// Deactivate. The lifecycle is strictly activate-then-deactivate,
// sequenced by a single external owner; overlapping or repeated Activate
// calls are undefined.
type Controller struct {
	events []*cpuEvents
}

// New returns an inactive Controller.
func New() *Controller {
	return &Controller{}
}

// Activate runs the enable sequence on every online logical processor
// and returns once all of them have been handled. Processors are handled
// in parallel and independently; a per-processor failure is logged and
// that processor skipped, it does not abort activation. The only error
// returned is failure to enumerate the online processors.
func (c *Controller) Activate() error {
	cpus, err := onlineCPUs()
	if err != nil {
		return fmt.Errorf("pmu: enumerate online CPUs: %w", err)
	}

	events := make([]*cpuEvents, len(cpus))
	var wg sync.WaitGroup
	for i, cpu := range cpus {
		i, cpu := i, cpu
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, err := enableCounter(cpu)
			if err != nil {
				log.Printf("pmu: enable cycle counter on CPU %d: %v", cpu, err)
				return
			}
			log.Printf("pmu: enabled cycle counter on CPU %d", cpu)
			events[i] = ev
		}()
	}
	wg.Wait()

	c.events = c.events[:0]
	for _, ev := range events {
		if ev != nil {
			c.events = append(c.events, ev)
		}
	}
	return nil
}

// Deactivate runs the disable sequence on every processor Activate
// configured, restoring the pre-activation state, and releases the
// underlying descriptors. It must run before the controlling process
// relinquishes control so that no processor is left granting counter
// access indefinitely. Deactivating an inactive Controller is a no-op.
func (c *Controller) Deactivate() {
	var wg sync.WaitGroup
	for _, ev := range c.events {
		ev := ev
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ev.disable(); err != nil {
				log.Printf("pmu: disable cycle counter on CPU %d: %v", ev.cpu, err)
				return
			}
			log.Printf("pmu: disabled cycle counter on CPU %d", ev.cpu)
		}()
	}
	wg.Wait()
	c.events = nil
}

// EnabledCPUs returns the logical processors whose counters the last
// Activate successfully enabled.
func (c *Controller) EnabledCPUs() []int {
	cpus := make([]int, 0, len(c.events))
	for _, ev := range c.events {
		cpus = append(cpus, ev.cpu)
	}
	return cpus
}
