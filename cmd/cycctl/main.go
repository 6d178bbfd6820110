// Command cycctl enables unprivileged access to the CPU cycle counter on
// every online logical processor, holds it enabled, and disables it again
// on SIGINT or SIGTERM.
//
// Enablement lasts only while cycctl runs: leave it in the background for
// the duration of a benchmark session. Opening the per-CPU counters
// requires root or CAP_PERFMON.
//
// On x86 the counter is read with RDPMC, which is additionally gated by a
// host-wide toggle this tool does not own; cycctl logs a hint when the
// toggle is not set:
//
//	echo 2 > /sys/bus/event_source/devices/cpu/rdpmc
package main

import (
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/cwbudde/cyccnt/internal/pmu"
)

const rdpmcPath = "/sys/bus/event_source/devices/cpu/rdpmc"

func main() {
	log.SetFlags(0)
	log.SetPrefix("cycctl: ")

	ctl := pmu.New()
	if err := ctl.Activate(); err != nil {
		log.Fatalf("activate: %v", err)
	}
	enabled := ctl.EnabledCPUs()
	if len(enabled) == 0 {
		log.Fatal("no CPU accepted the enable sequence (are you root?)")
	}
	if runtime.GOARCH == "amd64" {
		checkRdpmcToggle()
	}
	log.Printf("cycle counter enabled on %d CPUs; send SIGINT or SIGTERM to disable", len(enabled))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctl.Deactivate()
}

// checkRdpmcToggle warns when the host-wide RDPMC gate is closed. The
// toggle belongs to the host administrator, not to this tool.
func checkRdpmcToggle() {
	data, err := os.ReadFile(rdpmcPath)
	if err != nil {
		return
	}
	if v := strings.TrimSpace(string(data)); v != "2" {
		log.Printf("note: %s is %q; userspace RDPMC needs it set to 2", rdpmcPath, v)
	}
}
