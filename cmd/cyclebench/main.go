// Command cyclebench measures integer multiplication latency in CPU
// cycles.
//
// Usage:
//
//	cyclebench <seed>
//
// The seed feeds the multiply chains at run time so the compiler cannot
// fold them: 0 and 1 exercise the special-case paths a variable-time
// multiplier may take, 3 the general case. Output is one cycles-per-op
// line per workload, then a parenthesized byte derived from the final
// chain value (an anti-dead-code artifact, not data).
//
// Counter access must be enabled first; see cmd/cycctl. Set
// CYCLEBENCH_PROFILE=1 to also write a CPU profile to the current
// directory.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/profile"

	"github.com/cwbudde/cyccnt"
)

func main() {
	os.Exit(runProfiled(os.Args[1:], os.Stdout, os.Stderr))
}

// runProfiled wraps run so the profiler's deferred stop executes before
// the process exits.
func runProfiled(args []string, stdout, stderr io.Writer) int {
	if os.Getenv("CYCLEBENCH_PROFILE") != "" {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	return run(args, stdout, stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: cyclebench [ 0 | 1 | 3 ]")
		return 1
	}
	// Any integer is accepted; non-numeric input counts as zero rather
	// than failing.
	seed, _ := strconv.Atoi(args[0])

	b := cyccnt.NewMulBench(uint32(seed))
	opt := cyccnt.DefaultOptions()
	for _, w := range b.Workloads() {
		cpo, err := cyccnt.Measure(w, opt)
		if err != nil {
			fmt.Fprintf(stderr, "cyclebench: %s: %v\n", w.Name, err)
			return 1
		}
		fmt.Fprintf(stdout, "%-16s %7.3f\n", w.Name+":", cpo)
	}
	fmt.Fprintf(stdout, "(%d)\n", b.FinalByte())
	return 0
}
