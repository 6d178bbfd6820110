package main

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

func TestRunRejectsBadArgumentCount(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"1", "2"}, {"1", "2", "3"}} {
		var stdout, stderr strings.Builder
		if code := run(args, &stdout, &stderr); code == 0 {
			t.Errorf("args %v: exit code 0, want nonzero", args)
		}
		if !strings.Contains(stderr.String(), "usage:") {
			t.Errorf("args %v: no usage line on stderr, got %q", args, stderr.String())
		}
		if stdout.String() != "" {
			t.Errorf("args %v: measurement output despite bad arguments: %q", args, stdout.String())
		}
	}
}

var (
	latencyLine = regexp.MustCompile(`^\S.* muls: +\d+\.\d{3}$`)
	byteLine    = regexp.MustCompile(`^\(\d+\)$`)
)

// TestRunEndToEnd exercises the real measurement path, so it needs a
// machine with counter access enabled.
func TestRunEndToEnd(t *testing.T) {
	if os.Getenv("CYCCNT_HWTEST") != "1" {
		t.Skip("counter access not enabled; run cycctl and set CYCCNT_HWTEST=1")
	}

	var stdout, stderr strings.Builder
	if code := run([]string{"3"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d output lines, want 4:\n%s", len(lines), stdout.String())
	}
	for _, line := range lines[:3] {
		if !latencyLine.MatchString(line) {
			t.Errorf("latency line %q does not match %v", line, latencyLine)
		}
	}
	if !byteLine.MatchString(lines[3]) {
		t.Errorf("final line %q is not a parenthesized byte", lines[3])
	}
}
