package cyccnt

import "testing"

// runAll drives the three workloads in measurement order without the
// timing harness, so chain behavior is testable on any machine.
func runAll(b *MulBench, reps int) {
	for _, w := range b.Workloads() {
		if w.Setup != nil {
			w.Setup()
		}
		w.Run(reps)
	}
}

func TestWorkloadShapes(t *testing.T) {
	b := NewMulBench(3)
	ws := b.Workloads()
	if len(ws) != 3 {
		t.Fatalf("got %d workloads, want 3", len(ws))
	}
	want := []struct {
		name string
		ops  int
	}{
		{"32x32->32 muls", 20},
		{"64x64->64 muls", 20},
		{"64x64->128 muls", 8},
	}
	for i, w := range ws {
		if w.Name != want[i].name || w.OpsPerRep != want[i].ops {
			t.Errorf("workload %d = %q/%d, want %q/%d", i, w.Name, w.OpsPerRep, want[i].name, want[i].ops)
		}
		if w.Run == nil {
			t.Errorf("workload %q has no Run", w.Name)
		}
	}
}

func TestSeedZeroStaysDegenerate(t *testing.T) {
	b := NewMulBench(0)
	if b.x32 != 0 || b.y32 != 0 {
		t.Fatalf("seed 0 start = (%d,%d), want zeros", b.x32, b.y32)
	}
	runAll(b, 1000)
	if b.x32 != 0 || b.y32 != 0 || b.x64 != 0 || b.y64 != 0 {
		t.Errorf("seed 0 chains left zero: %d %d %d %d", b.x32, b.y32, b.x64, b.y64)
	}
	if got := b.FinalByte(); got != 0 {
		t.Errorf("seed 0 final byte = %d, want 0", got)
	}
}

func TestSeedOneFixedPoint(t *testing.T) {
	b := NewMulBench(1)
	w32 := b.Mul32()
	w32.Run(1000)
	if b.x32 != 1 || b.y32 != 1 {
		t.Errorf("seed 1 32-bit chain = (%d,%d), want ones", b.x32, b.y32)
	}

	w64 := b.Mul64()
	w64.Setup()
	w64.Run(1000)
	if b.x64 != 1 || b.y64 != 1 {
		t.Errorf("seed 1 64-bit chain = (%d,%d), want ones", b.x64, b.y64)
	}

	// The high-half chain collapses to small values at this fixed point;
	// it must still run to completion.
	hi := b.Mul64Hi()
	hi.Setup()
	hi.Run(1000)
	if b.x64 > 1 || b.y64 > 1 {
		t.Errorf("seed 1 high-half chain = (%d,%d), want 0 or 1", b.x64, b.y64)
	}
}

func TestSeedThreeChainsVary(t *testing.T) {
	b := NewMulBench(3)
	if b.x32 == 0 || b.x32 == 1 {
		t.Fatalf("seed 3 start = %d, want a general-case value", b.x32)
	}
	start32 := b.x32

	w32 := b.Mul32()
	w32.Run(1000)
	if b.x32 == start32 {
		t.Error("seed 3 32-bit chain did not advance")
	}
	if b.x32 == 0 && b.y32 == 0 {
		t.Error("seed 3 32-bit chain collapsed to zero")
	}

	w64 := b.Mul64()
	w64.Setup()
	if b.x64 == 0 || b.x64 == 1 {
		t.Errorf("seed 3 64-bit seed value = %d, want a general-case value", b.x64)
	}
	w64.Run(1000)

	hi := b.Mul64Hi()
	hi.Setup()
	if b.x64>>63 != 1 || b.y64>>63 != 1 {
		t.Error("high-half setup did not force the top operand bits")
	}
	hi.Run(1000)
}

func TestFinalByteFoldsAllBytes(t *testing.T) {
	b := &MulBench{x64: 0x0102030405060708}
	// 1^2^3^4^5^6^7^8
	if got := b.FinalByte(); got != 8 {
		t.Errorf("final byte = %d, want 8", got)
	}
	b = &MulBench{x64: 0xFF00000000000000}
	if got := b.FinalByte(); got != 0xFF {
		t.Errorf("final byte = %d, want 255", got)
	}
}
