package rpl48

import "testing"

func evalOrFatal(t *testing.T, vm *VM, src string) {
	t.Helper()
	if err := vm.EvalString(src); err != nil {
		t.Fatalf("EvalString(%q): %v", src, err)
	}
}

func TestAddIntegers(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	evalOrFatal(t, vm, "1 2 +")
	if got := vm.RenderTop(); got != "3" {
		t.Errorf("RenderTop() = %q, want %q", got, "3")
	}
	if d := vm.Depth(); d != 1 {
		t.Errorf("Depth() = %d, want 1", d)
	}
}

func TestMultiplyDecimals(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	evalOrFatal(t, vm, "1.2 3.4 *")
	if got := vm.RenderTop(); got != "4.08" {
		t.Errorf("RenderTop() = %q, want %q", got, "4.08")
	}
}

func TestForLoopBindsCounterEachIteration(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	evalOrFatal(t, vm, "1 10 FOR i i NEXT")
	if d := vm.Depth(); d != 10 {
		t.Fatalf("Depth() = %d, want 10", d)
	}
	for depth := 0; depth < 10; depth++ {
		h, st := vm.Peek(depth)
		if st != StatusOK {
			t.Fatalf("Peek(%d): status %v", depth, st)
		}
		want := 10 - depth
		if got, _ := vm.AsInteger(h); got != int64(want) {
			t.Errorf("Peek(%d) = %d, want %d", depth, got, want)
		}
	}
}

func TestDoUntilRunsBodyAtLeastTwice(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	// Each pass decrements the counter, then re-pushes it as the loop
	// condition: the first pass lands on exactly 0 (falsy, keep going),
	// the second lands on -1 (truthy, stop) — two iterations guaranteed
	// without any comparison operator.
	evalOrFatal(t, vm, "1 DO 1 - DUP UNTIL END")
	if got := vm.RenderTop(); got != "-1" {
		t.Errorf("RenderTop() = %q, want %q", got, "-1")
	}
	if d := vm.Depth(); d != 1 {
		t.Errorf("Depth() = %d, want 1", d)
	}
}

func TestStoreAndRecall(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	evalOrFatal(t, vm, "« 'N' STO N 2 * » 5 SWAP EVAL")
	if got := vm.RenderTop(); got != "10" {
		t.Errorf("RenderTop() = %q, want %q", got, "10")
	}
	evalOrFatal(t, vm, "'N' RCL")
	if got := vm.RenderTop(); got != "5" {
		t.Errorf("RenderTop() = %q, want %q", got, "5")
	}
}

func TestBreakExitsCountedLoopEarly(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	evalOrFatal(t, vm, "100 « 1 BREAK » DOTIMES")
	if got := vm.RenderTop(); got != "1" {
		t.Errorf("RenderTop() = %q, want %q", got, "1")
	}
	if d := vm.Depth(); d != 1 {
		t.Errorf("Depth() = %d, want 1 (loop stopped after one iteration)", d)
	}
}
