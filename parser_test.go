package rpl48

import "testing"

func TestParseErrorReportsSourceOffset(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	if err := vm.EvalString(" }"); err == nil {
		t.Fatal("EvalString(\" }\"): want a parse error, got nil")
	}
	rerr := vm.LastError()
	if rerr == nil {
		t.Fatal("LastError() = nil after a failed parse")
	}
	if rerr.Kind != ErrParse {
		t.Errorf("Kind = %v, want ErrParse", rerr.Kind)
	}
	if !rerr.HasPos || rerr.Pos != 1 {
		t.Errorf("HasPos, Pos = %v, %d, want true, 1", rerr.HasPos, rerr.Pos)
	}
}

func TestDoUntilRoundTripsThroughRenderAndReparse(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	h, st := vm.ParseProgram("DO 1 - UNTIL DUP END")
	if st != StatusOK {
		t.Fatalf("ParseProgram: status %v", st)
	}
	elems := vm.containerElems(h)
	if len(elems) != 1 {
		t.Fatalf("len(elems) = %d, want 1", len(elems))
	}
	rendered := vm.Render(elems[0])
	const want = "DO 1 - UNTIL DUP END"
	if rendered != want {
		t.Errorf("Render() = %q, want %q", rendered, want)
	}
	h2, st := vm.ParseProgram(rendered)
	if st != StatusOK {
		t.Fatalf("ParseProgram(%q): status %v", rendered, st)
	}
	if elems := vm.containerElems(h2); len(elems) != 1 || vm.Render(elems[0]) != want {
		t.Errorf("reparsing %q did not render back to %q", rendered, want)
	}
}

func TestForStepRoundTripsThroughRenderAndReparse(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	h, st := vm.ParseProgram("1 10 FOR i i STEP")
	if st != StatusOK {
		t.Fatalf("ParseProgram: status %v", st)
	}
	elems := vm.containerElems(h)
	if len(elems) != 3 { // 1, 10, the FOR...STEP loop object
		t.Fatalf("len(elems) = %d, want 3", len(elems))
	}
	rendered := vm.Render(elems[2])
	const want = "FOR i i STEP"
	if rendered != want {
		t.Errorf("Render() = %q, want %q", rendered, want)
	}
	h2, st := vm.ParseProgram(rendered)
	if st != StatusOK {
		t.Fatalf("ParseProgram(%q): status %v", rendered, st)
	}
	if elems := vm.containerElems(h2); len(elems) != 1 || vm.Render(elems[0]) != want {
		t.Errorf("reparsing %q did not render back to %q", rendered, want)
	}
}
