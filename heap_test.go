package rpl48

import "testing"

// TestCollectReclaimsUnreachableObjects allocates a run of integers that
// nothing keeps live, then a few that are reachable through the value
// stack, a directory binding, and an explicit root, and checks that only
// the garbage shrinks the store.
func TestCollectReclaimsUnreachableObjects(t *testing.T) {
	vm := NewVM(DefaultHeapSize)

	for i := 0; i < 50; i++ {
		if _, st := vm.NewInteger(int64(i)); st != StatusOK {
			t.Fatalf("NewInteger(%d): status %v", i, st)
		}
	}
	usedBefore, _, _ := vm.HeapStats()

	stacked, st := vm.NewInteger(111)
	if st != StatusOK {
		t.Fatalf("NewInteger(stacked): status %v", st)
	}
	if st := vm.Push(stacked); st != StatusOK {
		t.Fatalf("Push(stacked): status %v", st)
	}

	bound, st := vm.NewInteger(222)
	if st != StatusOK {
		t.Fatalf("NewInteger(bound): status %v", st)
	}
	vm.Store("KEEP", bound)

	rooted, st := vm.NewInteger(333)
	if st != StatusOK {
		t.Fatalf("NewInteger(rooted): status %v", st)
	}
	unroot := vm.Root(&rooted)
	defer unroot()

	vm.Collect()

	usedAfter, _, _ := vm.HeapStats()
	if usedAfter >= usedBefore {
		t.Fatalf("HeapStats: used %d after collect, want less than %d before", usedAfter, usedBefore)
	}

	if vm.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", vm.Depth())
	}
	top, st := vm.Peek(0)
	if st != StatusOK {
		t.Fatalf("Peek(0): status %v", st)
	}
	if got, ok := vm.AsInteger(top); !ok || got != 111 {
		t.Errorf("Peek(0) = %d, ok %v, want 111, true", got, ok)
	}

	keep, ok := vm.Recall("KEEP")
	if !ok {
		t.Fatal("Recall(KEEP): not found after collect")
	}
	if got, ok := vm.AsInteger(keep); !ok || got != 222 {
		t.Errorf("Recall(KEEP) = %d, ok %v, want 222, true", got, ok)
	}

	if got, ok := vm.AsInteger(rooted); !ok || got != 333 {
		t.Errorf("rooted handle after collect = %d, ok %v, want 333, true", got, ok)
	}
}

// TestCollectIsANoopWhenEverythingIsLive checks that a heap with no
// garbage keeps its store size exactly, since compaction must not
// disturb objects it has no reason to move past their own slot.
func TestCollectIsANoopWhenEverythingIsLive(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	for i := 0; i < 5; i++ {
		h, st := vm.NewInteger(int64(i))
		if st != StatusOK {
			t.Fatalf("NewInteger(%d): status %v", i, st)
		}
		if st := vm.Push(h); st != StatusOK {
			t.Fatalf("Push(%d): status %v", i, st)
		}
	}
	before, _, _ := vm.HeapStats()
	vm.Collect()
	after, _, _ := vm.HeapStats()
	if after != before {
		t.Errorf("HeapStats used = %d after no-op collect, want %d", after, before)
	}
	for depth, want := range []int64{4, 3, 2, 1, 0} {
		h, st := vm.Peek(depth)
		if st != StatusOK {
			t.Fatalf("Peek(%d): status %v", depth, st)
		}
		if got, ok := vm.AsInteger(h); !ok || got != want {
			t.Errorf("Peek(%d) = %d, ok %v, want %d, true", depth, got, ok, want)
		}
	}
}
