package rpl48

// Every object in the arena has the same header shape: a VLI-encoded
// tag, a VLI-encoded payload length, then that many payload bytes. This
// is what makes sizeByPayloadShape total over every tag without a
// per-type table, and what makes GetVLI/PutVLI the only encoding this
// package ever needs for structural metadata.

// header reads the tag, payload length, and payload start offset for the
// object at h.
func (vm *VM) header(h Handle) (tag Tag, payloadLen, payloadStart int) {
	mem := vm.heap.mem
	t, tn := GetVLI(mem[h:])
	n, ln := GetVLI(mem[int(h)+tn:])
	return Tag(t), int(n), int(h) + tn + ln
}

// sizeByPayloadShape is the generic SIZE opcode fallback: total object
// size is header size plus payload length, true for every tag because
// every object shares the same header shape.
func sizeByPayloadShape(vm *VM, h Handle) int {
	_, plen, pstart := vm.header(h)
	return pstart - int(h) + plen
}

// payload returns the payload bytes of the object at h. The slice
// aliases the heap and is invalidated by any subsequent allocation or
// collection.
func (vm *VM) payload(h Handle) []byte {
	_, plen, pstart := vm.header(h)
	return vm.heap.mem[pstart : pstart+plen]
}

// newLeaf allocates a leaf object (no child handles) with the given tag
// and payload, running a collection and retrying once if the arena is
// full. Returns StatusError with ErrOutOfMemory set if the retry also
// fails.
func (vm *VM) newLeaf(tag Tag, payload []byte) (Handle, Status) {
	h, ok := vm.tryAlloc(tag, payload)
	if ok {
		return h, StatusOK
	}
	vm.Collect()
	h, ok = vm.tryAlloc(tag, payload)
	if !ok {
		return HandleInvalid, vm.Fail(ErrOutOfMemory, "arena exhausted allocating %d bytes", len(payload))
	}
	return h, StatusOK
}

func (vm *VM) tryAlloc(tag Tag, payload []byte) (Handle, bool) {
	var header []byte
	header = PutVLI(header, uint64(tag))
	header = PutVLI(header, uint64(len(payload)))
	n := len(header) + len(payload)
	h, ok := vm.heap.Alloc(n)
	if !ok {
		return HandleInvalid, false
	}
	buf := vm.heap.mem[h:]
	copy(buf, header)
	copy(buf[len(header):], payload)
	return h, true
}

// newContainer allocates an object whose payload is a VLI element count
// followed by that many 4-byte handle fields, the layout shared by
// lists, vectors, matrices, programs, blocks, and locals headers.
func (vm *VM) newContainer(tag Tag, elems []Handle) (Handle, Status) {
	var payload []byte
	payload = PutVLI(payload, uint64(len(elems)))
	for _, e := range elems {
		var b [4]byte
		putU32(b[:], uint32(e))
		payload = append(payload, b[:]...)
	}
	return vm.newLeaf(tag, payload)
}

// containerElems decodes the count-prefixed handle array a newContainer
// payload holds.
func (vm *VM) containerElems(h Handle) []Handle {
	p := vm.payload(h)
	n, off := GetVLI(p)
	elems := make([]Handle, 0, n)
	for i := uint64(0); i < n; i++ {
		elems = append(elems, Handle(getU32(p[off:])))
		off += 4
	}
	return elems
}

// children returns every handle nested directly inside the object at h,
// for the garbage collector's mark phase and for generic tree walks
// (rewrite.go's pattern matcher, in particular). Leaf numeric and text
// types return nil.
func (vm *VM) children(h Handle) []Handle {
	tag := vm.TagOf(h)
	switch {
	case tag.IsComplex(), tag.IsFraction():
		p := vm.payload(h)
		return []Handle{Handle(getU32(p[0:])), Handle(getU32(p[4:]))}
	case tag == TagEquation:
		p := vm.payload(h)
		return []Handle{Handle(getU32(p[0:]))}
	case tag == TagList, tag == TagVector, tag == TagMatrix,
		tag == TagProgram, tag == TagBlock, tag == TagLocalsHeader,
		tag == TagDirectory,
		tag == TagLoopDoUntil, tag == TagLoopWhileRepeat,
		tag == TagLoopStartNext, tag == TagLoopStartStep,
		tag == TagLoopForNext, tag == TagLoopForStep:
		return vm.containerElems(h)
	default:
		return nil
	}
}

// Command returns the shared singleton handle for a command tag,
// allocating it on first use. Commands carry no payload, so one instance
// per tag suffices for the whole VM's lifetime.
func (vm *VM) Command(tag Tag) Handle {
	if h := vm.commands[tag]; h.IsValid() {
		return h
	}
	h, st := vm.newLeaf(tag, nil)
	if st != StatusOK {
		panic("rpl48: failed to allocate command singleton for " + tag.String())
	}
	vm.commands[tag] = h
	return h
}

// retagInPlace rewrites h's tag in place, used only by the parser to
// annotate an already-allocated plain integer with the radix it was
// written in (#1Fh vs #37d vs a bare literal never needs this). Both
// tags must have the same VLI width or this corrupts the arena; callers
// only ever retag among the single-byte command/integer tag range.
func (vm *VM) retagInPlace(h Handle, tag Tag) {
	old := vm.TagOf(h)
	if SizeVLI(uint64(old)) != SizeVLI(uint64(tag)) {
		panic("rpl48: retagInPlace tag width mismatch")
	}
	PutVLI(vm.heap.mem[h:h], uint64(tag))
}

// Depth returns the number of objects on the value stack.
func (vm *VM) Depth() int { return vm.heap.valueDepth() }

// Push places h on top of the value stack, collecting and retrying once
// if the stacks have collided with the store.
func (vm *VM) Push(h Handle) Status {
	if vm.heap.pushValue(h) {
		return StatusOK
	}
	vm.Collect()
	if vm.heap.pushValue(h) {
		return StatusOK
	}
	return vm.Fail(ErrOutOfMemory, "value stack exhausted")
}

// Pop removes and returns the top of the value stack.
func (vm *VM) Pop() (Handle, Status) {
	h, ok := vm.heap.popValue()
	if !ok {
		return HandleInvalid, vm.Fail(ErrNotEnoughArguments, "empty stack")
	}
	return h, StatusOK
}

// Peek returns the handle at 0-based depth from the top of the value
// stack without popping it.
func (vm *VM) Peek(depth int) (Handle, Status) {
	h, ok := vm.heap.valueAt(depth)
	if !ok {
		return HandleInvalid, vm.Fail(ErrNotEnoughArguments, "stack has fewer than %d objects", depth+1)
	}
	return h, StatusOK
}

// commandTable is the dispatch target of execHandle for every TagCmd*
// tag; populated by each arithmetic/stack/directory file's init function
// via registerCommand.
var commandTable [tagCount]func(vm *VM) Status

// registerCommand installs fn as the implementation of a command tag.
func registerCommand(tag Tag, fn func(vm *VM) Status) {
	if commandTable[tag] != nil {
		panic("rpl48: duplicate command registration for tag " + tag.String())
	}
	commandTable[tag] = fn
}

// execHandle runs a command object through its commandTable entry, and
// fails with ErrInternal when the tag has no registered implementation.
// This is the EVAL-opcode default for command tags installed in
// dispatch.go's commandDefaultHandler.
func (vm *VM) execHandle(h Handle) Status {
	tag := vm.TagOf(h)
	if fn := commandTable[tag]; fn != nil {
		return fn(vm)
	}
	return vm.Fail(ErrInternal, "no implementation registered for command %s", tag)
}
