package rpl48

func init() {
	registerHandler(TagLoopDoUntil, &typeHandler{Eval: defaultEvalPushSelf, Exec: execDoUntil})
	registerHandler(TagLoopWhileRepeat, &typeHandler{Eval: defaultEvalPushSelf, Exec: execWhileRepeat})
	registerHandler(TagLoopStartNext, &typeHandler{Eval: defaultEvalPushSelf, Exec: execStartNext})
	registerHandler(TagLoopStartStep, &typeHandler{Eval: defaultEvalPushSelf, Exec: execStartStep})
	registerHandler(TagLoopForNext, &typeHandler{Eval: defaultEvalPushSelf, Exec: execForNext})
	registerHandler(TagLoopForStep, &typeHandler{Eval: defaultEvalPushSelf, Exec: execForStep})

	registerCommand(TagCmdIfte, func(vm *VM) Status {
		elseBranch, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		thenBranch, st := vm.Pop()
		if st != StatusOK {
			vm.Push(elseBranch)
			return st
		}
		cond, st := vm.Pop()
		if st != StatusOK {
			vm.Push(thenBranch)
			vm.Push(elseBranch)
			return st
		}
		truthy, st := vm.truthy(cond)
		if st != StatusOK {
			return st
		}
		if truthy {
			return vm.Exec(thenBranch)
		}
		return vm.Exec(elseBranch)
	})

	// DOTIMES ( n body -- ): runs body n times, stopping early if body
	// executes BREAK. Its "run body, switch on its Status" step is
	// runLoopBody in control.go; the structured loop objects below
	// switch on their body's Status inline.
	registerCommand(TagCmdDotimes, func(vm *VM) Status {
		body, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		n, st := vm.Pop()
		if st != StatusOK {
			vm.Push(body)
			return st
		}
		count, ok := vm.AsInteger(n)
		if !ok {
			vm.Push(n)
			vm.Push(body)
			return vm.Fail(ErrType, "DOTIMES expected an integer count")
		}
		for i := int64(0); i < count; i++ {
			brk, st := runLoopBody(vm, body)
			if st != StatusOK {
				return st
			}
			if brk {
				break
			}
		}
		return StatusOK
	})

	registerCommand(TagCmdBreak, func(vm *VM) Status { return StatusBreak })
}

// truthy interprets a real number as a boolean: zero is false, anything
// else is true, the RPL convention (there is no dedicated boolean tag).
func (vm *VM) truthy(h Handle) (bool, Status) {
	switch {
	case vm.TagOf(h).IsInteger():
		mag, _, _ := vm.AsBignum(h)
		return !mag.IsZero(), StatusOK
	case vm.TagOf(h).IsFraction():
		f, _ := vm.AsFraction(h)
		mag, _, _ := vm.AsBignum(f.Num)
		return !mag.IsZero(), StatusOK
	case vm.TagOf(h).IsDecimal():
		d, _, _ := vm.AsDecimal(h)
		return !d.IsZero(), StatusOK
	default:
		return false, vm.Fail(ErrType, "expected a real number as a condition")
	}
}

// execDoUntil implements DO body UNTIL cond END: run body, evaluate
// cond, pop a truth value, exit on true.
func execDoUntil(vm *VM, h Handle) Status {
	elems := vm.containerElems(h)
	body, cond := elems[0], elems[1]
	for {
		if vm.Interrupted() {
			return vm.Fail(ErrInterrupted, "interrupted")
		}
		switch st := vm.Exec(body); st {
		case StatusOK:
		case StatusBreak:
			return StatusOK
		default:
			return st
		}
		if st := vm.Exec(cond); st != StatusOK {
			return st
		}
		v, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		truthy, st := vm.truthy(v)
		if st != StatusOK {
			return st
		}
		if truthy {
			return StatusOK
		}
	}
}

// execWhileRepeat implements WHILE cond REPEAT body END: evaluate cond,
// exit on false, else run body, loop.
func execWhileRepeat(vm *VM, h Handle) Status {
	elems := vm.containerElems(h)
	cond, body := elems[0], elems[1]
	for {
		if vm.Interrupted() {
			return vm.Fail(ErrInterrupted, "interrupted")
		}
		if st := vm.Exec(cond); st != StatusOK {
			return st
		}
		v, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		truthy, st := vm.truthy(v)
		if st != StatusOK {
			return st
		}
		if !truthy {
			return StatusOK
		}
		switch st := vm.Exec(body); st {
		case StatusOK:
		case StatusBreak:
			return StatusOK
		default:
			return st
		}
	}
}

func execStartNext(vm *VM, h Handle) Status {
	body := vm.containerElems(h)[0]
	return vm.runCountedLoop(body, "", false)
}

func execStartStep(vm *VM, h Handle) Status {
	body := vm.containerElems(h)[0]
	return vm.runCountedLoop(body, "", true)
}

func execForNext(vm *VM, h Handle) Status {
	elems := vm.containerElems(h)
	name, _ := vm.AsSymbol(elems[0])
	return vm.runCountedLoop(elems[1], name, false)
}

func execForStep(vm *VM, h Handle) Status {
	elems := vm.containerElems(h)
	name, _ := vm.AsSymbol(elems[0])
	return vm.runCountedLoop(elems[1], name, true)
}

// runCountedLoop implements the shared machinery behind START…NEXT/STEP
// and FOR…NEXT/STEP: pop start and finish off the value stack, then run
// body once per step from start to finish inclusive. name, when
// non-empty, binds the current counter to a fresh local-variable frame
// each iteration (the FOR form); useStep, when true, pops an algebraic
// step value off the stack after each body execution instead of always
// stepping by one (the STEP form). A pure-integer start/finish/step
// runs the machine-word fast path; anything else (including a STEP
// popped as a decimal) runs the decimal path for the remainder of that
// loop, deciding the numeric domain once a non-integer value is first
// seen rather than re-deciding every iteration — a simplification noted
// in the grounding notes alongside the true HP behavior of transitioning
// mid-loop the instant any operand stops being representable as a
// machine integer.
func (vm *VM) runCountedLoop(body Handle, name string, useStep bool) Status {
	finish, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	start, st := vm.Pop()
	if st != StatusOK {
		vm.Push(finish)
		return st
	}
	if si, ok := vm.AsInteger(start); ok {
		if fi, ok := vm.AsInteger(finish); ok {
			return vm.runCountedLoopInt(si, fi, name, useStep, body)
		}
	}
	sd, sNeg, ok1 := vm.asDecimalAny(start)
	fd, fNeg, ok2 := vm.asDecimalAny(finish)
	if !ok1 || !ok2 {
		return vm.Fail(ErrType, "loop bounds must be real numbers")
	}
	return vm.runCountedLoopDecimal(sd, sNeg, fd, fNeg, name, useStep, body)
}

func (vm *VM) runCountedLoopInt(counter, finish int64, name string, useStep bool, body Handle) Status {
	step := int64(1)
	for {
		if (step > 0 && counter > finish) || (step < 0 && counter < finish) {
			return StatusOK
		}
		if vm.Interrupted() {
			return vm.Fail(ErrInterrupted, "interrupted")
		}
		if name != "" {
			ch, st := vm.NewInteger(counter)
			if st != StatusOK {
				return st
			}
			vm.pushLocals(map[string]Handle{name: ch})
		}
		st := vm.Exec(body)
		if name != "" {
			vm.popLocals()
		}
		if st == StatusBreak {
			return StatusOK
		}
		if st != StatusOK {
			return st
		}
		if useStep {
			sh, st := vm.Pop()
			if st != StatusOK {
				return st
			}
			if sv, ok := vm.AsInteger(sh); ok {
				step = sv
				counter += step
				continue
			}
			sd, sNeg, ok := vm.asDecimalAny(sh)
			if !ok {
				return vm.Fail(ErrType, "loop step must be a real number")
			}
			cd := decimalFromUint64(uint64(counter))
			cNeg := counter < 0
			if cNeg {
				cd = decimalFromUint64(uint64(-counter))
			}
			fd := decimalFromUint64(uint64(finish))
			fNeg := finish < 0
			if fNeg {
				fd = decimalFromUint64(uint64(-finish))
			}
			return vm.runCountedLoopDecimalContinue(cd, cNeg, sd, sNeg, fd, fNeg, name, body)
		}
		counter += step
	}
}

func (vm *VM) runCountedLoopDecimal(counter Decimal, counterNeg bool, finish Decimal, finishNeg bool, name string, useStep bool, body Handle) Status {
	one := decimalFromUint64(1)
	if !useStep {
		return vm.runCountedLoopDecimalFixedStep(counter, counterNeg, one, false, finish, finishNeg, name, body)
	}
	return vm.runCountedLoopDecimalContinue(counter, counterNeg, Decimal{}, false, finish, finishNeg, name, body)
}

// runCountedLoopDecimalFixedStep runs the decimal-domain counted loop
// when the step never needs to be re-read from the stack (the plain
// NEXT form with a non-integer start/finish).
func (vm *VM) runCountedLoopDecimalFixedStep(counter Decimal, counterNeg bool, step Decimal, stepNeg bool, finish Decimal, finishNeg bool, name string, body Handle) Status {
	for {
		if !decimalLoopInRange(counter, counterNeg, step, stepNeg, finish, finishNeg) {
			return StatusOK
		}
		if vm.Interrupted() {
			return vm.Fail(ErrInterrupted, "interrupted")
		}
		if name != "" {
			ch, st := vm.NewDecimal(counter, counterNeg, 0)
			if st != StatusOK {
				return st
			}
			vm.pushLocals(map[string]Handle{name: ch})
		}
		st := vm.Exec(body)
		if name != "" {
			vm.popLocals()
		}
		if st == StatusBreak {
			return StatusOK
		}
		if st != StatusOK {
			return st
		}
		var st2 Status
		counter, counterNeg, st2 = vm.decimalStepOnce(counter, counterNeg, step, stepNeg)
		if st2 != StatusOK {
			return st2
		}
	}
}

// runCountedLoopDecimalContinue runs (or resumes) the decimal-domain
// counted loop for the STEP form, reading a fresh step value off the
// stack after every iteration.
func (vm *VM) runCountedLoopDecimalContinue(counter Decimal, counterNeg bool, firstStep Decimal, firstStepNeg bool, finish Decimal, finishNeg bool, name string, body Handle) Status {
	haveStep := !firstStep.IsZero() || firstStepNeg
	step, stepNeg := firstStep, firstStepNeg
	if !haveStep {
		step, stepNeg = decimalFromUint64(1), false
	}
	first := true
	for {
		if !first || haveStep {
			if !decimalLoopInRange(counter, counterNeg, step, stepNeg, finish, finishNeg) {
				return StatusOK
			}
		}
		first = false
		if vm.Interrupted() {
			return vm.Fail(ErrInterrupted, "interrupted")
		}
		if name != "" {
			ch, st := vm.NewDecimal(counter, counterNeg, 0)
			if st != StatusOK {
				return st
			}
			vm.pushLocals(map[string]Handle{name: ch})
		}
		st := vm.Exec(body)
		if name != "" {
			vm.popLocals()
		}
		if st == StatusBreak {
			return StatusOK
		}
		if st != StatusOK {
			return st
		}
		sh, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		sd, sNeg, ok := vm.asDecimalAny(sh)
		if !ok {
			return vm.Fail(ErrType, "loop step must be a real number")
		}
		step, stepNeg = sd, sNeg
		haveStep = true
		var st2 Status
		counter, counterNeg, st2 = vm.decimalStepOnce(counter, counterNeg, step, stepNeg)
		if st2 != StatusOK {
			return st2
		}
	}
}

func (vm *VM) decimalStepOnce(counter Decimal, counterNeg bool, step Decimal, stepNeg bool) (Decimal, bool, Status) {
	if counterNeg == stepNeg {
		return decimalAddMag(counter, step), counterNeg, StatusOK
	}
	if decimalCmpMag(counter, step) >= 0 {
		return decimalSubMag(counter, step), counterNeg, StatusOK
	}
	return decimalSubMag(step, counter), stepNeg, StatusOK
}

// decimalLoopInRange reports whether a counted loop with the given
// signed step should still run at counter: ascending steps terminate
// once counter exceeds finish, descending steps once counter drops
// below it.
func decimalLoopInRange(counter Decimal, counterNeg bool, step Decimal, stepNeg bool, finish Decimal, finishNeg bool) bool {
	cmp := signedDecimalCmp(counter, counterNeg, finish, finishNeg)
	if !stepNeg {
		return cmp <= 0
	}
	return cmp >= 0
}

// signedDecimalCmp compares two signed decimal magnitudes: -1, 0, 1.
func signedDecimalCmp(a Decimal, aNeg bool, b Decimal, bNeg bool) int {
	if a.IsZero() {
		aNeg = false
	}
	if b.IsZero() {
		bNeg = false
	}
	if aNeg != bNeg {
		if aNeg {
			return -1
		}
		return 1
	}
	c := decimalCmpMag(a, b)
	if aNeg {
		return -c
	}
	return c
}
