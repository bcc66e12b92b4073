package rpl48

func init() {
	registerHandler(TagSymbol, &typeHandler{Eval: evalSymbol})
	registerHandler(TagProgram, &typeHandler{Eval: defaultEvalPushSelf, Exec: execProgram})
	registerHandler(TagEquation, &typeHandler{Eval: evalEquation})
}

// evalSymbol implements a bare symbol's EVAL: recall its bound value and
// evaluate that, the RPL convention that typing a variable name runs its
// contents rather than pushing the name itself (pushing the name is
// what the quote operator is for).
func evalSymbol(vm *VM, h Handle) Status {
	name, _ := vm.AsSymbol(h)
	if unique, ok := isPatternVar(name); ok {
		_ = unique
		return vm.Push(h)
	}
	v, ok := vm.Recall(name)
	if !ok {
		return vm.Push(h)
	}
	return vm.Eval(v)
}

// evalEquation pushes the equation itself. TagEquation has no Exec
// handler, so EVAL (vm.Exec) pushes an equation unchanged as well; only
// REWRITE/RULEAPPLY1 look inside the wrapped expression.
func evalEquation(vm *VM, h Handle) Status {
	return vm.Push(h)
}

// execProgram runs every element of a program body in sequence. A
// leading TagLocalsHeader element is consumed first: it pops one value
// per declared name off the value stack (in declaration order) into a
// fresh local-variable frame that shadows the directory stack for the
// remainder of the program, then is popped again when the program
// returns — whether normally or via StatusBreak/StatusHalt propagating
// out.
func execProgram(vm *VM, h Handle) Status {
	elems := vm.containerElems(h)
	if len(elems) > 0 && vm.TagOf(elems[0]) == TagLocalsHeader {
		names := vm.containerElems(elems[0])
		frame := make(map[string]Handle, len(names))
		for i := len(names) - 1; i >= 0; i-- {
			v, st := vm.Pop()
			if st != StatusOK {
				return st
			}
			name, _ := vm.AsSymbol(names[i])
			frame[name] = v
		}
		vm.pushLocals(frame)
		defer vm.popLocals()
		elems = elems[1:]
	}
	for _, e := range elems {
		if vm.Interrupted() {
			return vm.Fail(ErrInterrupted, "interrupted")
		}
		if st := vm.Exec(e); st != StatusOK {
			return st
		}
	}
	return StatusOK
}

// pushLocals and popLocals manage the local-variable frame stack that
// evalSymbol/Recall consult ahead of the directory stack, giving a
// program's -> bound names lexical priority over global variables of
// the same name without mutating the directory stack itself.
func (vm *VM) pushLocals(frame map[string]Handle) {
	vm.locals = append(vm.locals, frame)
}

func (vm *VM) popLocals() {
	vm.locals = vm.locals[:len(vm.locals)-1]
}

// EvalString parses src as a program and runs it against the VM's
// current stack and directory, clearing any previously recorded error
// first.
func (vm *VM) EvalString(src string) error {
	vm.ClearError()
	vm.ClearInterrupt()
	h, st := vm.ParseProgram(src)
	if st != StatusOK {
		return vm.LastError()
	}
	if st := vm.Exec(h); st != StatusOK && st != StatusBreak {
		if err := vm.LastError(); err != nil {
			return err
		}
	}
	return nil
}

// RenderTop renders the object on top of the value stack, or the empty
// string if the stack is empty.
func (vm *VM) RenderTop() string {
	h, st := vm.Peek(0)
	if st != StatusOK {
		return ""
	}
	return vm.Render(h)
}
