package rpl48

func init() {
	registerCommand(TagCmdDup, func(vm *VM) Status {
		h, st := vm.Peek(0)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	})
	registerCommand(TagCmdDrop, func(vm *VM) Status {
		_, st := vm.Pop()
		return st
	})
	registerCommand(TagCmdSwap, func(vm *VM) Status {
		b, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		a, st := vm.Pop()
		if st != StatusOK {
			vm.Push(b)
			return st
		}
		if st := vm.Push(b); st != StatusOK {
			return st
		}
		return vm.Push(a)
	})
	registerCommand(TagCmdEval, func(vm *VM) Status {
		h, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		return vm.Exec(h)
	})
}
