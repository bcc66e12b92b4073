package rpl48

// A dirFrame is one level of the directory stack: a name (empty for the
// root HOME directory) and its variable bindings. Lookup searches
// outward from the current frame toward HOME, a depth-first walk
// purpose-built for a mutable variable namespace rather than slot-based
// method dispatch, since STO/PURGE mutate bindings in place far more
// often than a lookup needs to fall through to an enclosing scope.
type dirFrame struct {
	name     string
	bindings map[string]Handle
}

// Store writes or overwrites value under name in the current directory.
func (vm *VM) Store(name string, value Handle) {
	cur := vm.dirStack[len(vm.dirStack)-1]
	cur.bindings[name] = value
}

// Recall searches the local-variable frame stack (innermost first),
// then the directory stack from the current frame outward (current
// directory first, then each enclosing parent up to HOME) for name.
func (vm *VM) Recall(name string) (Handle, bool) {
	for i := len(vm.locals) - 1; i >= 0; i-- {
		if h, ok := vm.locals[i][name]; ok {
			return h, true
		}
	}
	for i := len(vm.dirStack) - 1; i >= 0; i-- {
		if h, ok := vm.dirStack[i].bindings[name]; ok {
			return h, true
		}
	}
	return HandleInvalid, false
}

// Purge removes name from the current directory only.
func (vm *VM) Purge(name string) bool {
	cur := vm.dirStack[len(vm.dirStack)-1]
	if _, ok := cur.bindings[name]; !ok {
		return false
	}
	delete(cur.bindings, name)
	return true
}

// CrDir creates and enters a new, empty child directory.
func (vm *VM) CrDir(name string) {
	vm.dirStack = append(vm.dirStack, &dirFrame{name: name, bindings: map[string]Handle{}})
}

// UpDir leaves the current directory, returning to its parent. Returns
// false if already at HOME.
func (vm *VM) UpDir() bool {
	if len(vm.dirStack) <= 1 {
		return false
	}
	vm.dirStack = vm.dirStack[:len(vm.dirStack)-1]
	return true
}

// VarNames returns the names bound in the current directory, for the
// VARS command.
func (vm *VM) VarNames() []string {
	cur := vm.dirStack[len(vm.dirStack)-1]
	names := make([]string, 0, len(cur.bindings))
	for n := range cur.bindings {
		names = append(names, n)
	}
	return names
}

func init() {
	registerCommand(TagCmdSTO, func(vm *VM) Status {
		name, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		value, st := vm.Pop()
		if st != StatusOK {
			vm.Push(name)
			return st
		}
		sym, ok := vm.nameArg(name)
		if !ok {
			vm.Push(value)
			vm.Push(name)
			return vm.Fail(ErrType, "STO expected a symbol name")
		}
		if sv, ok := settingsVars[sym]; ok {
			if st := sv.set(vm, value); st != StatusOK {
				vm.Push(value)
				vm.Push(name)
				return st
			}
			return StatusOK
		}
		vm.Store(sym, value)
		return StatusOK
	})
	registerCommand(TagCmdRCL, func(vm *VM) Status {
		name, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		sym, ok := vm.nameArg(name)
		if !ok {
			vm.Push(name)
			return vm.Fail(ErrType, "RCL expected a symbol name")
		}
		if sv, ok := settingsVars[sym]; ok {
			h, st := sv.get(vm)
			if st != StatusOK {
				vm.Push(name)
				return st
			}
			return vm.Push(h)
		}
		h, ok := vm.Recall(sym)
		if !ok {
			vm.Push(name)
			return vm.Fail(ErrUndefinedName, "undefined name %s", sym)
		}
		return vm.Push(h)
	})
	registerCommand(TagCmdPurge, func(vm *VM) Status {
		name, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		sym, ok := vm.nameArg(name)
		if !ok {
			vm.Push(name)
			return vm.Fail(ErrType, "PURGE expected a symbol name")
		}
		if _, ok := settingsVars[sym]; ok {
			vm.Push(name)
			return vm.Fail(ErrType, "cannot purge reserved setting name %s", sym)
		}
		vm.Purge(sym)
		return StatusOK
	})
	registerCommand(TagCmdVars, func(vm *VM) Status {
		var elems []Handle
		for _, n := range vm.VarNames() {
			sym, st := vm.NewSymbol(n)
			if st != StatusOK {
				return st
			}
			elems = append(elems, sym)
		}
		h, st := vm.newContainer(TagList, elems)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	})
	registerCommand(TagCmdCrdir, func(vm *VM) Status {
		name, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		sym, ok := vm.nameArg(name)
		if !ok {
			vm.Push(name)
			return vm.Fail(ErrType, "CRDIR expected a symbol name")
		}
		vm.CrDir(sym)
		return StatusOK
	})
	registerCommand(TagCmdUpdir, func(vm *VM) Status {
		if !vm.UpDir() {
			return vm.Fail(ErrInternal, "already at the top directory")
		}
		return StatusOK
	})
}
