package rpl48

import "github.com/zephyrtronium/contains"

func init() {
	registerCommand(TagCmdRuleApply1, func(vm *VM) Status {
		rule, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		expr, st := vm.Pop()
		if st != StatusOK {
			vm.Push(rule)
			return st
		}
		pattern, replacement, ok := vm.ruleParts(rule)
		if !ok {
			vm.Push(expr)
			vm.Push(rule)
			return vm.Fail(ErrType, "RULEAPPLY1 expected a rule of the form '{ pattern replacement }'")
		}
		result, applied, st := vm.ruleApply1(expr, pattern, replacement)
		if st != StatusOK {
			return st
		}
		if st := vm.Push(result); st != StatusOK {
			return st
		}
		flag, st := vm.NewInteger(boolToInt64(applied))
		if st != StatusOK {
			return st
		}
		return vm.Push(flag)
	})

	registerCommand(TagCmdRewrite, func(vm *VM) Status {
		rule, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		expr, st := vm.Pop()
		if st != StatusOK {
			vm.Push(rule)
			return st
		}
		pattern, replacement, ok := vm.ruleParts(rule)
		if !ok {
			vm.Push(expr)
			vm.Push(rule)
			return vm.Fail(ErrType, "REWRITE expected a rule of the form '{ pattern replacement }'")
		}
		const maxRounds = 10000
		for i := 0; i < maxRounds; i++ {
			next, did, st := vm.ruleApply1(expr, pattern, replacement)
			if st != StatusOK {
				return st
			}
			if !did {
				break
			}
			expr = next
		}
		return vm.Push(expr)
	})
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// ruleParts decodes a rule object, an equation wrapping a two-element
// list: '{ pattern replacement }'.
func (vm *VM) ruleParts(rule Handle) (pattern, replacement Handle, ok bool) {
	if vm.TagOf(rule) != TagEquation {
		return 0, 0, false
	}
	inner := Handle(getU32(vm.payload(rule)[0:]))
	if vm.TagOf(inner) != TagList {
		return 0, 0, false
	}
	elems := vm.containerElems(inner)
	if len(elems) != 2 {
		return 0, 0, false
	}
	return elems[0], elems[1], true
}

// ruleApply1 finds the first subterm of expr (pre-order, root first)
// that pattern matches and replaces it with replacement's pattern
// variables substituted by their bindings. It applies at most one
// rewrite; REWRITE above calls it repeatedly until no rule applies.
func (vm *VM) ruleApply1(expr, pattern, replacement Handle) (result Handle, applied bool, status Status) {
	bindings := map[string]Handle{}
	unique := &contains.Set{}
	if vm.matchPattern(pattern, expr, bindings, unique) {
		h, st := vm.substitute(replacement, bindings)
		return h, true, st
	}
	kids := vm.children(expr)
	if len(kids) == 0 {
		return expr, false, StatusOK
	}
	newKids := make([]Handle, len(kids))
	copy(newKids, kids)
	for i, k := range kids {
		nk, did, st := vm.ruleApply1(k, pattern, replacement)
		if st != StatusOK {
			return HandleInvalid, false, st
		}
		if did {
			newKids[i] = nk
			h, st := vm.rebuild(expr, newKids)
			return h, true, st
		}
	}
	return expr, false, StatusOK
}

// matchPattern attempts to match pattern against expr, extending
// bindings for integer-match pattern variables ({i,j,k,l,m,n,p,q}) and
// enforcing pairwise distinctness for uniqueness-constrained ones
// ({u,v,w}) via the same Set type the collector uses for its mark set.
func (vm *VM) matchPattern(pattern, expr Handle, bindings map[string]Handle, unique *contains.Set) bool {
	if vm.TagOf(pattern) == TagSymbol {
		name, _ := vm.AsSymbol(pattern)
		if isUnique, ok := isPatternVar(name); ok {
			if bound, seen := bindings[name]; seen {
				return vm.objectsEqual(bound, expr)
			}
			if isUnique {
				if unique.Contains(uintptr(expr)) {
					return false
				}
				unique.Add(uintptr(expr))
			}
			bindings[name] = expr
			return true
		}
	}
	if vm.TagOf(pattern) != vm.TagOf(expr) {
		return false
	}
	pk, ek := vm.children(pattern), vm.children(expr)
	if len(pk) == 0 && len(ek) == 0 {
		return vm.objectsEqual(pattern, expr)
	}
	if len(pk) != len(ek) {
		return false
	}
	for i := range pk {
		if !vm.matchPattern(pk[i], ek[i], bindings, unique) {
			return false
		}
	}
	return true
}

// substitute rebuilds replacement with every pattern-variable symbol
// replaced by its bound subterm.
func (vm *VM) substitute(replacement Handle, bindings map[string]Handle) (Handle, Status) {
	if vm.TagOf(replacement) == TagSymbol {
		name, _ := vm.AsSymbol(replacement)
		if _, ok := isPatternVar(name); ok {
			if bound, seen := bindings[name]; seen {
				return bound, StatusOK
			}
		}
		return replacement, StatusOK
	}
	kids := vm.children(replacement)
	if len(kids) == 0 {
		return replacement, StatusOK
	}
	newKids := make([]Handle, len(kids))
	for i, k := range kids {
		nk, st := vm.substitute(k, bindings)
		if st != StatusOK {
			return HandleInvalid, st
		}
		newKids[i] = nk
	}
	return vm.rebuild(replacement, newKids)
}

// objectsEqual reports structural equality of two leaf or compound
// objects by comparing their rendered text — simple and total over
// every tag, at the cost of conflating distinct representations of the
// same mathematical value (2 and 2.0 render differently and so compare
// unequal, which matches a pattern matcher operating on syntax rather
// than on value).
func (vm *VM) objectsEqual(a, b Handle) bool {
	return vm.Render(a) == vm.Render(b)
}

// rebuild reconstructs a compound object of template's tag with newKids
// as its children, used when substitution or rule application changes
// a subterm and the enclosing container must be recreated (objects are
// immutable once sealed).
func (vm *VM) rebuild(template Handle, newKids []Handle) (Handle, Status) {
	tag := vm.TagOf(template)
	switch {
	case tag.IsComplex():
		var payload [8]byte
		putU32(payload[0:], uint32(newKids[0]))
		putU32(payload[4:], uint32(newKids[1]))
		return vm.newLeaf(tag, payload[:])
	case tag.IsFraction():
		return vm.newFractionHandles(newKids[0], newKids[1])
	case tag == TagEquation:
		var payload [4]byte
		putU32(payload[:], uint32(newKids[0]))
		return vm.newLeaf(tag, payload[:])
	default:
		return vm.newContainer(tag, newKids)
	}
}
