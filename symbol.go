package rpl48

import "golang.org/x/text/unicode/norm"

// Symbol objects hold an NFC-normalized UTF-8 name as their payload, so
// that two names differing only in combining-mark order compare equal
// byte-for-byte — directory lookups (directory.go) and rewrite pattern
// variables (rewrite.go) both rely on that.

// NewSymbol allocates a symbol object, normalizing name to NFC first.
func (vm *VM) NewSymbol(name string) (Handle, Status) {
	return vm.newLeaf(TagSymbol, []byte(norm.NFC.String(name)))
}

// AsSymbol returns the name of a symbol object.
func (vm *VM) AsSymbol(h Handle) (string, bool) {
	if vm.TagOf(h) != TagSymbol {
		return "", false
	}
	return string(vm.payload(h)), true
}

// nameArg extracts a name from h for commands that take a variable
// name argument (STO, RCL, PURGE, CRDIR): h may be a bare symbol or,
// since 'NAME' parses to an equation wrapping one, an equation whose
// wrapped object is a symbol.
func (vm *VM) nameArg(h Handle) (string, bool) {
	if vm.TagOf(h) == TagEquation {
		inner := Handle(getU32(vm.payload(h)[0:]))
		return vm.AsSymbol(inner)
	}
	return vm.AsSymbol(h)
}

// SymbolsEqual reports whether two symbol objects name the same binding.
func (vm *VM) SymbolsEqual(a, b Handle) bool {
	na, oka := vm.AsSymbol(a)
	nb, okb := vm.AsSymbol(b)
	return oka && okb && na == nb
}

// isPatternVar reports whether name is one of the eleven reserved
// rewrite pattern-variable names, and which flavor: integer-match
// variables {i,j,k,l,m,n,p,q} bind to any subterm; uniqueness-
// constrained variables {u,v,w} additionally must bind to pairwise
// distinct subterms within one rewrite application.
func isPatternVar(name string) (unique bool, ok bool) {
	if len(name) != 1 {
		return false, false
	}
	switch name[0] {
	case 'i', 'j', 'k', 'l', 'm', 'n', 'p', 'q':
		return false, true
	case 'u', 'v', 'w':
		return true, true
	default:
		return false, false
	}
}
