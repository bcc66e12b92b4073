package rpl48

// cmdToFrac implements →FRAC: replace the real number on top of the
// stack with the exact rational it denotes. Integers and fractions pass
// through unchanged; a decimal's mantissa and exponent already denote
// an exact multiple of a power of 1000, so the conversion is exact
// rather than a continued-fraction approximation.
func (vm *VM) cmdToFrac() Status {
	h, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	tag := vm.TagOf(h)
	switch {
	case tag.IsInteger(), tag.IsFraction():
		return vm.Push(h)
	case tag.IsDecimal():
		d, neg, _ := vm.AsDecimal(h)
		d = d.trim()
		if d.IsZero() {
			zero, st := vm.NewInteger(0)
			if st != StatusOK {
				return st
			}
			return vm.Push(zero)
		}
		mantissa := bignumFromDecimalDigits(kigitsToDigitString(d.Kigits))
		var numMag, denMag Bignum
		if d.Exp >= 0 {
			numMag = mantissa.Mul(bignumPow1000(d.Exp))
			denMag = bignumFromUint64(1)
		} else {
			numMag = mantissa
			denMag = bignumPow1000(-d.Exp)
		}
		fh, st := vm.NewFraction(numMag, neg, denMag, false)
		if st != StatusOK {
			return st
		}
		return vm.Push(fh)
	default:
		vm.Push(h)
		return vm.Fail(ErrType, "→FRAC expects a real number")
	}
}

// cmdToNum implements →NUM: widen an integer or fraction to a decimal
// at the active precision. A decimal operand passes through unchanged.
func (vm *VM) cmdToNum() Status {
	h, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	if vm.TagOf(h).IsDecimal() {
		return vm.Push(h)
	}
	d, neg, ok := vm.asDecimalAny(h)
	if !ok {
		vm.Push(h)
		return vm.Fail(ErrType, "→NUM expects a real number")
	}
	prec := (vm.settings.Precision + 2) / 3
	nh, st := vm.NewDecimal(d, neg, prec)
	if st != StatusOK {
		return st
	}
	return vm.Push(nh)
}

// bignumPow1000 computes 1000^n for n >= 0.
func bignumPow1000(n int) Bignum {
	r := bignumFromUint64(1)
	base := bignumFromUint64(1000)
	for i := 0; i < n; i++ {
		r = r.Mul(base)
	}
	return r
}
