package rpl48

func init() {
	registerCommand(TagCmdAdd, func(vm *VM) Status { return vm.binaryArith(decimalAddMag, bignumAddSigned, false) })
	registerCommand(TagCmdSub, func(vm *VM) Status { return vm.binaryArith(decimalSubMagSigned, bignumSubSigned, true) })
	registerCommand(TagCmdMul, func(vm *VM) Status { return vm.binaryArith(nil, nil, false) })
	registerCommand(TagCmdDiv, func(vm *VM) Status { return vm.cmdDiv() })
	registerCommand(TagCmdNeg, func(vm *VM) Status { return vm.cmdNeg() })
	registerCommand(TagCmdInv, func(vm *VM) Status { return vm.cmdInv() })
	registerCommand(TagCmdSqrt, func(vm *VM) Status { return vm.cmdSqrt() })
}

// numKind classifies an operand for arithmetic promotion: the widest
// kind between two operands decides which representation the result is
// computed in (integer arithmetic stays exact; anything touching a
// decimal produces a decimal; a fraction paired with an integer stays
// exact).
type numKind int

const (
	kindInteger numKind = iota
	kindFraction
	kindDecimal
	kindNone
)

func (vm *VM) kindOf(h Handle) numKind {
	tag := vm.TagOf(h)
	switch {
	case tag.IsInteger():
		return kindInteger
	case tag.IsFraction():
		return kindFraction
	case tag.IsDecimal():
		return kindDecimal
	default:
		return kindNone
	}
}

// asDecimalAny widens any real operand to a Decimal.
func (vm *VM) asDecimalAny(h Handle) (Decimal, bool, bool) {
	switch vm.kindOf(h) {
	case kindInteger:
		mag, neg, _ := vm.AsBignum(h)
		return decimalFromBignum(mag), neg, true
	case kindFraction:
		f, _ := vm.AsFraction(h)
		numMag, numNeg, _ := vm.AsBignum(f.Num)
		denMag, _, _ := vm.AsBignum(f.Den)
		q, ok := decimalDiv(decimalFromBignum(numMag), decimalFromBignum(denMag), DefaultPrecisionKigits)
		return q, numNeg, ok
	case kindDecimal:
		d, neg, _ := vm.AsDecimal(h)
		return d, neg, true
	default:
		return Decimal{}, false, false
	}
}

func decimalFromBignum(b Bignum) Decimal {
	return decimalFromUint64Bignum(b)
}

func decimalFromUint64Bignum(b Bignum) Decimal {
	if small, ok := bignumToUint64(b); ok {
		return decimalFromUint64(small)
	}
	// A bignum too large for a uint64: render through its decimal string
	// and reparse as kigits. Rare (integers beyond ~1e19), but keeps
	// mixed integer/decimal arithmetic total.
	digits := b.String()
	return decimalFromDigitString(digits)
}

func decimalFromDigitString(digits string) Decimal {
	n := len(digits)
	pad := (3 - n%3) % 3
	padded := make([]byte, pad, n+pad)
	for i := range padded {
		padded[i] = '0'
	}
	padded = append(padded, digits...)
	kigits := make([]uint16, len(padded)/3)
	for i := range kigits {
		v := (uint16(padded[i*3]-'0') * 100) + (uint16(padded[i*3+1]-'0') * 10) + uint16(padded[i*3+2]-'0')
		kigits[i] = v
	}
	return Decimal{Kigits: kigits, Exp: 0}.trim()
}

// binaryArith implements +/- with full type promotion. intOp computes
// the result when both operands are integers; sub selects subtraction
// for fraction and decimal operands. Passing nil for both decMagOp and
// intOp selects multiplication instead, since + and - share this
// promotion ladder with * except for the innermost magnitude operation.
// This keeps the promotion logic — far larger than any single operator
// body — written once.
func (vm *VM) binaryArith(decMagOp func(a, b Decimal) Decimal, intOp func(vm *VM, aMag Bignum, aNeg bool, bMag Bignum, bNeg bool) (Handle, Status), sub bool) Status {
	b, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	a, st := vm.Pop()
	if st != StatusOK {
		vm.Push(b)
		return st
	}
	if decMagOp == nil && intOp == nil {
		return vm.mulPromoted(a, b)
	}
	kind := vm.widestKind(a, b)
	switch kind {
	case kindInteger:
		aMag, aNeg, _ := vm.AsBignum(a)
		bMag, bNeg, _ := vm.AsBignum(b)
		h, st := intOp(vm, aMag, aNeg, bMag, bNeg)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	case kindFraction:
		return vm.addSubFraction(a, b, sub)
	case kindDecimal:
		ad, aNeg, ok1 := vm.asDecimalAny(a)
		bd, bNeg, ok2 := vm.asDecimalAny(b)
		if !ok1 || !ok2 {
			return vm.Fail(ErrType, "expected real numbers")
		}
		if sub {
			bNeg = !bNeg
		}
		h, st := vm.decimalAddSub(ad, aNeg, bd, bNeg)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	default:
		return vm.Fail(ErrType, "expected real numbers")
	}
}

func (vm *VM) widestKind(a, b Handle) numKind {
	ka, kb := vm.kindOf(a), vm.kindOf(b)
	if ka == kindNone || kb == kindNone {
		return kindNone
	}
	if ka > kb {
		return ka
	}
	return kb
}

func decimalSubMagSigned(a, b Decimal) Decimal { return decimalSubMag(a, b) }

func bignumAddSigned(vm *VM, aMag Bignum, aNeg bool, bMag Bignum, bNeg bool) (Handle, Status) {
	if aNeg == bNeg {
		return vm.NewIntegerFromBignum(aMag.Add(bMag), aNeg)
	}
	if aMag.Cmp(bMag) >= 0 {
		return vm.NewIntegerFromBignum(aMag.Sub(bMag), aNeg)
	}
	return vm.NewIntegerFromBignum(bMag.Sub(aMag), bNeg)
}

func bignumSubSigned(vm *VM, aMag Bignum, aNeg bool, bMag Bignum, bNeg bool) (Handle, Status) {
	return bignumAddSigned(vm, aMag, aNeg, bMag, !bNeg)
}

// decimalAddSub computes a+b in decimal (for a-b, binaryArith has
// already flipped bNeg), by comparing magnitudes to decide the result
// sign.
func (vm *VM) decimalAddSub(a Decimal, aNeg bool, b Decimal, bNeg bool) (Handle, Status) {
	if aNeg == bNeg {
		return vm.NewDecimal(decimalAddMag(a, b), aNeg, 0)
	}
	if decimalCmpMag(a, b) >= 0 {
		return vm.NewDecimal(decimalSubMag(a, b), aNeg, 0)
	}
	return vm.NewDecimal(decimalSubMag(b, a), bNeg, 0)
}

func (vm *VM) mulPromoted(a, b Handle) Status {
	kind := vm.widestKind(a, b)
	switch kind {
	case kindInteger:
		aMag, aNeg, _ := vm.AsBignum(a)
		bMag, bNeg, _ := vm.AsBignum(b)
		h, st := vm.NewIntegerFromBignum(aMag.Mul(bMag), aNeg != bNeg)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	case kindFraction:
		fa, _ := vm.fractionOperand(a)
		fb, _ := vm.fractionOperand(b)
		anMag, anNeg, _ := vm.AsBignum(fa.Num)
		adMag, _, _ := vm.AsBignum(fa.Den)
		bnMag, bnNeg, _ := vm.AsBignum(fb.Num)
		bdMag, _, _ := vm.AsBignum(fb.Den)
		h, st := vm.NewFraction(anMag.Mul(bnMag), anNeg != bnNeg, adMag.Mul(bdMag), false)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	case kindDecimal:
		ad, aNeg, _ := vm.asDecimalAny(a)
		bd, bNeg, _ := vm.asDecimalAny(b)
		h, st := vm.NewDecimal(decimalMul(ad, bd), aNeg != bNeg, DefaultPrecisionKigits)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	default:
		return vm.Fail(ErrType, "expected real numbers")
	}
}

// fractionOperand widens h to a Fraction, wrapping an integer operand as
// n/1 by allocating a unit denominator on demand.
func (vm *VM) fractionOperand(h Handle) (Fraction, bool) {
	if f, ok := vm.AsFraction(h); ok {
		return f, true
	}
	one, _ := vm.NewInteger(1)
	return Fraction{Num: h, Den: one}, true
}

func (vm *VM) addSubFraction(a, b Handle, sub bool) Status {
	fa, _ := vm.fractionOperand(a)
	fb, _ := vm.fractionOperand(b)
	anMag, anNeg, _ := vm.AsBignum(fa.Num)
	adMag, _, _ := vm.AsBignum(fa.Den)
	bnMag, bnNeg, _ := vm.AsBignum(fb.Num)
	bdMag, _, _ := vm.AsBignum(fb.Den)
	if sub {
		bnNeg = !bnNeg
	}
	// a/d1 +- b/d2 = (a*d2 +- b*d1) / (d1*d2)
	lhs := anMag.Mul(bdMag)
	rhs := bnMag.Mul(adMag)
	var numMag Bignum
	var numNeg bool
	if anNeg == bnNeg {
		numMag, numNeg = lhs.Add(rhs), anNeg
	} else if lhs.Cmp(rhs) >= 0 {
		numMag, numNeg = lhs.Sub(rhs), anNeg
	} else {
		numMag, numNeg = rhs.Sub(lhs), bnNeg
	}
	h, st := vm.NewFraction(numMag, numNeg, adMag.Mul(bdMag), false)
	if st != StatusOK {
		return st
	}
	return vm.Push(h)
}

func (vm *VM) cmdDiv() Status {
	b, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	a, st := vm.Pop()
	if st != StatusOK {
		vm.Push(b)
		return st
	}
	kind := vm.widestKind(a, b)
	switch kind {
	case kindInteger, kindFraction:
		fa, _ := vm.fractionOperand(a)
		fb, _ := vm.fractionOperand(b)
		anMag, anNeg, _ := vm.AsBignum(fa.Num)
		adMag, _, _ := vm.AsBignum(fa.Den)
		bnMag, bnNeg, _ := vm.AsBignum(fb.Num)
		bdMag, _, _ := vm.AsBignum(fb.Den)
		if bnMag.IsZero() {
			return vm.Fail(ErrDivideByZero, "division by zero")
		}
		h, st := vm.NewFraction(anMag.Mul(bdMag), anNeg != bnNeg, adMag.Mul(bnMag), false)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	case kindDecimal:
		ad, aNeg, _ := vm.asDecimalAny(a)
		bd, bNeg, _ := vm.asDecimalAny(b)
		if bd.IsZero() {
			return vm.Fail(ErrDivideByZero, "division by zero")
		}
		q, ok := decimalDiv(ad, bd, DefaultPrecisionKigits)
		if !ok {
			return vm.Fail(ErrDivideByZero, "division by zero")
		}
		h, st := vm.NewDecimal(q, aNeg != bNeg, DefaultPrecisionKigits)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	default:
		return vm.Fail(ErrType, "expected real numbers")
	}
}

func (vm *VM) cmdNeg() Status {
	a, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	tag := vm.TagOf(a)
	switch {
	case tag.IsInteger():
		mag, neg, _ := vm.AsBignum(a)
		h, st := vm.NewIntegerFromBignum(mag, !neg)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	case tag.IsFraction():
		f, _ := vm.AsFraction(a)
		numMag, numNeg, _ := vm.AsBignum(f.Num)
		denMag, _, _ := vm.AsBignum(f.Den)
		h, st := vm.NewFraction(numMag, !numNeg, denMag, false)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	case tag.IsDecimal():
		d, neg, _ := vm.AsDecimal(a)
		h, st := vm.NewDecimal(d, !neg, 0)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	default:
		return vm.Fail(ErrType, "expected a real number")
	}
}

func (vm *VM) cmdInv() Status {
	a, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	one, st := vm.NewInteger(1)
	if st != StatusOK {
		return st
	}
	if st := vm.Push(one); st != StatusOK {
		return st
	}
	if st := vm.Push(a); st != StatusOK {
		return st
	}
	return vm.cmdDiv()
}

func (vm *VM) cmdSqrt() Status {
	a, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	d, neg, ok := vm.asDecimalAny(a)
	if !ok {
		return vm.Fail(ErrType, "expected a real number")
	}
	if neg && !d.IsZero() {
		return vm.Fail(ErrDomain, "square root of a negative number")
	}
	root, ok := decimalSqrt(d, DefaultPrecisionKigits)
	if !ok {
		return vm.Fail(ErrDomain, "square root undefined")
	}
	h, st := vm.NewDecimal(root, false, DefaultPrecisionKigits)
	if st != StatusOK {
		return st
	}
	return vm.Push(h)
}
