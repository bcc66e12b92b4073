package rpl48

func init() {
	registerCommand(TagCmdPow, func(vm *VM) Status { return vm.cmdPow() })
	registerCommand(TagCmdCbrt, unaryDecimalCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		r, ok := decimalCbrt(mag, neg, prec)
		return r, neg, ok
	}))
	registerCommand(TagCmdExp, unaryDecimalCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		r, ok := decimalExp(mag, neg, prec)
		return r, false, ok
	}))
	registerCommand(TagCmdLn, unaryDecimalDomainCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		if neg || mag.IsZero() {
			return Decimal{}, false, false
		}
		return decimalLn(mag, prec)
	}))
	registerCommand(TagCmdLog10, unaryDecimalDomainCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		if neg || mag.IsZero() {
			return Decimal{}, false, false
		}
		return decimalLog10(mag, prec)
	}))
	registerCommand(TagCmdLog2, unaryDecimalDomainCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		if neg || mag.IsZero() {
			return Decimal{}, false, false
		}
		return decimalLog2(mag, prec)
	}))
	registerCommand(TagCmdLog1p, unaryDecimalDomainCmd(decimalLog1p))
	registerCommand(TagCmdExpm1, unaryDecimalDomainCmd(decimalExpm1))
	registerCommand(TagCmdSinh, unaryDecimalDomainCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		sh, _, shNeg, ok := decimalSinhCosh(mag, neg, prec)
		return sh, shNeg, ok
	}))
	registerCommand(TagCmdCosh, unaryDecimalDomainCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		_, ch, _, ok := decimalSinhCosh(mag, neg, prec)
		return ch, false, ok
	}))
	registerCommand(TagCmdTanh, unaryDecimalDomainCmd(decimalTanh))
	registerCommand(TagCmdAsinh, unaryDecimalDomainCmd(decimalAsinh))
	registerCommand(TagCmdAcosh, unaryDecimalDomainCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		if neg {
			return Decimal{}, false, false
		}
		return decimalAcosh(mag, prec)
	}))
	registerCommand(TagCmdAtanh, unaryDecimalDomainCmd(decimalAtanh))

	registerCommand(TagCmdSin, unaryAngleInCmd(decimalSin))
	registerCommand(TagCmdCos, unaryAngleInCmd(decimalCos))
	registerCommand(TagCmdTan, unaryAngleInCmd(decimalTan))
	registerCommand(TagCmdAsin, unaryAngleOutDomainCmd(decimalAsin))
	registerCommand(TagCmdAcos, unaryAngleOutDomainCmd(decimalAcos))
	registerCommand(TagCmdAtan, unaryAngleOutCmd(decimalAtan))

	registerCommand(TagCmdErf, unaryDecimalCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		r, n := decimalErf(mag, neg, prec)
		return r, n, true
	}))
	registerCommand(TagCmdErfc, unaryDecimalCmd(func(mag Decimal, neg bool, prec int) (Decimal, bool, bool) {
		r, n := decimalErfc(mag, neg, prec)
		return r, n, true
	}))
	registerCommand(TagCmdTgamma, unaryDecimalDomainCmd(decimalTgamma))
	registerCommand(TagCmdLgamma, unaryDecimalDomainCmd(decimalLgamma))

	registerCommand(TagCmdToFrac, func(vm *VM) Status { return vm.cmdToFrac() })
	registerCommand(TagCmdToNum, func(vm *VM) Status { return vm.cmdToNum() })
}

// unaryDecimalFn is the shape every transcendental in decimal_transcend.go
// reduces to: given the operand's magnitude, sign, and the active
// precision, produce a result magnitude, sign, and success flag.
type unaryDecimalFn func(mag Decimal, neg bool, prec int) (resultMag Decimal, resultNeg bool, ok bool)

// unaryDecimalCmd wraps a unaryDecimalFn that is total over its real
// domain (Exp, Cbrt, Erf, Erfc — every real input has a defined result).
func unaryDecimalCmd(fn unaryDecimalFn) func(vm *VM) Status {
	return unaryDecimalDomainCmd(fn)
}

// unaryDecimalDomainCmd wraps a unaryDecimalFn that may reject its
// operand (Ln of a non-positive number, Acosh below 1, ...), reporting
// ErrDomain when fn returns ok=false.
func unaryDecimalDomainCmd(fn unaryDecimalFn) func(vm *VM) Status {
	return func(vm *VM) Status {
		a, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		mag, neg, ok := vm.asDecimalAny(a)
		if !ok {
			vm.Push(a)
			return vm.Fail(ErrType, "expected a real number")
		}
		resMag, resNeg, ok := fn(mag, neg, vm.settings.Precision)
		if !ok {
			return vm.Fail(ErrDomain, "argument outside the function's domain")
		}
		h, st := vm.NewDecimal(resMag, resNeg, vm.settings.Precision)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	}
}

// unaryAngleInCmd wraps a trig function whose input is an angle in the
// active AngleUnit setting and whose output is a plain real (Sin/Cos/Tan).
func unaryAngleInCmd(fn func(mag Decimal, neg bool, prec int) (Decimal, bool)) func(vm *VM) Status {
	return func(vm *VM) Status {
		a, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		mag, neg, ok := vm.asDecimalAny(a)
		if !ok {
			vm.Push(a)
			return vm.Fail(ErrType, "expected a real number")
		}
		rad := vm.toRadians(mag, neg, vm.settings.Precision)
		resMag, resNeg := fn(rad.mag, rad.neg, vm.settings.Precision)
		h, st := vm.NewDecimal(resMag, resNeg, vm.settings.Precision)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	}
}

// unaryAngleOutCmd wraps an inverse trig function (Atan) whose output is
// an angle that must be converted back to the active AngleUnit.
func unaryAngleOutCmd(fn func(mag Decimal, neg bool, prec int) (Decimal, bool)) func(vm *VM) Status {
	return func(vm *VM) Status {
		a, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		mag, neg, ok := vm.asDecimalAny(a)
		if !ok {
			vm.Push(a)
			return vm.Fail(ErrType, "expected a real number")
		}
		radMag, radNeg := fn(mag, neg, vm.settings.Precision+8)
		angle := vm.fromRadians(sdecOf(radMag, radNeg), vm.settings.Precision)
		h, st := vm.NewDecimal(angle.mag.round(vm.settings.Precision), angle.neg, vm.settings.Precision)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	}
}

// unaryAngleOutDomainCmd is unaryAngleOutCmd for Asin/Acos, which reject
// operands outside [-1, 1].
func unaryAngleOutDomainCmd(fn func(mag Decimal, neg bool, prec int) (Decimal, bool, bool)) func(vm *VM) Status {
	return func(vm *VM) Status {
		a, st := vm.Pop()
		if st != StatusOK {
			return st
		}
		mag, neg, ok := vm.asDecimalAny(a)
		if !ok {
			vm.Push(a)
			return vm.Fail(ErrType, "expected a real number")
		}
		radMag, radNeg, ok := fn(mag, neg, vm.settings.Precision+8)
		if !ok {
			return vm.Fail(ErrDomain, "argument outside [-1, 1]")
		}
		angle := vm.fromRadians(sdecOf(radMag, radNeg), vm.settings.Precision)
		h, st := vm.NewDecimal(angle.mag.round(vm.settings.Precision), angle.neg, vm.settings.Precision)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	}
}

// cmdPow implements x^y (^): exact repeated multiplication when y is a small
// non-negative integer and x is exact (integer or fraction), so 2 3 ^
// renders as the integer 8 rather than a decimal; otherwise falls back
// to exp(y*ln(x)) with a sign correction when x is negative and y is an
// integer (odd exponent keeps the sign, even discards it; a negative
// base with a non-integer exponent has no real result).
func (vm *VM) cmdPow() Status {
	y, st := vm.Pop()
	if st != StatusOK {
		return st
	}
	x, st := vm.Pop()
	if st != StatusOK {
		vm.Push(y)
		return st
	}
	if yExp, ok := vm.AsInteger(y); ok && yExp >= 0 && yExp <= 10000 &&
		(vm.kindOf(x) == kindInteger || vm.kindOf(x) == kindFraction) {
		return vm.powExactNonNegInt(x, yExp)
	}
	xMag, xNeg, ok1 := vm.asDecimalAny(x)
	yMag, yNeg, ok2 := vm.asDecimalAny(y)
	if !ok1 || !ok2 {
		return vm.Fail(ErrType, "expected real numbers")
	}
	yInt, yIsInt := vm.AsInteger(y)
	if xNeg && !xMag.IsZero() && !yIsInt {
		return vm.Fail(ErrDomain, "negative base requires an integer exponent")
	}
	resultNeg := false
	if xNeg && yIsInt && yInt%2 != 0 {
		resultNeg = true
	}
	if xMag.IsZero() {
		h, st := vm.NewInteger(0)
		if st != StatusOK {
			return st
		}
		return vm.Push(h)
	}
	prec := vm.settings.Precision
	lnX, lnXNeg, ok := decimalLn(xMag, prec+8)
	if !ok {
		return vm.Fail(ErrDomain, "log of the base is undefined")
	}
	exponent := sdecMul(sdecOf(lnX, lnXNeg), sdecOf(yMag, yNeg))
	powMag, ok := decimalExp(exponent.mag, exponent.neg, prec)
	if !ok {
		return vm.Fail(ErrOverflow, "result too large to represent")
	}
	h, st := vm.NewDecimal(powMag, resultNeg, prec)
	if st != StatusOK {
		return st
	}
	return vm.Push(h)
}

func (vm *VM) powExactNonNegInt(x Handle, n int64) Status {
	result, st := vm.NewInteger(1)
	if st != StatusOK {
		return st
	}
	if st := vm.Push(result); st != StatusOK {
		return st
	}
	for i := int64(0); i < n; i++ {
		if st := vm.Push(x); st != StatusOK {
			return st
		}
		if st := vm.mulPromoted(mustPeekBelow(vm), x); st != StatusOK {
			return st
		}
	}
	return StatusOK
}

// mustPeekBelow pops the accumulator that powExactNonNegInt just pushed
// x on top of, so mulPromoted(acc, x) can run and its result replace
// both operands (mulPromoted itself pushes the product).
func mustPeekBelow(vm *VM) Handle {
	vm.Pop()
	acc, _ := vm.Pop()
	return acc
}
