package rpl48

// Fraction is an exact rational: two child handles, numerator and
// denominator, each an integer-family object (TagInteger, TagNegInteger,
// TagBignum, or TagNegBignum). The sign lives on the numerator's tag;
// the denominator is always non-negative and, per NewFraction's
// normalization, never 1 — a fraction that reduces to an integer is
// returned as one.
type Fraction struct {
	Num, Den Handle
}

// NewFraction builds and reduces num/den, returning an integer-family
// handle instead of a fraction object when the denominator divides the
// numerator evenly.
func (vm *VM) NewFraction(numMag Bignum, numNeg bool, denMag Bignum, denNeg bool) (Handle, Status) {
	if denMag.IsZero() {
		return HandleInvalid, vm.Fail(ErrDivideByZero, "zero denominator")
	}
	neg := numNeg != denNeg
	g := bignumGCD(numMag, denMag)
	if !g.IsZero() {
		numMag, _ = numMag.QuoRem(g)
		denMag, _ = denMag.QuoRem(g)
	}
	if isOneBignum(denMag) {
		return vm.NewIntegerFromBignum(numMag, neg)
	}
	nh, st := vm.NewIntegerFromBignum(numMag, neg)
	if st != StatusOK {
		return HandleInvalid, st
	}
	dh, st := vm.NewIntegerFromBignum(denMag, false)
	if st != StatusOK {
		return HandleInvalid, st
	}
	return vm.newFractionHandles(nh, dh)
}

func (vm *VM) newFractionHandles(num, den Handle) (Handle, Status) {
	var payload [8]byte
	putU32(payload[0:], uint32(num))
	putU32(payload[4:], uint32(den))
	return vm.newLeaf(TagFraction, payload[:])
}

// AsFraction decodes a fraction object into its numerator/denominator
// magnitudes and signs.
func (vm *VM) AsFraction(h Handle) (f Fraction, ok bool) {
	if !vm.TagOf(h).IsFraction() {
		return Fraction{}, false
	}
	p := vm.payload(h)
	return Fraction{Num: Handle(getU32(p[0:])), Den: Handle(getU32(p[4:]))}, true
}

func isOneBignum(b Bignum) bool {
	b = b.trim()
	return len(b.limbs) == 1 && b.limbs[0] == 1
}

func bignumGCD(a, b Bignum) Bignum {
	for !b.IsZero() {
		_, r := a.QuoRem(b)
		a, b = b, r
	}
	return a
}
