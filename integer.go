package rpl48

// Exact integers come in two payload shapes: TagInteger/TagNegInteger
// hold a magnitude that fits in a uint64, encoded as a single VLI;
// TagBignum/TagNegBignum hold a Bignum-encoded magnitude for anything
// larger. Every arithmetic entry point in arith.go funnels both cases
// through the same int64-or-Bignum pair so overflow promotion and
// demotion back to a machine magnitude are symmetric.

// NewInteger allocates a signed machine-range integer object.
func (vm *VM) NewInteger(v int64) (Handle, Status) {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = uint64(-v)
	}
	return vm.newIntegerMagnitude(mag, neg)
}

func (vm *VM) newIntegerMagnitude(mag uint64, neg bool) (Handle, Status) {
	tag := TagInteger
	if neg && mag != 0 {
		tag = TagNegInteger
	}
	return vm.newLeaf(tag, PutVLI(nil, mag))
}

// AsInteger returns h's value as an int64 if it is a machine-range
// integer; ok is false for bignums, fractions, or any non-integer tag.
func (vm *VM) AsInteger(h Handle) (v int64, ok bool) {
	tag := vm.TagOf(h)
	if tag != TagInteger && tag != TagNegInteger {
		return 0, false
	}
	mag, _ := GetVLI(vm.payload(h))
	if tag == TagNegInteger {
		return -int64(mag), true
	}
	return int64(mag), true
}

// NewBignum allocates an arbitrary-precision integer object.
func (vm *VM) NewBignum(mag Bignum, neg bool) (Handle, Status) {
	if mag.IsZero() {
		neg = false
	}
	tag := TagBignum
	if neg {
		tag = TagNegBignum
	}
	return vm.newLeaf(tag, mag.encode())
}

// AsBignum returns the magnitude and sign of any integer-family object
// (machine-range or big), for use by arith.go's uniform integer path.
func (vm *VM) AsBignum(h Handle) (mag Bignum, neg bool, ok bool) {
	switch tag := vm.TagOf(h); tag {
	case TagInteger, TagNegInteger:
		m, _ := GetVLI(vm.payload(h))
		return bignumFromUint64(m), tag == TagNegInteger, true
	case TagBignum, TagNegBignum:
		return decodeBignum(vm.payload(h)), tag == TagNegBignum, true
	default:
		return Bignum{}, false, false
	}
}

// NewIntegerFromBignum allocates the most compact integer-family object
// representing mag (negated if neg), demoting to a machine integer when
// the magnitude fits.
func (vm *VM) NewIntegerFromBignum(mag Bignum, neg bool) (Handle, Status) {
	if small, ok := bignumToUint64(mag); ok {
		return vm.newIntegerMagnitude(small, neg)
	}
	return vm.NewBignum(mag, neg)
}

func bignumToUint64(b Bignum) (uint64, bool) {
	b = b.trim()
	if len(b.limbs) > 3 {
		return 0, false
	}
	var v uint64
	for i := len(b.limbs) - 1; i >= 0; i-- {
		hi := v > (1<<64-1)/bignumBase
		v = v*bignumBase + uint64(b.limbs[i])
		if hi {
			return 0, false
		}
	}
	return v, true
}
