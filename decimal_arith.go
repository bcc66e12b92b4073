package rpl48

// decimalMul multiplies two trimmed magnitudes via schoolbook
// multiplication over the kigit digit runs, then adds the operands'
// exponents.
func decimalMul(a, b Decimal) Decimal {
	a, b = a.trim(), b.trim()
	if a.IsZero() || b.IsZero() {
		return Decimal{}
	}
	out := make([]uint32, len(a.Kigits)+len(b.Kigits))
	for i := len(a.Kigits) - 1; i >= 0; i-- {
		ai := uint32(a.Kigits[i])
		for j := len(b.Kigits) - 1; j >= 0; j-- {
			idx := (len(a.Kigits)-1-i) + (len(b.Kigits)-1-j)
			out[idx] += ai * uint32(b.Kigits[j])
		}
	}
	// Propagate carries from least-significant (index 0) outward.
	var carry uint32
	for i := 0; i < len(out); i++ {
		v := out[i] + carry
		out[i] = v % 1000
		carry = v / 1000
	}
	for carry > 0 {
		out = append(out, carry%1000)
		carry /= 1000
	}
	kigits := make([]uint16, len(out))
	for i, v := range out {
		kigits[len(out)-1-i] = uint16(v)
	}
	exp := a.Exp + b.Exp
	return Decimal{Kigits: kigits, Exp: exp}.trim()
}

// decimalDiv divides a by b to prec significant kigits by computing
// 1/b via Newton-Raphson reciprocal refinement to the current
// precision, then multiplying.
func decimalDiv(a, b Decimal, prec int) (Decimal, bool) {
	a, b = a.trim(), b.trim()
	if b.IsZero() {
		return Decimal{}, false
	}
	if a.IsZero() {
		return Decimal{}, true
	}
	if prec <= 0 {
		prec = DefaultPrecisionKigits
	}
	recip, ok := decimalReciprocal(b, prec+4)
	if !ok {
		return Decimal{}, false
	}
	return decimalMul(a, recip).round(prec), true
}

// decimalReciprocal computes 1/d to prec kigits by Newton iteration
// x_{n+1} = x_n*(2 - d*x_n), which roughly doubles the number of
// correct digits each step. The iteration is self-correcting, so a
// float64 seed accurate to only a handful of kigits is enough to
// converge to full precision within a small, fixed number of rounds.
func decimalReciprocal(d Decimal, prec int) (Decimal, bool) {
	d = d.trim()
	if d.IsZero() {
		return Decimal{}, false
	}
	df := decimalToFloat64(d)
	if df == 0 {
		return Decimal{}, false
	}
	x := decimalFromFloat64(1 / df)
	two := decimalFromUint64(2)
	workPrec := prec + 4
	for i := 0; i < prec+8; i++ {
		t := decimalMul(d, x).round(workPrec)
		diff := decimalSubMag(two, t)
		next := decimalMul(x, diff).round(workPrec)
		if decimalCmpMag(next, x) == 0 {
			x = next
			break
		}
		x = next
	}
	return x.round(prec), true
}

// decimalSqrt computes sqrt(d) to prec kigits via Newton-Raphson,
// starting from a float64 seed (accurate enough to converge in a few
// iterations for any exponent range this engine supports) and refining
// in exact decimal arithmetic thereafter.
func decimalSqrt(d Decimal, prec int) (Decimal, bool) {
	d = d.trim()
	if d.IsZero() {
		return Decimal{}, true
	}
	if prec <= 0 {
		prec = DefaultPrecisionKigits
	}
	seed := decimalToFloat64(d)
	if seed <= 0 {
		return Decimal{}, false
	}
	x := decimalFromFloat64(1 / sqrtFloat64(seed) * seed)
	two := decimalFromUint64(2)
	workPrec := prec + 4
	for i := 0; i < workPrec; i++ {
		// x = (x + d/x) / 2
		q, ok := decimalDiv(d, x, workPrec)
		if !ok {
			return Decimal{}, false
		}
		sum := decimalAddMag(x, q)
		next, ok := decimalDiv(sum, two, workPrec)
		if !ok {
			return Decimal{}, false
		}
		if decimalCmpMag(next, x) == 0 {
			x = next
			break
		}
		x = next
	}
	return x.round(prec), true
}

// sqrtFloat64 is a self-contained Newton iteration over float64,
// avoiding a math.Sqrt import for what is only ever used to seed the
// exact decimal iteration.
func sqrtFloat64(v float64) float64 {
	if v == 0 {
		return 0
	}
	x := v
	for i := 0; i < 40; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}

func decimalToFloat64(d Decimal) float64 {
	d = d.trim()
	var v float64
	for _, k := range d.Kigits {
		v = v*1000 + float64(k)
	}
	for e := 0; e < d.Exp; e++ {
		v *= 1000
	}
	for e := 0; e > d.Exp; e-- {
		v /= 1000
	}
	return v
}

func decimalFromFloat64(v float64) Decimal {
	if v == 0 {
		return Decimal{}
	}
	if v < 0 {
		v = -v
	}
	exp := 0
	for v >= 1000 {
		v /= 1000
		exp++
	}
	for v < 1 {
		v *= 1000
		exp--
	}
	var kigits []uint16
	for i := 0; i < DefaultPrecisionKigits+2; i++ {
		k := uint16(v)
		kigits = append(kigits, k)
		v = (v - float64(k)) * 1000
	}
	return Decimal{Kigits: kigits, Exp: exp - (len(kigits) - 1)}.trim()
}
