package rpl48

// decimal_transcend.go implements the transcendental family: sqrt/cbrt,
// exp/ln and the logarithm/exponential variants, circular and
// hyperbolic trig and their inverses, and the erf/gamma special
// functions. The exponential family (Exp, Ln, Sinh, Cosh, Tanh and the
// inverse hyperbolics, which all reduce to Exp/Ln through standard
// identities) is computed natively in decimal arithmetic: Exp by a
// range-reduced Taylor series (halve, sum, square back up) and Ln by
// Newton-Raphson refinement on Exp, following the same refine-from-a-
// cheap-seed shape as decimalSqrt and decimalDiv's reciprocal. Circular trig
// and the erf/gamma special functions are computed natively too, via
// Taylor/Machin/Stirling series carried out in decimal arithmetic
// throughout, so precision in these functions scales with the active
// setting the same way it does for the Exp/Ln family.

import "math"

// sdec is a signed decimal magnitude, used internally by this file's
// series/Newton computations where decimalAddMag/decimalSubMag's
// "caller tracks the sign" convention would otherwise have to be
// re-derived at every step.
type sdec struct {
	mag Decimal
	neg bool
}

func sdecOf(d Decimal, neg bool) sdec {
	d = d.trim()
	if d.IsZero() {
		neg = false
	}
	return sdec{d, neg}
}

func sdecInt(v int64) sdec {
	neg := v < 0
	if neg {
		v = -v
	}
	return sdecOf(decimalFromUint64(uint64(v)), neg)
}

func sdecAdd(a, b sdec) sdec {
	if a.neg == b.neg {
		return sdecOf(decimalAddMag(a.mag, b.mag), a.neg)
	}
	if decimalCmpMag(a.mag, b.mag) >= 0 {
		return sdecOf(decimalSubMag(a.mag, b.mag), a.neg)
	}
	return sdecOf(decimalSubMag(b.mag, a.mag), b.neg)
}

func sdecNeg(a sdec) sdec { return sdec{a.mag, !a.neg && !a.mag.IsZero()} }

func sdecSub(a, b sdec) sdec { return sdecAdd(a, sdecNeg(b)) }

func sdecMul(a, b sdec) sdec { return sdecOf(decimalMul(a.mag, b.mag), a.neg != b.neg) }

func sdecDiv(a, b sdec, prec int) (sdec, bool) {
	q, ok := decimalDiv(a.mag, b.mag, prec)
	if !ok {
		return sdec{}, false
	}
	return sdecOf(q, a.neg != b.neg), true
}

func sdecRound(a sdec, prec int) sdec { return sdecOf(a.mag.round(prec), a.neg) }

func sdecEqual(a, b sdec) bool {
	a, b = sdecOf(a.mag, a.neg), sdecOf(b.mag, b.neg)
	return a.neg == b.neg && decimalCmpMag(a.mag, b.mag) == 0
}

// decExpOrder is the base-1000 order of magnitude of d's leading kigit,
// used to decide when a Taylor term has become too small to affect the
// requested precision. Zero is given the smallest possible order so it
// never looks significant.
func decExpOrder(d Decimal) int {
	d = d.trim()
	if d.IsZero() {
		return -1 << 30
	}
	return d.Exp + len(d.Kigits)
}

// decimalExp computes e^x (always positive) for a signed magnitude x, by
// halving the argument until it is below 1 in magnitude, summing the
// Taylor series there, then squaring back up — the standard
// range-reduced Taylor evaluation.
func decimalExp(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	workPrec := prec + 8
	x := sdecOf(xMag, xNeg)
	one := sdecInt(1)
	k := 0
	for decimalCmpMag(x.mag, decimalFromUint64(1)) > 0 && k < 64 {
		var ok bool
		x, ok = sdecDiv(x, sdecInt(2), workPrec)
		if !ok {
			return Decimal{}, false
		}
		k++
	}
	term, sum := one, one
	for n := 1; n < workPrec*4+40; n++ {
		term = sdecMul(term, x)
		q, ok := sdecDiv(term, sdecInt(int64(n)), workPrec)
		if !ok {
			return Decimal{}, false
		}
		term = sdecRound(q, workPrec)
		sum = sdecRound(sdecAdd(sum, term), workPrec)
		if decExpOrder(term.mag) <= decExpOrder(sum.mag)-(workPrec+2) {
			break
		}
	}
	for i := 0; i < k; i++ {
		sum = sdecRound(sdecMul(sum, sum), workPrec)
	}
	return sum.mag.round(prec), true
}

// lnFloat64 is a self-contained natural-log approximation over float64,
// used only to seed decimalLn's Newton refinement (the same role
// sqrtFloat64 plays for decimalSqrt): reduce x into [1,2) by halving/
// doubling, then sum the odd-power atanh series for the reduced value.
func lnFloat64(x float64) float64 {
	if x <= 0 {
		return 0
	}
	k := 0
	for x >= 2 {
		x /= 2
		k++
	}
	for x < 1 {
		x *= 2
		k--
	}
	u := (x - 1) / (x + 1)
	u2 := u * u
	term, sum := u, 0.0
	for n := 0; n < 40; n++ {
		sum += term / float64(2*n+1)
		term *= u2
	}
	const ln2 = 0.6931471805599453
	return 2*sum + float64(k)*ln2
}

// decimalLn computes ln(xMag) (xMag assumed a positive, nonzero
// magnitude; the caller checks the sign/zero domain error) by Newton
// iteration on f(t) = exp(t) - x, i.e. t_{n+1} = t_n + x*exp(-t_n) - 1,
// seeded from lnFloat64. Each round roughly doubles the correct digits,
// so a float64-accurate seed reaches full working precision in a
// handful of rounds.
func decimalLn(xMag Decimal, prec int) (mag Decimal, neg bool, ok bool) {
	xMag = xMag.trim()
	if xMag.IsZero() {
		return Decimal{}, false, false
	}
	workPrec := prec + 8
	xf := decimalToFloat64(xMag)
	if xf <= 0 {
		return Decimal{}, false, false
	}
	seed := lnFloat64(xf)
	t := sdecOf(decimalFromFloat64(absFloat(seed)), seed < 0)
	x := sdecOf(xMag, false)
	one := sdecInt(1)
	for i := 0; i < 8; i++ {
		expNegT, ok := decimalExp(t.mag, !t.neg, workPrec)
		if !ok {
			return Decimal{}, false, false
		}
		prod := sdecMul(x, sdecOf(expNegT, false))
		next := sdecRound(sdecAdd(t, sdecSub(prod, one)), workPrec)
		if sdecEqual(next, t) {
			t = next
			break
		}
		t = next
	}
	return t.mag.round(prec), t.neg, true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// decimalLog10/Log2 divide ln(x) by ln(10)/ln(2) computed on demand;
// not cached, since this engine has no persistent constant table, but
// cheap relative to the Newton passes inside decimalLn itself.
func decimalLog10(xMag Decimal, prec int) (Decimal, bool, bool) {
	return decimalLogBase(xMag, decimalFromUint64(10), prec)
}

func decimalLog2(xMag Decimal, prec int) (Decimal, bool, bool) {
	return decimalLogBase(xMag, decimalFromUint64(2), prec)
}

func decimalLogBase(xMag, base Decimal, prec int) (Decimal, bool, bool) {
	workPrec := prec + 6
	lnX, lnXNeg, ok := decimalLn(xMag, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	lnB, _, ok := decimalLn(base, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	q, ok := sdecDiv(sdecOf(lnX, lnXNeg), sdecOf(lnB, false), prec)
	if !ok {
		return Decimal{}, false, false
	}
	return q.mag, q.neg, true
}

// decimalLog1p/Expm1 go through ln(1+x)/exp(x)-1 directly rather than
// through a cancellation-avoiding series; acceptable for this engine's
// guard-digit precision (workPrec adds headroom beyond the requested
// precision specifically to absorb this).
func decimalLog1p(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	onePlusX := sdecAdd(sdecInt(1), sdecOf(xMag, xNeg))
	if onePlusX.neg {
		return Decimal{}, false, false
	}
	return decimalLn(onePlusX.mag, prec)
}

func decimalExpm1(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	e, ok := decimalExp(xMag, xNeg, prec+4)
	if !ok {
		return Decimal{}, false, false
	}
	r := sdecRound(sdecSub(sdecOf(e, false), sdecInt(1)), prec)
	return r.mag, r.neg, true
}

// decimalCbrt computes the real cube root, defined for negative
// magnitudes too (cbrt(-a) = -cbrt(a)), via exp(ln(|x|)/3).
func decimalCbrt(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	xMag = xMag.trim()
	if xMag.IsZero() {
		return Decimal{}, true
	}
	workPrec := prec + 6
	lnX, _, ok := decimalLn(xMag, workPrec)
	if !ok {
		return Decimal{}, false
	}
	third, ok := sdecDiv(sdecOf(lnX, false), sdecInt(3), workPrec)
	if !ok {
		return Decimal{}, false
	}
	r, ok := decimalExp(third.mag, third.neg, prec)
	if !ok {
		return Decimal{}, false
	}
	return r, true
}

// decimalSinh/Cosh/Tanh follow directly from e^x and e^-x.
func decimalSinhCosh(xMag Decimal, xNeg bool, prec int) (sinh, cosh Decimal, sinhNeg bool, ok bool) {
	workPrec := prec + 4
	ePos, ok1 := decimalExp(xMag, xNeg, workPrec)
	eNeg, ok2 := decimalExp(xMag, !xNeg, workPrec)
	if !ok1 || !ok2 {
		return Decimal{}, Decimal{}, false, false
	}
	sh := sdecSub(sdecOf(ePos, false), sdecOf(eNeg, false))
	ch := sdecAdd(sdecOf(ePos, false), sdecOf(eNeg, false))
	shHalf, ok := sdecDiv(sh, sdecInt(2), prec)
	if !ok {
		return Decimal{}, Decimal{}, false, false
	}
	chHalf, ok := sdecDiv(ch, sdecInt(2), prec)
	if !ok {
		return Decimal{}, Decimal{}, false, false
	}
	return shHalf.mag, chHalf.mag, shHalf.neg, true
}

func decimalTanh(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	sinh, cosh, sinhNeg, ok := decimalSinhCosh(xMag, xNeg, prec+4)
	if !ok || cosh.IsZero() {
		return Decimal{}, false, false
	}
	q, ok := sdecDiv(sdecOf(sinh, sinhNeg), sdecOf(cosh, false), prec)
	if !ok {
		return Decimal{}, false, false
	}
	return q.mag, q.neg, true
}

// decimalAsinh(x) = ln(x + sqrt(x^2+1)), defined for every real x.
func decimalAsinh(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	workPrec := prec + 6
	x2 := decimalMul(xMag, xMag)
	under := decimalAddMag(x2, decimalFromUint64(1))
	root, ok := decimalSqrt(under, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	sum := sdecAdd(sdecOf(xMag, xNeg), sdecOf(root, false))
	if sum.neg {
		// x + sqrt(x^2+1) is always positive; a negative sum here would
		// indicate catastrophic cancellation in sqrt's seed, not a real
		// domain case.
		return Decimal{}, false, false
	}
	return decimalLn(sum.mag, prec)
}

// decimalAcosh(x) = ln(x + sqrt(x^2-1)), defined for x >= 1.
func decimalAcosh(xMag Decimal, prec int) (Decimal, bool, bool) {
	workPrec := prec + 6
	if decimalCmpMag(xMag, decimalFromUint64(1)) < 0 {
		return Decimal{}, false, false
	}
	x2 := decimalMul(xMag, xMag)
	under := decimalSubMag(x2, decimalFromUint64(1))
	root, ok := decimalSqrt(under, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	sum := decimalAddMag(xMag, root)
	return decimalLn(sum, prec)
}

// decimalAtanh(x) = 0.5*ln((1+x)/(1-x)), defined for |x| < 1.
func decimalAtanh(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	workPrec := prec + 6
	if decimalCmpMag(xMag, decimalFromUint64(1)) >= 0 {
		return Decimal{}, false, false
	}
	num := sdecAdd(sdecInt(1), sdecOf(xMag, xNeg))
	den := sdecSub(sdecInt(1), sdecOf(xMag, xNeg))
	if den.mag.IsZero() {
		return Decimal{}, false, false
	}
	ratio, ok := sdecDiv(num, den, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	if ratio.neg {
		return Decimal{}, false, false
	}
	lnR, lnRNeg, ok := decimalLn(ratio.mag, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	half, ok := sdecDiv(sdecOf(lnR, lnRNeg), sdecInt(2), prec)
	if !ok {
		return Decimal{}, false, false
	}
	return half.mag, half.neg, true
}

// Circular trig and the erf/gamma special functions are computed
// natively in decimal arithmetic too, the same as the Exp/Ln family
// above: pi comes from decimalPi's Machin's-formula evaluation, sin/cos
// from a halve-then-double-angle-back-up Taylor evaluation (the same
// shape decimalExp uses for e^x), atan from a halve-the-angle reduction
// into decimalAtanSeries' convergence range, and gamma/lgamma from
// Stirling's asymptotic series reached by shifting the argument up
// through the gamma recurrence. None of these bridge through float64
// for the result itself, so precision scales with the active setting
// instead of capping out around 15-17 digits.

// decimalPi computes pi to prec significant kigits via Machin's
// formula, pi = 16*atan(1/5) - 4*atan(1/239); both arguments are
// already small enough for decimalAtanSeries to converge quickly
// without needing decimalAtan's range reduction.
func decimalPi(prec int) Decimal {
	workPrec := prec + 10
	fifth, ok1 := sdecDiv(sdecInt(1), sdecInt(5), workPrec)
	t239, ok2 := sdecDiv(sdecInt(1), sdecInt(239), workPrec)
	if !ok1 || !ok2 {
		return Decimal{}
	}
	a1 := decimalAtanSeries(fifth, workPrec)
	a2 := decimalAtanSeries(t239, workPrec)
	pi := sdecSub(sdecMul(sdecInt(16), a1), sdecMul(sdecInt(4), a2))
	return sdecRound(pi, prec).mag
}

// decimalAtanSeries sums the Taylor series atan(x) = x - x^3/3 + x^5/5
// - ..., which only converges quickly for |x| well inside 1; decimalAtan
// below reduces any argument into that range before calling this.
func decimalAtanSeries(x sdec, prec int) sdec {
	workPrec := prec + 8
	x2 := sdecMul(x, x)
	term, sum := x, x
	sign := false
	n := int64(1)
	for i := 0; i < workPrec*4+80; i++ {
		term = sdecMul(term, x2)
		n += 2
		q, ok := sdecDiv(term, sdecInt(n), workPrec)
		if !ok {
			break
		}
		if sign {
			sum = sdecRound(sdecAdd(sum, q), workPrec)
		} else {
			sum = sdecRound(sdecSub(sum, q), workPrec)
		}
		sign = !sign
		if decExpOrder(q.mag) <= decExpOrder(sum.mag)-(workPrec+2) {
			break
		}
	}
	return sdecRound(sum, prec)
}

// decimalAtan computes atan(x) for any real x by repeatedly applying
// atan(x) = 2*atan(x/(1+sqrt(1+x^2))) until the remaining argument is
// small, evaluating the series there, then doubling the result back up
// the same number of times — the halve-argument/recombine-result shape
// decimalExp uses for e^x, with doubling standing in for squaring.
func decimalAtan(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	workPrec := prec + 10
	threshold, ok := sdecDiv(sdecInt(1), sdecInt(1000), workPrec)
	if !ok {
		return Decimal{}, false
	}
	x := sdecOf(xMag, xNeg)
	scale := sdecInt(1)
	for i := 0; i < 200 && !x.mag.IsZero() && decimalCmpMag(x.mag, threshold.mag) >= 0; i++ {
		under := sdecAdd(sdecInt(1), sdecMul(x, x))
		root, ok := decimalSqrt(under.mag, workPrec)
		if !ok {
			return Decimal{}, false
		}
		denom := sdecAdd(sdecInt(1), sdecOf(root, false))
		next, ok := sdecDiv(x, denom, workPrec)
		if !ok {
			return Decimal{}, false
		}
		x = next
		scale = sdecMul(scale, sdecInt(2))
	}
	result := sdecRound(sdecMul(scale, decimalAtanSeries(x, workPrec)), prec)
	return result.mag, result.neg
}

// taylorSinCos sums the Taylor series for sin and cos together over a
// small argument, term-by-term: each pair of successive terms shares
// the same running power of x^2, so both series update from one
// multiply per step instead of two independent expansions.
func taylorSinCos(x sdec, prec int) (sin, cos sdec) {
	workPrec := prec + 8
	x2 := sdecMul(x, x)
	sinTerm, sinSum := x, x
	cosTerm, cosSum := sdecInt(1), sdecInt(1)
	sign := false
	for n := int64(1); n < int64(workPrec)*4+200; n += 2 {
		sinTerm = sdecMul(sinTerm, x2)
		sq, ok := sdecDiv(sinTerm, sdecInt((n+1)*(n+2)), workPrec)
		if !ok {
			break
		}
		sinTerm = sdecRound(sq, workPrec)
		cosTerm = sdecMul(cosTerm, x2)
		cq, ok := sdecDiv(cosTerm, sdecInt(n*(n+1)), workPrec)
		if !ok {
			break
		}
		cosTerm = sdecRound(cq, workPrec)
		if sign {
			sinSum = sdecRound(sdecAdd(sinSum, sinTerm), workPrec)
			cosSum = sdecRound(sdecAdd(cosSum, cosTerm), workPrec)
		} else {
			sinSum = sdecRound(sdecSub(sinSum, sinTerm), workPrec)
			cosSum = sdecRound(sdecSub(cosSum, cosTerm), workPrec)
		}
		sign = !sign
		if decExpOrder(sinTerm.mag) <= decExpOrder(sinSum.mag)-(workPrec+2) &&
			decExpOrder(cosTerm.mag) <= decExpOrder(cosSum.mag)-(workPrec+2) {
			break
		}
	}
	return sdecRound(sinSum, prec), sdecRound(cosSum, prec)
}

// decimalSinCos computes sin and cos of a radian angle together,
// halving the argument until its magnitude is at most 1 (an exact
// identity, not a periodicity assumption, so it works for any x the
// same way decimalExp's halving does), evaluating the Taylor series
// there, then recombining with the double-angle identities
// sin(2t) = 2 sin(t) cos(t), cos(2t) = cos(t)^2 - sin(t)^2.
func decimalSinCos(xMag Decimal, xNeg bool, prec int) (sin, cos sdec, ok bool) {
	workPrec := prec + 10
	x := sdecOf(xMag, xNeg)
	k := 0
	one := decimalFromUint64(1)
	for decimalCmpMag(x.mag, one) > 0 && k < 200 {
		next, divOk := sdecDiv(x, sdecInt(2), workPrec)
		if !divOk {
			return sdec{}, sdec{}, false
		}
		x = next
		k++
	}
	sinT, cosT := taylorSinCos(x, workPrec)
	for i := 0; i < k; i++ {
		newSin := sdecRound(sdecMul(sdecInt(2), sdecMul(sinT, cosT)), workPrec)
		newCos := sdecRound(sdecSub(sdecMul(cosT, cosT), sdecMul(sinT, sinT)), workPrec)
		sinT, cosT = newSin, newCos
	}
	return sdecRound(sinT, prec), sdecRound(cosT, prec), true
}

func decimalSin(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	sin, _, ok := decimalSinCos(xMag, xNeg, prec)
	if !ok {
		return Decimal{}, false
	}
	return sin.mag, sin.neg
}

func decimalCos(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	_, cos, ok := decimalSinCos(xMag, xNeg, prec)
	if !ok {
		return Decimal{}, false
	}
	return cos.mag, cos.neg
}

func decimalTan(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	workPrec := prec + 8
	sin, cos, ok := decimalSinCos(xMag, xNeg, workPrec)
	if !ok || cos.mag.IsZero() {
		return Decimal{}, false
	}
	q, ok := sdecDiv(sin, cos, prec)
	if !ok {
		return Decimal{}, false
	}
	return q.mag, q.neg
}

// decimalAsin(x) = atan(x/sqrt(1-x^2)) for |x| < 1, with |x| == 1
// handled directly as +-pi/2 since the identity's denominator vanishes
// there.
func decimalAsin(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	workPrec := prec + 10
	one := decimalFromUint64(1)
	switch decimalCmpMag(xMag, one) {
	case 1:
		return Decimal{}, false, false
	case 0:
		pi := decimalPi(prec)
		half, ok := decimalDiv(pi, decimalFromUint64(2), prec)
		if !ok {
			return Decimal{}, false, false
		}
		return half, xNeg, true
	}
	under := decimalSubMag(one, decimalMul(xMag, xMag))
	root, ok := decimalSqrt(under, workPrec)
	if !ok || root.IsZero() {
		return Decimal{}, false, false
	}
	ratio, ok := sdecDiv(sdecOf(xMag, xNeg), sdecOf(root, false), workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	mag, neg := decimalAtan(ratio.mag, ratio.neg, prec)
	return mag, neg, true
}

// decimalAcos(x) = pi/2 - asin(x).
func decimalAcos(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	workPrec := prec + 8
	asinMag, asinNeg, ok := decimalAsin(xMag, xNeg, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	half, ok := decimalDiv(decimalPi(workPrec), decimalFromUint64(2), workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	res := sdecRound(sdecSub(sdecOf(half, false), sdecOf(asinMag, asinNeg)), prec)
	return res.mag, res.neg, true
}

// erfCutoff is the magnitude beyond which erf has saturated to +-1
// well past the requested precision (erfc(x) shrinks like
// e^(-x^2)/(x*sqrt(pi)), so x well past sqrt(precision) in decimal
// digits already puts erfc below any representable digit at that
// precision); computed via float64 since it only decides a threshold,
// never the returned value itself.
func erfCutoff(prec int) Decimal {
	return decimalFromFloat64(math.Sqrt(2.3*float64(prec) + 16))
}

// erfSeries sums erf's alternating series x - x^3/3 + x^5/10 - ...
// (each term x^(2n+1)/(n!(2n+1))), before the leading 2/sqrt(pi) factor.
func erfSeries(x sdec, prec int) sdec {
	x2 := sdecMul(x, x)
	term, sum := x, x
	fact := sdecInt(1)
	sign := false
	for n := int64(1); n < int64(prec)*4+200; n++ {
		term = sdecMul(term, x2)
		fact = sdecMul(fact, sdecInt(n))
		q, ok := sdecDiv(term, sdecMul(fact, sdecInt(2*n+1)), prec)
		if !ok {
			break
		}
		if sign {
			sum = sdecRound(sdecAdd(sum, q), prec)
		} else {
			sum = sdecRound(sdecSub(sum, q), prec)
		}
		sign = !sign
		if decExpOrder(q.mag) <= decExpOrder(sum.mag)-(prec+2) {
			break
		}
	}
	return sdecRound(sum, prec)
}

func decimalErf(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	if xMag.IsZero() {
		return Decimal{}, false
	}
	if decimalCmpMag(xMag, erfCutoff(prec)) > 0 {
		return decimalFromUint64(1), xNeg
	}
	workPrec := prec + 10
	rootPi, ok := decimalSqrt(decimalPi(workPrec), workPrec)
	if !ok {
		return Decimal{}, false
	}
	coeff, ok := sdecDiv(sdecInt(2), sdecOf(rootPi, false), workPrec)
	if !ok {
		return Decimal{}, false
	}
	res := sdecRound(sdecMul(coeff, erfSeries(sdecOf(xMag, xNeg), workPrec)), prec)
	return res.mag, res.neg
}

func decimalErfc(xMag Decimal, xNeg bool, prec int) (Decimal, bool) {
	if decimalCmpMag(xMag, erfCutoff(prec)) > 0 {
		if xNeg {
			return decimalFromUint64(2), false
		}
		return Decimal{}, false
	}
	erfMag, erfNeg := decimalErf(xMag, xNeg, prec+4)
	res := sdecRound(sdecSub(sdecInt(1), sdecOf(erfMag, erfNeg)), prec)
	return res.mag, res.neg
}

// gammaShift is how far decimalLgammaPositive walks a positive argument
// up via the recurrence ln Gamma(x) = ln Gamma(x+1) - ln(x) before
// handing off to Stirling's series, which only converges quickly once
// its argument is comfortably large.
const gammaShift = 30

// stirlingBernoulliNum/Den are B2, B4, ..., B14 as exact fractions, the
// coefficients Stirling's asymptotic series for ln Gamma(z) needs.
var stirlingBernoulliNum = []int64{1, -1, 1, -1, 5, -691, 7}
var stirlingBernoulliDen = []int64{6, 30, 42, 30, 66, 2730, 6}

// stirlingLnGamma computes ln(Gamma(z)) for z already shifted well
// above 1: (z-1/2)*ln(z) - z + (1/2)*ln(2*pi) + sum_k B_2k/(2k(2k-1)*z^(2k-1)).
func stirlingLnGamma(z Decimal, prec int) (Decimal, bool, bool) {
	workPrec := prec + 10
	lnZ, _, ok := decimalLn(z, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	half, ok := sdecDiv(sdecInt(1), sdecInt(2), workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	term1 := sdecMul(sdecSub(sdecOf(z, false), half), sdecOf(lnZ, false))
	twoPi := decimalMul(decimalPi(workPrec), decimalFromUint64(2))
	lnTwoPi, _, ok := decimalLn(twoPi, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	halfLnTwoPi, ok := sdecDiv(sdecOf(lnTwoPi, false), sdecInt(2), workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	sum := sdecAdd(sdecSub(term1, sdecOf(z, false)), halfLnTwoPi)

	zInv, ok := sdecDiv(sdecInt(1), sdecOf(z, false), workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	zPow := zInv
	for k := 1; k <= len(stirlingBernoulliNum); k++ {
		denom := int64(2*k) * int64(2*k-1)
		coeff, ok := sdecDiv(sdecInt(stirlingBernoulliNum[k-1]), sdecInt(stirlingBernoulliDen[k-1]*denom), workPrec)
		if !ok {
			break
		}
		termK := sdecMul(coeff, zPow)
		sum = sdecRound(sdecAdd(sum, termK), workPrec)
		if decExpOrder(termK.mag) <= decExpOrder(sum.mag)-(workPrec+2) {
			break
		}
		zPow = sdecMul(zPow, sdecMul(zInv, zInv))
	}
	return sum.mag, sum.neg, true
}

// decimalLgammaPositive computes ln(Gamma(x)) for x > 0 by walking x up
// to at least gammaShift via the recurrence ln Gamma(x) =
// ln Gamma(x+n) - sum_{i=0}^{n-1} ln(x+i), then applying Stirling's
// series to the shifted argument.
func decimalLgammaPositive(x Decimal, prec int) (Decimal, bool, bool) {
	workPrec := prec + 10
	cur := x
	shiftBound := decimalFromUint64(gammaShift)
	var logSum sdec
	for i := 0; i < 4096 && decimalCmpMag(cur, shiftBound) < 0; i++ {
		lnCur, lnCurNeg, ok := decimalLn(cur, workPrec)
		if !ok {
			return Decimal{}, false, false
		}
		logSum = sdecAdd(logSum, sdecOf(lnCur, lnCurNeg))
		cur = decimalAddMag(cur, decimalFromUint64(1))
	}
	lnGammaShifted, lnGammaShiftedNeg, ok := stirlingLnGamma(cur, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	res := sdecRound(sdecSub(sdecOf(lnGammaShifted, lnGammaShiftedNeg), logSum), prec)
	return res.mag, res.neg, true
}

// isIntegerMag reports whether mag, a trimmed magnitude, represents an
// exact integer: after trim removes trailing zero kigits, a nonnegative
// Exp means every remaining kigit place sits at or above the units
// place, so nothing fractional survived.
func isIntegerMag(mag Decimal) bool {
	mag = mag.trim()
	return mag.IsZero() || mag.Exp >= 0
}

// decimalLgamma computes ln(Gamma(x)) for x != 0 and x not a negative
// integer (both are poles), using the reflection formula
// Gamma(x)*Gamma(1-x) = pi/sin(pi*x) for negative x so that
// decimalLgammaPositive only ever sees a positive argument.
func decimalLgamma(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	workPrec := prec + 8
	if !xNeg {
		if xMag.IsZero() {
			return Decimal{}, false, false
		}
		return decimalLgammaPositive(xMag, prec)
	}
	oneMinusX := decimalAddMag(decimalFromUint64(1), xMag)
	lnGamma1mxMag, lnGamma1mxNeg, ok := decimalLgammaPositive(oneMinusX, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	pi := decimalPi(workPrec)
	sin, _, ok := decimalSinCos(decimalMul(pi, xMag), xNeg, workPrec)
	if !ok || sin.mag.IsZero() {
		return Decimal{}, false, false
	}
	lnSinMag, _, ok := decimalLn(sin.mag, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	lnPiMag, _, ok := decimalLn(pi, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	res := sdecSub(sdecSub(sdecOf(lnPiMag, false), sdecOf(lnSinMag, false)), sdecOf(lnGamma1mxMag, lnGamma1mxNeg))
	res = sdecRound(res, prec)
	return res.mag, res.neg, true
}

// decimalTgamma computes Gamma(x) as exp(ln|Gamma(x)|) with the sign
// handled separately, since exp is always positive: Gamma is positive
// everywhere on the positive axis, and on the negative axis (away from
// its poles at the non-positive integers) its sign matches sin(pi*x)
// by the reflection formula.
func decimalTgamma(xMag Decimal, xNeg bool, prec int) (Decimal, bool, bool) {
	workPrec := prec + 8
	if !xNeg {
		if xMag.IsZero() {
			return Decimal{}, false, false
		}
		lnG, lnGNeg, ok := decimalLgammaPositive(xMag, workPrec)
		if !ok {
			return Decimal{}, false, false
		}
		mag, ok := decimalExp(lnG, lnGNeg, prec)
		if !ok {
			return Decimal{}, false, false
		}
		return mag, false, true
	}
	if isIntegerMag(xMag) {
		return Decimal{}, false, false
	}
	lnGMag, lnGNeg, ok := decimalLgamma(xMag, xNeg, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	mag, ok := decimalExp(lnGMag, lnGNeg, prec)
	if !ok {
		return Decimal{}, false, false
	}
	sin, _, ok := decimalSinCos(decimalMul(decimalPi(workPrec), xMag), xNeg, workPrec)
	if !ok {
		return Decimal{}, false, false
	}
	return mag, sin.neg, true
}
