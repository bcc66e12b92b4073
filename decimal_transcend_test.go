package rpl48

import (
	"math"
	"testing"
)

func toFloatSigned(mag Decimal, neg bool) float64 {
	v := decimalToFloat64(mag)
	if neg {
		return -v
	}
	return v
}

func almostEqual(t *testing.T, got, want, tol float64, what string) {
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", what, got, want, tol)
	}
}

func TestDecimalPiMatchesStandardLibraryConstant(t *testing.T) {
	pi := decimalPi(25)
	almostEqual(t, decimalToFloat64(pi), math.Pi, 1e-12, "decimalPi(25)")
}

func TestDecimalSinCosSatisfyPythagoreanIdentity(t *testing.T) {
	x := decimalFromFloat64(0.7)
	sin, sinNeg := decimalSin(x, false, 25)
	cos, cosNeg := decimalCos(x, false, 25)
	sum := decimalAddMag(decimalMul(sin, sin), decimalMul(cos, cos))
	_ = sinNeg
	_ = cosNeg
	almostEqual(t, decimalToFloat64(sum), 1.0, 1e-12, "sin^2+cos^2")
}

func TestDecimalSinCosMatchStandardLibraryValues(t *testing.T) {
	x := decimalFromFloat64(1.3)
	sin, sinNeg := decimalSin(x, false, 20)
	cos, cosNeg := decimalCos(x, false, 20)
	almostEqual(t, toFloatSigned(sin, sinNeg), math.Sin(1.3), 1e-10, "decimalSin(1.3)")
	almostEqual(t, toFloatSigned(cos, cosNeg), math.Cos(1.3), 1e-10, "decimalCos(1.3)")
}

func TestDecimalSinIsOddCosIsEven(t *testing.T) {
	x := decimalFromFloat64(0.9)
	sinPos, sinPosNeg := decimalSin(x, false, 20)
	sinNeg, sinNegNeg := decimalSin(x, true, 20)
	if decimalCmpMag(sinPos, sinNeg) != 0 || sinPosNeg == sinNegNeg {
		t.Errorf("decimalSin(-x) should equal -decimalSin(x)")
	}
	cosPos, cosPosNeg := decimalCos(x, false, 20)
	cosNeg, cosNegNeg := decimalCos(x, true, 20)
	if decimalCmpMag(cosPos, cosNeg) != 0 || cosPosNeg != cosNegNeg {
		t.Errorf("decimalCos(-x) should equal decimalCos(x)")
	}
}

func TestDecimalTanMatchesSinOverCos(t *testing.T) {
	x := decimalFromFloat64(0.3)
	tan, tanNeg := decimalTan(x, false, 20)
	almostEqual(t, toFloatSigned(tan, tanNeg), math.Tan(0.3), 1e-10, "decimalTan(0.3)")
}

func TestDecimalAtanMatchesStandardLibraryAcrossRanges(t *testing.T) {
	cases := []float64{0.5, 2.0, 100.0, 0.0001}
	for _, v := range cases {
		x := decimalFromFloat64(v)
		res, resNeg := decimalAtan(x, false, 20)
		almostEqual(t, toFloatSigned(res, resNeg), math.Atan(v), 1e-9, "decimalAtan")
	}
}

func TestDecimalAsinAcosAreComplementary(t *testing.T) {
	x := decimalFromFloat64(0.3)
	asin, asinNeg, ok1 := decimalAsin(x, false, 20)
	acos, acosNeg, ok2 := decimalAcos(x, false, 20)
	if !ok1 || !ok2 {
		t.Fatalf("decimalAsin/decimalAcos unexpectedly rejected 0.3")
	}
	sum := sdecAdd(sdecOf(asin, asinNeg), sdecOf(acos, acosNeg))
	halfPi, ok := decimalDiv(decimalPi(20), decimalFromUint64(2), 20)
	if !ok {
		t.Fatalf("decimalDiv(pi, 2) failed")
	}
	almostEqual(t, toFloatSigned(sum.mag, sum.neg), decimalToFloat64(halfPi), 1e-9, "asin+acos")
}

func TestDecimalAsinRejectsOutOfDomainArgument(t *testing.T) {
	x := decimalFromFloat64(1.5)
	if _, _, ok := decimalAsin(x, false, 20); ok {
		t.Errorf("decimalAsin(1.5) should be rejected, domain is [-1, 1]")
	}
}

func TestDecimalErfIsOddAndMatchesStandardLibrary(t *testing.T) {
	x := decimalFromFloat64(1.0)
	pos, posNeg := decimalErf(x, false, 20)
	neg, negNeg := decimalErf(x, true, 20)
	if decimalCmpMag(pos, neg) != 0 || posNeg == negNeg {
		t.Errorf("decimalErf(-x) should equal -decimalErf(x)")
	}
	almostEqual(t, toFloatSigned(pos, posNeg), math.Erf(1.0), 1e-9, "decimalErf(1.0)")
}

func TestDecimalErfcComplementsErf(t *testing.T) {
	x := decimalFromFloat64(1.0)
	erf, erfNeg := decimalErf(x, false, 20)
	erfc, erfcNeg := decimalErfc(x, false, 20)
	sum := sdecAdd(sdecOf(erf, erfNeg), sdecOf(erfc, erfcNeg))
	almostEqual(t, toFloatSigned(sum.mag, sum.neg), 1.0, 1e-9, "erf+erfc")
}

func TestDecimalErfSaturatesBeyondCutoff(t *testing.T) {
	x := decimalFromFloat64(10.0)
	mag, neg := decimalErf(x, false, 20)
	if neg || decimalCmpMag(mag, decimalFromUint64(1)) != 0 {
		t.Errorf("decimalErf(10) should saturate to exactly 1")
	}
}

func TestDecimalTgammaMatchesFactorialAtPositiveIntegers(t *testing.T) {
	mag, neg, ok := decimalTgamma(decimalFromUint64(5), false, 20)
	if !ok {
		t.Fatalf("decimalTgamma(5) unexpectedly failed")
	}
	if neg || decimalCmpMag(mag, decimalFromUint64(24)) != 0 {
		t.Errorf("decimalTgamma(5) = %v (neg=%v), want 24", decimalToFloat64(mag), neg)
	}
}

func TestDecimalTgammaRejectsNonPositiveIntegers(t *testing.T) {
	if _, _, ok := decimalTgamma(decimalFromUint64(0), false, 20); ok {
		t.Errorf("decimalTgamma(0) should be rejected, it's a pole")
	}
	if _, _, ok := decimalTgamma(decimalFromUint64(3), true, 20); ok {
		t.Errorf("decimalTgamma(-3) should be rejected, it's a pole")
	}
}

func TestDecimalTgammaMatchesStandardLibraryAtNegativeHalf(t *testing.T) {
	mag, neg, ok := decimalTgamma(decimalFromFloat64(0.5), true, 20)
	if !ok {
		t.Fatalf("decimalTgamma(-0.5) unexpectedly failed")
	}
	almostEqual(t, toFloatSigned(mag, neg), math.Gamma(-0.5), 1e-8, "decimalTgamma(-0.5)")
}

func TestDecimalLgammaMatchesLogOfTgammaAtPositiveArgument(t *testing.T) {
	lg, lgNeg, ok := decimalLgamma(decimalFromUint64(5), false, 20)
	if !ok {
		t.Fatalf("decimalLgamma(5) unexpectedly failed")
	}
	almostEqual(t, toFloatSigned(lg, lgNeg), math.Log(24), 1e-9, "decimalLgamma(5)")
}
