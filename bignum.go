package rpl48

// Bignum is an arbitrary-precision non-negative integer magnitude,
// represented as base-1e9 limbs, least-significant first, with no
// trailing zero limb (the zero value is the empty limb slice). Sign
// lives outside the magnitude, at the Tag level (TagBignum vs
// TagNegBignum), the same convention integer.go uses for machine ints.
// Grounded on the limb-vector big-integer designs used throughout the
// retrieval pack's numeric libraries, adapted here to a base chosen so a
// limb pair never overflows a uint64 product.
type Bignum struct {
	limbs []uint32
}

const bignumBase = 1000000000

func bignumFromUint64(v uint64) Bignum {
	var limbs []uint32
	for v > 0 {
		limbs = append(limbs, uint32(v%bignumBase))
		v /= bignumBase
	}
	return Bignum{limbs: limbs}
}

func (b Bignum) trim() Bignum {
	n := len(b.limbs)
	for n > 0 && b.limbs[n-1] == 0 {
		n--
	}
	return Bignum{limbs: b.limbs[:n]}
}

// IsZero reports whether the magnitude is zero.
func (b Bignum) IsZero() bool { return len(b.trim().limbs) == 0 }

// Cmp compares two magnitudes: -1, 0, or 1.
func (a Bignum) Cmp(b Bignum) int {
	a, b = a.trim(), b.trim()
	if len(a.limbs) != len(b.limbs) {
		if len(a.limbs) < len(b.limbs) {
			return -1
		}
		return 1
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns a+b.
func (a Bignum) Add(b Bignum) Bignum {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}
	out := make([]uint32, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(a.limbs) {
			x = uint64(a.limbs[i])
		}
		if i < len(b.limbs) {
			y = uint64(b.limbs[i])
		}
		s := x + y + carry
		out[i] = uint32(s % bignumBase)
		carry = s / bignumBase
	}
	out[n] = uint32(carry)
	return Bignum{limbs: out}.trim()
}

// Sub returns a-b. The caller must ensure a >= b; otherwise the result
// is meaningless (callers compare with Cmp first and swap the sign).
func (a Bignum) Sub(b Bignum) Bignum {
	out := make([]uint32, len(a.limbs))
	var borrow int64
	for i := range a.limbs {
		x := int64(a.limbs[i]) - borrow
		if i < len(b.limbs) {
			x -= int64(b.limbs[i])
		}
		if x < 0 {
			x += bignumBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(x)
	}
	return Bignum{limbs: out}.trim()
}

// Mul returns a*b via schoolbook multiplication.
func (a Bignum) Mul(b Bignum) Bignum {
	if a.IsZero() || b.IsZero() {
		return Bignum{}
	}
	out := make([]uint64, len(a.limbs)+len(b.limbs))
	for i, av := range a.limbs {
		var carry uint64
		for j, bv := range b.limbs {
			cur := out[i+j] + uint64(av)*uint64(bv) + carry
			out[i+j] = cur % bignumBase
			carry = cur / bignumBase
		}
		k := i + len(b.limbs)
		for carry > 0 {
			cur := out[k] + carry
			out[k] = cur % bignumBase
			carry = cur / bignumBase
			k++
		}
	}
	limbs := make([]uint32, len(out))
	for i, v := range out {
		limbs[i] = uint32(v)
	}
	return Bignum{limbs: limbs}.trim()
}

// QuoRem returns a/b and a%b via long division, one base-1e9 digit of
// the quotient at a time. Panics if b is zero; callers must check first
// via the DivideByZero-error path in arith.go.
func (a Bignum) QuoRem(b Bignum) (q, r Bignum) {
	if b.IsZero() {
		panic("rpl48: Bignum division by zero")
	}
	rem := Bignum{}
	quo := make([]uint32, len(a.limbs))
	for i := len(a.limbs) - 1; i >= 0; i-- {
		rem = rem.shiftInLimb(a.limbs[i])
		lo, hi := uint32(0), uint32(bignumBase-1)
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if b.Mul(bignumFromUint64(uint64(mid))).Cmp(rem) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		quo[i] = lo
		rem = rem.Sub(b.Mul(bignumFromUint64(uint64(lo))))
	}
	return Bignum{limbs: quo}.trim(), rem
}

func (a Bignum) shiftInLimb(v uint32) Bignum {
	out := make([]uint32, len(a.limbs)+1)
	copy(out[1:], a.limbs)
	out[0] = v
	return Bignum{limbs: out}.trim()
}

// String renders the magnitude in decimal.
func (a Bignum) String() string {
	a = a.trim()
	if len(a.limbs) == 0 {
		return "0"
	}
	s := make([]byte, 0, len(a.limbs)*9)
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if i == len(a.limbs)-1 {
			s = appendUint(s, uint64(a.limbs[i]))
		} else {
			s = appendUintPadded(s, uint64(a.limbs[i]), 9)
		}
	}
	return string(s)
}

func appendUint(b []byte, v uint64) []byte {
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	reverseFrom(b, start)
	return b
}

func appendUintPadded(b []byte, v uint64, width int) []byte {
	start := len(b)
	for i := 0; i < width; i++ {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	reverseFrom(b, start)
	return b
}

func reverseFrom(b []byte, start int) {
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// bignumFromDecimalDigits parses a run of ASCII decimal digits (no sign,
// no leading-zero stripping requirement) into a Bignum.
func bignumFromDecimalDigits(digits string) Bignum {
	b := Bignum{}
	ten := bignumFromUint64(10)
	for i := 0; i < len(digits); i++ {
		b = b.Mul(ten).Add(bignumFromUint64(uint64(digits[i] - '0')))
	}
	return b
}

// payload encodes the magnitude as a VLI limb count followed by VLI
// limbs, least-significant first.
func (a Bignum) encode() []byte {
	a = a.trim()
	var buf []byte
	buf = PutVLI(buf, uint64(len(a.limbs)))
	for _, l := range a.limbs {
		buf = PutVLI(buf, uint64(l))
	}
	return buf
}

func decodeBignum(b []byte) Bignum {
	n, off := GetVLI(b)
	limbs := make([]uint32, n)
	for i := uint64(0); i < n; i++ {
		v, k := GetVLI(b[off:])
		limbs[i] = uint32(v)
		off += k
	}
	return Bignum{limbs: limbs}
}
