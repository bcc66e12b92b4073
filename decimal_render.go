package rpl48

import (
	"strconv"
	"strings"
)

// decimalText renders d (with sign) according to s's display mode: Std
// auto-switches between fixed and scientific notation by magnitude and
// shows the full stored precision, while Fix/Sci/Eng round to a fixed
// digit count at render time and never touch the stored value. Rounding
// is half-up on the first discarded digit; when that carry cascades all
// the way through the kept digits (like 9.995 rounding to 10.00 rather
// than 9.100), the digit count simply grows by one and the point shifts
// with it instead of truncating the carry away.
func decimalText(d Decimal, neg bool, s Settings) string {
	d = d.trim()
	if d.IsZero() {
		return applySeparator(zeroText(s), s)
	}
	digits := kigitsToDigitString(d.Kigits)
	pointPos := len(digits) + d.Exp*3
	digits = trimTrailingZeroDigits(digits, pointPos)

	var out string
	switch s.Display {
	case DisplayFix:
		rd, np := roundDigits(digits, pointPos, pointPos+s.DisplayN)
		out = formatFixed(rd, np, s.DisplayN, s)
	case DisplaySci:
		rd, np := roundDigits(digits, pointPos, 1+s.DisplayN)
		out = formatScientific(rd, np, s)
	case DisplayEng:
		rd, np := roundDigits(digits, pointPos, 1+s.DisplayN)
		out = formatEngineering(rd, np, s)
	default:
		if pointPos > -6 && pointPos <= len(digits)+12 {
			out = formatFixed(digits, pointPos, -1, s)
		} else {
			out = formatScientific(digits, pointPos, s)
		}
	}
	if neg {
		out = "-" + out
	}
	return applySeparator(out, s)
}

func zeroText(s Settings) string {
	if s.Display == DisplayFix || s.Display == DisplaySci || s.Display == DisplayEng {
		if s.DisplayN > 0 {
			return "0." + strings.Repeat("0", s.DisplayN)
		}
		if s.TrailingDecimal {
			return "0."
		}
		return "0"
	}
	return "0."
}

// trimTrailingZeroDigits drops zero digits off the end of a kigit-group
// digit string down to (but never past) the integer/fraction boundary at
// pointPos: base-1000 grouping pads a value like 0.25 out to the kigit
// "250", and the padding zero is not significant precision, just an
// artifact of the group width.
func trimTrailingZeroDigits(digits string, pointPos int) string {
	min := pointPos
	if min < 0 {
		min = 0
	}
	end := len(digits)
	for end > min && digits[end-1] == '0' {
		end--
	}
	if end == 0 {
		return digits[:1]
	}
	return digits[:end]
}

func kigitsToDigitString(kigits []uint16) string {
	if len(kigits) == 0 {
		return "0"
	}
	b := make([]byte, 0, len(kigits)*3)
	b = appendUint(b, uint64(kigits[0]))
	for _, k := range kigits[1:] {
		b = appendUintPadded(b, uint64(k), 3)
	}
	return string(b)
}

// incDecimalDigits adds one to a string of decimal digits, reporting
// whether the result grew a new leading digit.
func incDecimalDigits(s string) (string, bool) {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return "1" + string(b), true
}

// roundDigits retains the first keep digits of digits, rounding half-up
// on the first discarded one. A carry cascade is never truncated back
// down to keep digits — the grown string and an incremented pointPos are
// returned together, so the caller's digit-count-to-fracDigits relation
// stays exact.
func roundDigits(digits string, pointPos, keep int) (string, int) {
	if keep <= 0 {
		if len(digits) > 0 && digits[0] >= '5' {
			return "1", pointPos + 1
		}
		return "0", pointPos
	}
	if keep >= len(digits) {
		return digits + strings.Repeat("0", keep-len(digits)), pointPos
	}
	kept := digits[:keep]
	if digits[keep] >= '5' {
		grown, carry := incDecimalDigits(kept)
		if carry {
			return grown, pointPos + 1
		}
		return grown, pointPos
	}
	return kept, pointPos
}

func isAllZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// formatFixed renders rd (digits with the point at np) in fixed
// notation. fracDigits pins the number of digits shown after the point;
// -1 means show exactly the digits present, the Std-mode behavior.
func formatFixed(rd string, np, fracDigits int, s Settings) string {
	if isAllZeroDigits(rd) {
		return zeroText(s)
	}
	var intPart string
	switch {
	case np <= 0:
		intPart = "0"
	case np >= len(rd):
		intPart = rd + strings.Repeat("0", np-len(rd))
	default:
		intPart = rd[:np]
	}

	var fracPart string
	switch {
	case np < 0:
		fracPart = strings.Repeat("0", -np) + rd
	case np < len(rd):
		fracPart = rd[np:]
	default:
		fracPart = ""
	}
	if fracDigits >= 0 {
		if len(fracPart) < fracDigits {
			fracPart += strings.Repeat("0", fracDigits-len(fracPart))
		} else {
			fracPart = fracPart[:fracDigits]
		}
	}

	if fracPart == "" {
		if fracDigits < 0 {
			return intPart + "."
		}
		if fracDigits == 0 && s.TrailingDecimal {
			return intPart + "."
		}
		if fracDigits == 0 {
			return intPart
		}
	}
	return intPart + "." + fracPart
}

func formatScientific(rd string, np int, s Settings) string {
	e := np - 1
	mantissa := rd[:1]
	frac := ""
	if len(rd) > 1 {
		frac = rd[1:]
	}
	return joinMantissaExponent(mantissa, frac, e, s)
}

func formatEngineering(rd string, np int, s Settings) string {
	e := np - 1
	shift := ((e % 3) + 3) % 3
	e3 := e - shift
	intDigits := shift + 1
	for len(rd) < intDigits {
		rd += "0"
	}
	mantissa := rd[:intDigits]
	frac := rd[intDigits:]
	return joinMantissaExponent(mantissa, frac, e3, s)
}

func joinMantissaExponent(mantissa, frac string, exp int, s Settings) string {
	var b strings.Builder
	b.WriteString(mantissa)
	if frac != "" || s.TrailingDecimal {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if s.FancyExponent {
		b.WriteString("×10")
		b.WriteString(superscriptInt(exp))
		return b.String()
	}
	marker := s.ExponentMarker
	if marker == 0 {
		marker = 'E'
	}
	b.WriteByte(marker)
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

var superscriptDigit = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func superscriptInt(v int) string {
	s := strconv.Itoa(v)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteRune(superscriptDigit[s[i]])
	}
	return b.String()
}

// applySeparator swaps the rendered text's literal `.` decimal mark for
// the configured DecimalSeparator and groups the integer and fractional
// digit runs by MantissaSpacing/FractionSpacing when NumberSeparator is
// set; a zero separator byte means grouping is disabled, matching the
// default fresh-state settings.
func applySeparator(s string, set Settings) string {
	sign := ""
	rest := s
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}
	dot := strings.IndexByte(rest, '.')
	intPart, fracPart, hasDot := rest, "", false
	if dot >= 0 {
		intPart, fracPart, hasDot = rest[:dot], rest[dot+1:], true
	}
	// Only the fixed-notation leading digit run is pure decimal digits;
	// scientific/engineering mantissas can carry an exponent suffix that
	// must not be grouped, so bail out unless intPart is all digits.
	if set.NumberSeparator != 0 && allDigits(intPart) {
		intPart = groupFromRight(intPart, set.MantissaSpacing, set.NumberSeparator)
	}
	if set.NumberSeparator != 0 && allDigits(fracPart) {
		fracPart = groupFromLeft(fracPart, set.FractionSpacing, set.NumberSeparator)
	}
	sep := "."
	if set.DecimalSeparator != 0 {
		sep = string(set.DecimalSeparator)
	}
	if !hasDot {
		return sign + intPart
	}
	return sign + intPart + sep + fracPart
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func groupFromRight(s string, spacing int, sep byte) string {
	if spacing <= 0 || len(s) <= spacing {
		return s
	}
	first := len(s) % spacing
	if first == 0 {
		first = spacing
	}
	var b strings.Builder
	b.WriteString(s[:first])
	for i := first; i < len(s); i += spacing {
		b.WriteByte(sep)
		b.WriteString(s[i : i+spacing])
	}
	return b.String()
}

func groupFromLeft(s string, spacing int, sep byte) string {
	if spacing <= 0 || len(s) <= spacing {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += spacing {
		if i > 0 {
			b.WriteByte(sep)
		}
		end := i + spacing
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}
