package rpl48

import "testing"

func TestDecimalTextFixModeRoundsToFixedFractionDigits(t *testing.T) {
	d := Decimal{Kigits: []uint16{3, 141, 590}, Exp: -2} // 3.14159
	s := DefaultSettings()
	s.Display = DisplayFix
	s.DisplayN = 2
	if got := decimalText(d, false, s); got != "3.14" {
		t.Errorf("decimalText = %q, want %q", got, "3.14")
	}
}

func TestDecimalTextFixModeRestartsOnRoundingCascade(t *testing.T) {
	d := Decimal{Kigits: []uint16{9, 995}, Exp: -1} // 9.995
	s := DefaultSettings()
	s.Display = DisplayFix
	s.DisplayN = 2
	if got := decimalText(d, false, s); got != "10.00" {
		t.Errorf("decimalText = %q, want %q", got, "10.00")
	}
}

func TestDecimalTextSciModeFormatsMantissaAndExponent(t *testing.T) {
	d := Decimal{Kigits: []uint16{3, 141, 590}, Exp: -2} // 3.14159
	s := DefaultSettings()
	s.Display = DisplaySci
	s.DisplayN = 3
	if got := decimalText(d, false, s); got != "3.142E0" {
		t.Errorf("decimalText = %q, want %q", got, "3.142E0")
	}
}

func TestDecimalTextEngModeKeepsExponentAMultipleOfThree(t *testing.T) {
	d := Decimal{Kigits: []uint16{1, 234, 500}, Exp: -1} // 1234.5
	s := DefaultSettings()
	s.Display = DisplayEng
	s.DisplayN = 2
	if got := decimalText(d, false, s); got != "1.23E3" {
		t.Errorf("decimalText = %q, want %q", got, "1.23E3")
	}
}

func TestDecimalTextGroupsDigitsWhenSeparatorIsSet(t *testing.T) {
	d := decimalFromUint64(1234567)
	s := DefaultSettings()
	s.NumberSeparator = ','
	s.MantissaSpacing = 3
	if got := decimalText(d, false, s); got != "1,234,567." {
		t.Errorf("decimalText = %q, want %q", got, "1,234,567.")
	}
}

func TestDecimalTextHonorsCustomDecimalSeparatorAndExponentMarker(t *testing.T) {
	d := Decimal{Kigits: []uint16{250}, Exp: -1} // 0.25
	s := DefaultSettings()
	s.DecimalSeparator = ','
	if got := decimalText(d, false, s); got != "0,25" {
		t.Errorf("decimalText = %q, want %q", got, "0,25")
	}

	s2 := DefaultSettings()
	s2.Display = DisplaySci
	s2.DisplayN = 0
	s2.ExponentMarker = 'X'
	d2 := decimalFromUint64(5)
	if got := decimalText(d2, false, s2); got != "5X0" {
		t.Errorf("decimalText = %q, want %q", got, "5X0")
	}
}

func TestDecimalTextFancyExponentUsesSuperscriptDigits(t *testing.T) {
	d := decimalFromUint64(5)
	s := DefaultSettings()
	s.Display = DisplaySci
	s.DisplayN = 0
	s.FancyExponent = true
	if got := decimalText(d, false, s); got != "5×10⁰" {
		t.Errorf("decimalText = %q, want %q", got, "5×10⁰")
	}
}
