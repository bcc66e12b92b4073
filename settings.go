package rpl48

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/variadico/lctime"
)

// DisplayMode selects how the renderer chooses between fixed and
// scientific notation for a decimal value.
type DisplayMode int

const (
	DisplayStd DisplayMode = iota
	DisplayFix
	DisplaySci
	DisplayEng
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayStd:
		return "Std"
	case DisplayFix:
		return "Fix"
	case DisplaySci:
		return "Sci"
	case DisplayEng:
		return "Eng"
	default:
		return "Std"
	}
}

// AngleUnit selects the unit trig commands consume and produce.
type AngleUnit int

const (
	AngleDegrees AngleUnit = iota
	AngleRadians
	AngleGradians
	AnglePiRadians
)

func (u AngleUnit) String() string {
	switch u {
	case AngleDegrees:
		return "deg"
	case AngleRadians:
		return "rad"
	case AngleGradians:
		return "grad"
	case AnglePiRadians:
		return "pirad"
	default:
		return "rad"
	}
}

// DateOrder controls status-bar date formatting.
type DateOrder int

const (
	DateOrderDMY DateOrder = iota
	DateOrderMDY
	DateOrderYMD
)

func (o DateOrder) String() string {
	switch o {
	case DateOrderDMY:
		return "DMY"
	case DateOrderMDY:
		return "MDY"
	case DateOrderYMD:
		return "YMD"
	default:
		return "DMY"
	}
}

// Settings is the process-wide record of display and behavior options,
// defaulting to a fresh-state configuration: `.` decimal mark, fancy
// exponents disabled, standard exponent 1.
type Settings struct {
	Precision int
	Display   DisplayMode
	DisplayN  int

	StandardExponent int
	MinSigDigits     int

	DecimalSeparator byte
	NumberSeparator  byte
	MantissaSpacing  int
	FractionSpacing  int

	TrailingDecimal bool
	FancyExponent   bool
	ExponentMarker  byte

	AngleUnit AngleUnit

	FractionIterations int
	FractionDigits     int

	TooManyDigitsError bool

	StatusShowDate    bool
	StatusShowTime    bool
	StatusShowSeconds bool
	Status24Hour      bool
	StatusShowVoltage bool

	DateOrder     DateOrder
	DateSeparator byte
}

// DefaultSettings returns the fresh-state settings a new VM starts
// with: `.` decimal mark, fancy exponents off, standard exponent 1.
func DefaultSettings() Settings {
	return Settings{
		Precision:          DefaultPrecisionKigits * 3,
		Display:            DisplayStd,
		DisplayN:           10,
		StandardExponent:   1,
		MinSigDigits:       0,
		DecimalSeparator:   '.',
		NumberSeparator:    0,
		MantissaSpacing:    3,
		FractionSpacing:    5,
		TrailingDecimal:    false,
		FancyExponent:      false,
		ExponentMarker:     'E',
		AngleUnit:          AngleDegrees,
		FractionIterations: 20,
		FractionDigits:     8,
		TooManyDigitsError: false,
		StatusShowDate:     true,
		StatusShowTime:     true,
		StatusShowSeconds:  false,
		Status24Hour:       true,
		StatusShowVoltage:  false,
		DateOrder:          DateOrderDMY,
		DateSeparator:      '/',
	}
}

// FormatStatusDate renders t for the status-bar clock according to the
// date-order/date-separator settings, via lctime.Strftime the way the
// teacher's date formatter builds a strftime format string from a few
// discrete options rather than hand-assembling digits with strconv.
func (s *Settings) FormatStatusDate(t time.Time) string {
	sep := string(s.DateSeparator)
	if sep == "\x00" {
		sep = "/"
	}
	var layout string
	switch s.DateOrder {
	case DateOrderMDY:
		layout = strings.Join([]string{"%m", "%d", "%Y"}, sep)
	case DateOrderYMD:
		layout = strings.Join([]string{"%Y", "%m", "%d"}, sep)
	default:
		layout = strings.Join([]string{"%d", "%m", "%Y"}, sep)
	}
	out := lctime.Strftime(layout, t)
	if !s.StatusShowTime {
		return out
	}
	timeLayout := "%H:%M"
	if !s.Status24Hour {
		timeLayout = "%I:%M %p"
	}
	if s.StatusShowSeconds {
		timeLayout = strings.Replace(timeLayout, "%M", "%M:%S", 1)
	}
	return out + " " + lctime.Strftime(timeLayout, t)
}

// toRadians converts a signed angle in the settings' active unit to
// radians, working at prec+a few guard digits so the trig functions
// that consume the result don't lose precision to the conversion.
func (vm *VM) toRadians(mag Decimal, neg bool, prec int) sdec {
	workPrec := prec + 8
	x := sdecOf(mag, neg)
	switch vm.settings.AngleUnit {
	case AngleDegrees:
		pi := decimalPi(workPrec)
		q, ok := sdecDiv(sdecMul(x, sdecOf(pi, false)), sdecInt(180), workPrec)
		if !ok {
			return sdec{}
		}
		return q
	case AngleGradians:
		pi := decimalPi(workPrec)
		q, ok := sdecDiv(sdecMul(x, sdecOf(pi, false)), sdecInt(200), workPrec)
		if !ok {
			return sdec{}
		}
		return q
	case AnglePiRadians:
		return sdecMul(x, sdecOf(decimalPi(workPrec), false))
	default:
		return x
	}
}

// fromRadians converts a radian value produced by an inverse trig
// function back into the settings' active angle unit.
func (vm *VM) fromRadians(rad sdec, prec int) sdec {
	workPrec := prec + 8
	switch vm.settings.AngleUnit {
	case AngleDegrees:
		pi := decimalPi(workPrec)
		q, ok := sdecDiv(sdecMul(rad, sdecInt(180)), sdecOf(pi, false), workPrec)
		if !ok {
			return sdec{}
		}
		return q
	case AngleGradians:
		pi := decimalPi(workPrec)
		q, ok := sdecDiv(sdecMul(rad, sdecInt(200)), sdecOf(pi, false), workPrec)
		if !ok {
			return sdec{}
		}
		return q
	case AnglePiRadians:
		pi := decimalPi(workPrec)
		q, ok := sdecDiv(rad, sdecOf(pi, false), workPrec)
		if !ok {
			return sdec{}
		}
		return q
	default:
		return rad
	}
}

// boolInt renders a bool as the 0/1 an INTEGER STO/RCL round-trips,
// matching how this engine has no dedicated boolean tag.
func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// separatorText renders a separator/marker byte as the one-character (or,
// for the unset value 0, empty) string a settings variable's STO/RCL
// intercept exchanges it as.
func separatorText(b byte) string {
	if b == 0 {
		return ""
	}
	return string(b)
}

// SettingsScript serializes s as a sequence of RPL assignment commands
// that, re-executed, restore it by storing into the reserved settings
// names settingsVars intercepts.
func (s *Settings) SettingsScript() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d 'PRECISION' STO\n", s.Precision)
	fmt.Fprintf(&b, "%q 'DISPLAYMODE' STO\n", s.Display.String())
	fmt.Fprintf(&b, "%d 'DISPLAYDIGITS' STO\n", s.DisplayN)
	fmt.Fprintf(&b, "%d 'STDEXPONENT' STO\n", s.StandardExponent)
	fmt.Fprintf(&b, "%d 'MINSIGDIGITS' STO\n", s.MinSigDigits)
	fmt.Fprintf(&b, "%q 'DECIMALSEPARATOR' STO\n", separatorText(s.DecimalSeparator))
	fmt.Fprintf(&b, "%q 'NUMBERSEPARATOR' STO\n", separatorText(s.NumberSeparator))
	fmt.Fprintf(&b, "%d 'MANTISSASPACING' STO\n", s.MantissaSpacing)
	fmt.Fprintf(&b, "%d 'FRACTIONSPACING' STO\n", s.FractionSpacing)
	fmt.Fprintf(&b, "%d 'TRAILINGDECIMAL' STO\n", boolInt(s.TrailingDecimal))
	fmt.Fprintf(&b, "%d 'FANCYEXPONENT' STO\n", boolInt(s.FancyExponent))
	fmt.Fprintf(&b, "%q 'EXPONENTMARKER' STO\n", separatorText(s.ExponentMarker))
	fmt.Fprintf(&b, "%q 'ANGLEUNIT' STO\n", s.AngleUnit.String())
	fmt.Fprintf(&b, "%d 'FRACTIONITERATIONS' STO\n", s.FractionIterations)
	fmt.Fprintf(&b, "%d 'FRACTIONDIGITS' STO\n", s.FractionDigits)
	fmt.Fprintf(&b, "%d 'TOOMANYDIGITSERROR' STO\n", boolInt(s.TooManyDigitsError))
	fmt.Fprintf(&b, "%d 'STATUSSHOWDATE' STO\n", boolInt(s.StatusShowDate))
	fmt.Fprintf(&b, "%d 'STATUSSHOWTIME' STO\n", boolInt(s.StatusShowTime))
	fmt.Fprintf(&b, "%d 'STATUSSHOWSECONDS' STO\n", boolInt(s.StatusShowSeconds))
	fmt.Fprintf(&b, "%d 'STATUS24HOUR' STO\n", boolInt(s.Status24Hour))
	fmt.Fprintf(&b, "%d 'STATUSSHOWVOLTAGE' STO\n", boolInt(s.StatusShowVoltage))
	fmt.Fprintf(&b, "%q 'DATEORDER' STO\n", s.DateOrder.String())
	fmt.Fprintf(&b, "%q 'DATESEPARATOR' STO\n", separatorText(s.DateSeparator))
	return b.String()
}
