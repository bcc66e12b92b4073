package rpl48

// settingVar is a process-wide setting exposed through the ordinary
// STO/RCL vocabulary under a reserved name, so a saved state script
// (settings.go's SettingsScript) restores it with the same two commands
// used for directory variables instead of needing a dedicated loader.
type settingVar struct {
	get func(vm *VM) (Handle, Status)
	set func(vm *VM, h Handle) Status
}

// settingsVars maps every reserved name STO/RCL/PURGE intercept to its
// getter/setter pair. Populated by an init func rather than a literal so
// each entry can close over the Settings field it reads and writes.
var settingsVars = map[string]settingVar{}

func init() {
	registerIntSetting("PRECISION", func(s *Settings) *int { return &s.Precision })
	registerIntSetting("DISPLAYDIGITS", func(s *Settings) *int { return &s.DisplayN })
	registerIntSetting("STDEXPONENT", func(s *Settings) *int { return &s.StandardExponent })
	registerIntSetting("MINSIGDIGITS", func(s *Settings) *int { return &s.MinSigDigits })
	registerIntSetting("MANTISSASPACING", func(s *Settings) *int { return &s.MantissaSpacing })
	registerIntSetting("FRACTIONSPACING", func(s *Settings) *int { return &s.FractionSpacing })
	registerIntSetting("FRACTIONITERATIONS", func(s *Settings) *int { return &s.FractionIterations })
	registerIntSetting("FRACTIONDIGITS", func(s *Settings) *int { return &s.FractionDigits })

	registerBoolSetting("TRAILINGDECIMAL", func(s *Settings) *bool { return &s.TrailingDecimal })
	registerBoolSetting("FANCYEXPONENT", func(s *Settings) *bool { return &s.FancyExponent })
	registerBoolSetting("TOOMANYDIGITSERROR", func(s *Settings) *bool { return &s.TooManyDigitsError })
	registerBoolSetting("STATUSSHOWDATE", func(s *Settings) *bool { return &s.StatusShowDate })
	registerBoolSetting("STATUSSHOWTIME", func(s *Settings) *bool { return &s.StatusShowTime })
	registerBoolSetting("STATUSSHOWSECONDS", func(s *Settings) *bool { return &s.StatusShowSeconds })
	registerBoolSetting("STATUS24HOUR", func(s *Settings) *bool { return &s.Status24Hour })
	registerBoolSetting("STATUSSHOWVOLTAGE", func(s *Settings) *bool { return &s.StatusShowVoltage })

	registerCharSetting("DECIMALSEPARATOR", func(s *Settings) *byte { return &s.DecimalSeparator })
	registerCharSetting("NUMBERSEPARATOR", func(s *Settings) *byte { return &s.NumberSeparator })
	registerCharSetting("EXPONENTMARKER", func(s *Settings) *byte { return &s.ExponentMarker })
	registerCharSetting("DATESEPARATOR", func(s *Settings) *byte { return &s.DateSeparator })

	settingsVars["DISPLAYMODE"] = settingVar{
		get: func(vm *VM) (Handle, Status) { return vm.NewText(vm.settings.Display.String()) },
		set: func(vm *VM, h Handle) Status {
			s, ok := vm.AsText(h)
			if !ok {
				return vm.Fail(ErrType, "DISPLAYMODE expects a string")
			}
			mode, ok := parseDisplayMode(s)
			if !ok {
				return vm.Fail(ErrType, "unrecognized display mode %q", s)
			}
			vm.settings.Display = mode
			return StatusOK
		},
	}
	settingsVars["ANGLEUNIT"] = settingVar{
		get: func(vm *VM) (Handle, Status) { return vm.NewText(vm.settings.AngleUnit.String()) },
		set: func(vm *VM, h Handle) Status {
			s, ok := vm.AsText(h)
			if !ok {
				return vm.Fail(ErrType, "ANGLEUNIT expects a string")
			}
			unit, ok := parseAngleUnit(s)
			if !ok {
				return vm.Fail(ErrType, "unrecognized angle unit %q", s)
			}
			vm.settings.AngleUnit = unit
			return StatusOK
		},
	}
	settingsVars["DATEORDER"] = settingVar{
		get: func(vm *VM) (Handle, Status) { return vm.NewText(vm.settings.DateOrder.String()) },
		set: func(vm *VM, h Handle) Status {
			s, ok := vm.AsText(h)
			if !ok {
				return vm.Fail(ErrType, "DATEORDER expects a string")
			}
			order, ok := parseDateOrder(s)
			if !ok {
				return vm.Fail(ErrType, "unrecognized date order %q", s)
			}
			vm.settings.DateOrder = order
			return StatusOK
		},
	}
}

func registerIntSetting(name string, field func(s *Settings) *int) {
	settingsVars[name] = settingVar{
		get: func(vm *VM) (Handle, Status) { return vm.NewInteger(int64(*field(&vm.settings))) },
		set: func(vm *VM, h Handle) Status {
			v, ok := vm.AsInteger(h)
			if !ok {
				return vm.Fail(ErrType, "%s expects an integer", name)
			}
			*field(&vm.settings) = int(v)
			return StatusOK
		},
	}
}

func registerBoolSetting(name string, field func(s *Settings) *bool) {
	settingsVars[name] = settingVar{
		get: func(vm *VM) (Handle, Status) {
			v := int64(0)
			if *field(&vm.settings) {
				v = 1
			}
			return vm.NewInteger(v)
		},
		set: func(vm *VM, h Handle) Status {
			v, ok := vm.AsInteger(h)
			if !ok {
				return vm.Fail(ErrType, "%s expects 0 or 1", name)
			}
			*field(&vm.settings) = v != 0
			return StatusOK
		},
	}
}

// registerCharSetting handles the settings that hold a single separator
// or marker byte; 0 means "no separator" and round-trips as an empty
// string, matching SettingsScript's own separatorText convention.
func registerCharSetting(name string, field func(s *Settings) *byte) {
	settingsVars[name] = settingVar{
		get: func(vm *VM) (Handle, Status) { return vm.NewText(separatorText(*field(&vm.settings))) },
		set: func(vm *VM, h Handle) Status {
			s, ok := vm.AsText(h)
			if !ok {
				return vm.Fail(ErrType, "%s expects a one-character string", name)
			}
			switch len(s) {
			case 0:
				*field(&vm.settings) = 0
			case 1:
				*field(&vm.settings) = s[0]
			default:
				return vm.Fail(ErrType, "%s expects a one-character string", name)
			}
			return StatusOK
		},
	}
}

func parseDisplayMode(s string) (DisplayMode, bool) {
	switch s {
	case "Std":
		return DisplayStd, true
	case "Fix":
		return DisplayFix, true
	case "Sci":
		return DisplaySci, true
	case "Eng":
		return DisplayEng, true
	}
	return DisplayStd, false
}

func parseAngleUnit(s string) (AngleUnit, bool) {
	switch s {
	case "deg":
		return AngleDegrees, true
	case "rad":
		return AngleRadians, true
	case "grad":
		return AngleGradians, true
	case "pirad":
		return AnglePiRadians, true
	}
	return AngleRadians, false
}

func parseDateOrder(s string) (DateOrder, bool) {
	switch s {
	case "DMY":
		return DateOrderDMY, true
	case "MDY":
		return DateOrderMDY, true
	case "YMD":
		return DateOrderYMD, true
	}
	return DateOrderDMY, false
}
