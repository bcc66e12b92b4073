package rpl48

import (
	"bytes"
	"strings"
	"testing"
)

func TestSaveStateThenLoadStateRoundTripsVariablesAndStack(t *testing.T) {
	src := NewVM(DefaultHeapSize)
	evalOrFatal(t, src, "42 'ANSWER' STO")
	evalOrFatal(t, src, "1")
	evalOrFatal(t, src, "2")
	evalOrFatal(t, src, "3")

	var buf bytes.Buffer
	if err := src.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	dst := NewVM(DefaultHeapSize)
	if err := dst.LoadState(&buf); err != nil {
		t.Fatalf("LoadState: %v\nstate file was:\n%s", err, buf.String())
	}

	if dst.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", dst.Depth())
	}
	for depth, want := range []int64{3, 2, 1} {
		h, st := dst.Peek(depth)
		if st != StatusOK {
			t.Fatalf("Peek(%d): status %v", depth, st)
		}
		if got, _ := dst.AsInteger(h); got != want {
			t.Errorf("Peek(%d) = %d, want %d", depth, got, want)
		}
	}

	if err := dst.EvalString("'ANSWER' RCL"); err != nil {
		t.Fatalf("EvalString: %v", err)
	}
	if got := dst.RenderTop(); got != "42" {
		t.Errorf("RenderTop() = %q, want %q", got, "42")
	}
}

func TestSaveStateForcesCanonicalDisplaySettings(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	s := vm.Settings()
	s.DecimalSeparator = ','
	s.FancyExponent = true
	s.StandardExponent = 3
	vm.SetSettings(s)

	var buf bytes.Buffer
	if err := vm.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 'STDEXPONENT' STO") {
		t.Errorf("saved state does not force standard exponent 1:\n%s", out)
	}
	// The VM's own live settings are untouched by saving.
	if vm.Settings().StandardExponent != 3 {
		t.Errorf("SaveState mutated the live settings; StandardExponent = %d, want 3", vm.Settings().StandardExponent)
	}
}

// TestLoadStateRestoresSettingsNotJustVariables reloads a saved state into
// a fresh VM and checks that the settings script actually mutates
// vm.settings through the STO intercept, rather than landing as ordinary
// HOME variables that leave the reload a no-op.
func TestLoadStateRestoresSettingsNotJustVariables(t *testing.T) {
	src := NewVM(DefaultHeapSize)
	s := src.Settings()
	s.Precision = 25
	s.Display = DisplayFix
	s.DisplayN = 6
	s.AngleUnit = AngleGradians
	s.TrailingDecimal = true
	s.MantissaSpacing = 0
	src.SetSettings(s)

	var buf bytes.Buffer
	if err := src.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	dst := NewVM(DefaultHeapSize)
	if err := dst.LoadState(&buf); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	got := dst.Settings()
	if got.Precision != 25 {
		t.Errorf("Precision = %d, want 25", got.Precision)
	}
	if got.Display != DisplayFix {
		t.Errorf("Display = %v, want DisplayFix", got.Display)
	}
	if got.DisplayN != 6 {
		t.Errorf("DisplayN = %d, want 6", got.DisplayN)
	}
	if got.AngleUnit != AngleGradians {
		t.Errorf("AngleUnit = %v, want AngleGradians", got.AngleUnit)
	}
	if !got.TrailingDecimal {
		t.Error("TrailingDecimal = false, want true")
	}
	if got.MantissaSpacing != 0 {
		t.Errorf("MantissaSpacing = %d, want 0", got.MantissaSpacing)
	}

	// A reserved setting name is a live VM field, not an ordinary HOME
	// binding: recalling it must not find a directory variable.
	if _, ok := dst.dirStack[0].bindings["PRECISION"]; ok {
		t.Error("PRECISION leaked into HOME bindings instead of being intercepted")
	}
}

// TestPurgeRefusesReservedSettingName checks that PURGE on a settings
// name fails instead of silently doing nothing (there is nothing to
// delete from the bindings map, since the name was never stored there).
func TestPurgeRefusesReservedSettingName(t *testing.T) {
	vm := NewVM(DefaultHeapSize)
	if err := vm.EvalString("'PRECISION' PURGE"); err == nil {
		t.Error("PURGE on a reserved setting name should fail, got nil error")
	}
}

func TestSniffLegacyEncodingDetectsUTF16BOM(t *testing.T) {
	if _, ok := sniffLegacyEncoding([]byte{0x41, 0x42}); ok {
		t.Error("plain ASCII bytes should not be reported as legacy-encoded")
	}
	enc, ok := sniffLegacyEncoding([]byte{0xFF, 0xFE, 0x31, 0x00})
	if !ok || enc != LegacyUTF16LE {
		t.Errorf("sniffLegacyEncoding(LE BOM) = (%v, %v), want (LegacyUTF16LE, true)", enc, ok)
	}
	enc, ok = sniffLegacyEncoding([]byte{0xFE, 0xFF, 0x00, 0x31})
	if !ok || enc != LegacyUTF16BE {
		t.Errorf("sniffLegacyEncoding(BE BOM) = (%v, %v), want (LegacyUTF16BE, true)", enc, ok)
	}
}
