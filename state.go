package rpl48

import (
	"io"
	"os"
	"sort"
)

// SaveState serializes the whole session — settings, every HOME-directory
// variable, and the value stack bottom to top — as a sequence of RPL
// commands that, re-executed from a fresh VM, reconstruct it. The
// settings script always forces `.` as the decimal mark, fancy
// exponents disabled, and standard exponent 1, regardless of the
// session's current display settings, so a saved file parses
// unambiguously no matter what display mode wrote it or what display
// mode later loads it.
func (vm *VM) SaveState(w io.Writer) error {
	canon := vm.settings
	canon.DecimalSeparator = '.'
	canon.FancyExponent = false
	canon.StandardExponent = 1

	var out []byte
	out = append(out, canon.SettingsScript()...)

	home := vm.dirStack[0]
	names := make([]string, 0, len(home.bindings))
	for n := range home.bindings {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		out = append(out, vm.RenderWithSettings(home.bindings[n], canon)...)
		out = append(out, " '"...)
		out = append(out, n...)
		out = append(out, "' STO\n"...)
	}

	depth := vm.Depth()
	for i := depth - 1; i >= 0; i-- {
		h, st := vm.Peek(i)
		if st != StatusOK {
			return vm.LastError()
		}
		out = append(out, vm.RenderWithSettings(h, canon)...)
		out = append(out, '\n')
	}

	if _, err := w.Write(out); err != nil {
		vm.Fail(ErrFile, "writing state: %v", err)
		return vm.LastError()
	}
	return nil
}

// SaveStatePath writes the session state to a .48s file at path,
// creating or truncating it.
func (vm *VM) SaveStatePath(path string) error {
	f, err := os.Create(path)
	if err != nil {
		vm.Fail(ErrFile, "creating state file: %v", err)
		return vm.LastError()
	}
	defer f.Close()
	return vm.SaveState(f)
}

// LoadState reads r as a sequence of RPL commands and runs them against
// the VM, the save format's own load path. If the bytes begin with a
// UTF-16 byte-order mark — the two-byte encoding marker a legacy
// ASCII-transfer-mode export would carry — they are decoded through
// ImportLegacyText first.
func (vm *VM) LoadState(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		vm.Fail(ErrFile, "reading state: %v", err)
		return vm.LastError()
	}
	if enc, ok := sniffLegacyEncoding(data); ok {
		h, st := vm.ImportLegacyText(enc, data)
		if st != StatusOK {
			return vm.LastError()
		}
		s, _ := vm.AsText(h)
		data = []byte(s)
	}
	return vm.EvalString(string(data))
}

// LoadStatePath opens path and loads it via LoadState.
func (vm *VM) LoadStatePath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		vm.Fail(ErrFile, "opening state file: %v", err)
		return vm.LastError()
	}
	defer f.Close()
	return vm.LoadState(f)
}

// sniffLegacyEncoding reports the legacy text encoding a state file's
// leading bytes indicate, if any.
func sniffLegacyEncoding(b []byte) (LegacyEncoding, bool) {
	if len(b) < 2 {
		return 0, false
	}
	switch {
	case b[0] == 0xFF && b[1] == 0xFE:
		return LegacyUTF16LE, true
	case b[0] == 0xFE && b[1] == 0xFF:
		return LegacyUTF16BE, true
	}
	return 0, false
}
