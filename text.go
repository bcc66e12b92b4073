package rpl48

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Text objects hold a UTF-8 byte string as their payload directly; no
// length-prefixing beyond the object header is needed since the header
// already carries the payload length.

// NewText allocates a text object from a Go string.
func (vm *VM) NewText(s string) (Handle, Status) {
	return vm.newLeaf(TagText, []byte(s))
}

// AsText returns the string contents of a text object.
func (vm *VM) AsText(h Handle) (string, bool) {
	if vm.TagOf(h) != TagText {
		return "", false
	}
	return string(vm.payload(h)), true
}

// LegacyEncoding identifies a non-UTF-8 text encoding a host or file may
// present, for state.go's file-load path and any command that ingests
// text authored on hardware that predates Unicode calculators.
type LegacyEncoding int

const (
	LegacyASCII LegacyEncoding = iota
	LegacyLatin1
	LegacyUTF16LE
	LegacyUTF16BE
	LegacyUTF32LE
)

func (l LegacyEncoding) codec() encoding.Encoding {
	switch l {
	case LegacyLatin1:
		return charmap.ISO8859_1
	case LegacyUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case LegacyUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case LegacyUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	default:
		return charmap.ISO8859_1 // ASCII is a strict subset; decodes cleanly.
	}
}

// ImportLegacyText decodes b under enc and allocates the result as a
// text object.
func (vm *VM) ImportLegacyText(enc LegacyEncoding, b []byte) (Handle, Status) {
	out, err := enc.codec().NewDecoder().Bytes(b)
	if err != nil {
		return HandleInvalid, vm.Fail(ErrFile, "legacy text decode: %v", err)
	}
	return vm.NewText(string(out))
}
