package rpl48

import "strings"

// renderState accumulates rendered text for one top-level Render call.
// Passed by pointer through the dispatch table's Render opcode so a
// container type can recurse into its children without each level
// allocating its own buffer.
type renderState struct {
	vm       *VM
	settings Settings
	buf      strings.Builder
}

// Render returns the RPL source text for the object at h, formatted per
// the VM's live settings.
func (vm *VM) Render(h Handle) string {
	return vm.RenderWithSettings(h, vm.settings)
}

// RenderWithSettings renders h as Render does, but under an explicit
// Settings value instead of the VM's live one — used by SaveState to
// force a canonical decimal mark and exponent form regardless of the
// session's current display settings.
func (vm *VM) RenderWithSettings(h Handle, s Settings) string {
	rs := &renderState{vm: vm, settings: s}
	rs.render(h)
	return rs.buf.String()
}

func (rs *renderState) render(h Handle) {
	if ht := handlerFor(rs.vm, h); ht.Render != nil {
		ht.Render(rs.vm, h, rs)
		return
	}
	rs.renderDefault(h)
}

func (rs *renderState) renderDefault(h Handle) {
	vm := rs.vm
	tag := vm.TagOf(h)
	switch {
	case tag == TagInteger || tag == TagNegInteger || tag == TagBignum || tag == TagNegBignum:
		mag, neg, _ := vm.AsBignum(h)
		if neg {
			rs.buf.WriteByte('-')
		}
		rs.buf.WriteString(mag.String())
	case tag == TagHexInteger, tag == TagDecInteger, tag == TagOctInteger, tag == TagBinInteger:
		rs.renderBased(h, tag)
	case tag.IsFraction():
		f, _ := vm.AsFraction(h)
		rs.render(f.Num)
		rs.buf.WriteByte('/')
		rs.render(f.Den)
	case tag.IsDecimal():
		d, neg, _ := vm.AsDecimal(h)
		rs.buf.WriteString(decimalText(d, neg, rs.settings))
	case tag.IsComplex():
		rs.renderComplex(h, tag)
	case tag == TagSymbol:
		name, _ := vm.AsSymbol(h)
		rs.buf.WriteString(name)
	case tag == TagText:
		s, _ := vm.AsText(h)
		rs.buf.WriteByte('"')
		rs.buf.WriteString(strings.ReplaceAll(s, `"`, `\"`))
		rs.buf.WriteByte('"')
	case tag == TagEquation:
		p := vm.payload(h)
		rs.buf.WriteByte('\'')
		rs.render(Handle(getU32(p[0:])))
		rs.buf.WriteByte('\'')
	case tag == TagList:
		rs.renderSeq(h, "{ ", " }")
	case tag == TagVector:
		rs.renderSeq(h, "[ ", " ]")
	case tag == TagMatrix:
		rs.renderSeq(h, "[ ", " ]")
	case tag == TagProgram:
		rs.renderProgram(h)
	case tag == TagBlock:
		rs.renderSeq(h, "{{ ", " }}")
	case tag == TagLoopDoUntil:
		rs.renderDoUntil(h)
	case tag == TagLoopWhileRepeat:
		rs.renderWhileRepeat(h)
	case tag == TagLoopStartNext:
		rs.renderStart(h, "NEXT")
	case tag == TagLoopStartStep:
		rs.renderStart(h, "STEP")
	case tag == TagLoopForNext:
		rs.renderFor(h, "NEXT")
	case tag == TagLoopForStep:
		rs.renderFor(h, "STEP")
	case tag == TagDirectory:
		rs.buf.WriteString("DIR")
	case tag.IsCommand():
		rs.buf.WriteString(tag.String())
	default:
		rs.buf.WriteString(tag.String())
	}
}

func (rs *renderState) renderBased(h Handle, tag Tag) {
	mag, _, _ := rs.vm.AsBignum(h)
	var base uint64
	var suffix byte
	switch tag {
	case TagHexInteger:
		base, suffix = 16, 'h'
	case TagDecInteger:
		base, suffix = 10, 'd'
	case TagOctInteger:
		base, suffix = 8, 'o'
	case TagBinInteger:
		base, suffix = 2, 'b'
	}
	rs.buf.WriteByte('#')
	rs.buf.WriteString(renderBaseDigits(mag, base))
	rs.buf.WriteByte(suffix)
}

const baseDigitAlphabet = "0123456789ABCDEF"

func renderBaseDigits(mag Bignum, base uint64) string {
	if mag.IsZero() {
		return "0"
	}
	var digits []byte
	baseB := bignumFromUint64(base)
	for !mag.IsZero() {
		var d Bignum
		mag, d = mag.QuoRem(baseB)
		v, _ := bignumToUint64(d)
		digits = append(digits, baseDigitAlphabet[v])
	}
	reverseFrom(digits, 0)
	return string(digits)
}

func (rs *renderState) renderComplex(h Handle, tag Tag) {
	p := rs.vm.payload(h)
	a, b := Handle(getU32(p[0:])), Handle(getU32(p[4:]))
	rs.buf.WriteByte('(')
	rs.render(a)
	rs.buf.WriteByte(',')
	rs.render(b)
	rs.buf.WriteByte(')')
	if tag == TagPolar {
		rs.buf.WriteString("∠")
	}
}

func (rs *renderState) renderSeq(h Handle, open, close string) {
	rs.buf.WriteString(open)
	for i, e := range rs.vm.containerElems(h) {
		if i > 0 {
			rs.buf.WriteByte(' ')
		}
		rs.render(e)
	}
	rs.buf.WriteString(close)
}

// renderProgramBody renders a program object's elements without the
// enclosing << >> delimiters, for nesting inside a loop construct.
func (rs *renderState) renderProgramBody(h Handle) {
	for i, e := range rs.vm.containerElems(h) {
		if i > 0 {
			rs.buf.WriteByte(' ')
		}
		rs.render(e)
	}
}

func (rs *renderState) renderDoUntil(h Handle) {
	elems := rs.vm.containerElems(h)
	rs.buf.WriteString("DO ")
	rs.renderProgramBody(elems[0])
	rs.buf.WriteString(" UNTIL ")
	rs.renderProgramBody(elems[1])
	rs.buf.WriteString(" END")
}

func (rs *renderState) renderWhileRepeat(h Handle) {
	elems := rs.vm.containerElems(h)
	rs.buf.WriteString("WHILE ")
	rs.renderProgramBody(elems[0])
	rs.buf.WriteString(" REPEAT ")
	rs.renderProgramBody(elems[1])
	rs.buf.WriteString(" END")
}

func (rs *renderState) renderStart(h Handle, stop string) {
	elems := rs.vm.containerElems(h)
	rs.buf.WriteString("START ")
	rs.renderProgramBody(elems[0])
	rs.buf.WriteByte(' ')
	rs.buf.WriteString(stop)
}

func (rs *renderState) renderFor(h Handle, stop string) {
	elems := rs.vm.containerElems(h)
	rs.buf.WriteString("FOR ")
	rs.render(elems[0])
	rs.buf.WriteByte(' ')
	rs.renderProgramBody(elems[1])
	rs.buf.WriteByte(' ')
	rs.buf.WriteString(stop)
}

func (rs *renderState) renderProgram(h Handle) {
	rs.buf.WriteString("<< ")
	elems := rs.vm.containerElems(h)
	for i, e := range elems {
		if rs.vm.TagOf(e) == TagLocalsHeader {
			rs.buf.WriteString("-> ")
			for _, v := range rs.vm.containerElems(e) {
				rs.render(v)
				rs.buf.WriteByte(' ')
			}
			continue
		}
		if i > 0 {
			rs.buf.WriteByte(' ')
		}
		rs.render(e)
	}
	rs.buf.WriteString(" >>")
}
