package rpl48

// Tag identifies an object's type. Tags are assigned in contiguous
// ranges (integer-types, decimal-types, real-types, symbolic-types,
// algebraic-types, commands) so that Tag.Is*() range checks are
// comparisons against the enumeration order, not a switch over individual
// values. The enumeration order is therefore part of the on-disk ABI
// and must not be reshuffled once objects are persisted.
type Tag uint16

const (
	TagInvalid Tag = iota

	// Integer types.
	tagIntegerStart
	TagInteger
	TagNegInteger
	TagHexInteger
	TagDecInteger
	TagOctInteger
	TagBinInteger
	TagBignum
	TagNegBignum
	TagBasedBignum
	tagIntegerEnd

	// Fraction types (real, but not integer/decimal).
	tagFractionStart
	TagFraction
	TagNegFraction
	TagBigFraction
	tagFractionEnd

	// Decimal types.
	tagDecimalStart
	TagDecimal
	TagNegDecimal
	tagDecimalEnd

	// Complex types (symbolic, but not real).
	tagComplexStart
	TagRectangular
	TagPolar
	tagComplexEnd

	// Symbol / equation (symbolic, not real, not complex).
	tagSymbolicOnlyStart
	TagSymbol
	TagEquation
	tagSymbolicOnlyEnd

	// Algebraic containers (list/vector/matrix/program/block, plus the
	// locals header and the loop objects, which are structural types the
	// parser builds inside programs).
	tagAlgebraicStart
	TagList
	TagVector
	TagMatrix
	TagProgram
	TagBlock
	TagLocalsHeader
	TagLoopDoUntil
	TagLoopWhileRepeat
	TagLoopStartNext
	TagLoopStartStep
	TagLoopForNext
	TagLoopForStep
	tagAlgebraicEnd

	// Non-algebraic structural / leaf types.
	TagText
	TagDirectory
	TagMenu

	// Commands: everything from here to tagCommandEnd is a command tag.
	tagCommandStart
	TagCmdAdd
	TagCmdSub
	TagCmdMul
	TagCmdDiv
	TagCmdNeg
	TagCmdInv
	TagCmdSqrt
	TagCmdSTO
	TagCmdRCL
	TagCmdPurge
	TagCmdVars
	TagCmdCrdir
	TagCmdUpdir
	TagCmdEval
	TagCmdDup
	TagCmdDrop
	TagCmdSwap
	TagCmdRewrite
	TagCmdRuleApply1
	TagCmdIfte
	TagCmdDotimes
	TagCmdBreak
	TagCmdPow
	TagCmdCbrt
	TagCmdExp
	TagCmdLn
	TagCmdLog10
	TagCmdLog2
	TagCmdLog1p
	TagCmdExpm1
	TagCmdSin
	TagCmdCos
	TagCmdTan
	TagCmdAsin
	TagCmdAcos
	TagCmdAtan
	TagCmdSinh
	TagCmdCosh
	TagCmdTanh
	TagCmdAsinh
	TagCmdAcosh
	TagCmdAtanh
	TagCmdErf
	TagCmdErfc
	TagCmdTgamma
	TagCmdLgamma
	TagCmdToFrac
	TagCmdToNum
	tagCommandEnd

	tagCount
)

// IsInteger reports whether the tag is an integer/bignum variant.
func (t Tag) IsInteger() bool { return t > tagIntegerStart && t < tagIntegerEnd }

// IsFraction reports whether the tag is a fraction variant.
func (t Tag) IsFraction() bool { return t > tagFractionStart && t < tagFractionEnd }

// IsDecimal reports whether the tag is a decimal variant.
func (t Tag) IsDecimal() bool { return t > tagDecimalStart && t < tagDecimalEnd }

// IsReal reports whether the tag is integer, fraction, or decimal.
func (t Tag) IsReal() bool { return t.IsInteger() || t.IsFraction() || t.IsDecimal() }

// IsComplex reports whether the tag is rectangular or polar complex.
func (t Tag) IsComplex() bool { return t > tagComplexStart && t < tagComplexEnd }

// IsSymbolic reports whether the tag is real, symbol, equation, or complex.
func (t Tag) IsSymbolic() bool {
	return t.IsReal() || t.IsComplex() || (t > tagSymbolicOnlyStart && t < tagSymbolicOnlyEnd)
}

// IsAlgebraic reports whether the tag is a symbolic type or an algebraic
// container (list/vector/matrix/program/block/locals-header).
func (t Tag) IsAlgebraic() bool {
	return t.IsSymbolic() || (t > tagAlgebraicStart && t < tagAlgebraicEnd)
}

// IsCommand reports whether the tag identifies a command (an executable
// built-in with no payload beyond its tag).
func (t Tag) IsCommand() bool { return t > tagCommandStart && t < tagCommandEnd }

// IsNegative reports whether the tag is the negative variant of a signed
// real type (neg_integer, neg_bignum, neg_fraction, neg_decimal).
func (t Tag) IsNegative() bool {
	switch t {
	case TagNegInteger, TagNegBignum, TagNegFraction, TagNegDecimal:
		return true
	}
	return false
}

var tagNames = map[Tag]string{
	TagInvalid:       "invalid",
	TagInteger:       "integer",
	TagNegInteger:    "neg_integer",
	TagHexInteger:    "hex_integer",
	TagDecInteger:    "dec_integer",
	TagOctInteger:    "oct_integer",
	TagBinInteger:    "bin_integer",
	TagBignum:        "bignum",
	TagNegBignum:     "neg_bignum",
	TagBasedBignum:   "based_bignum",
	TagFraction:      "fraction",
	TagNegFraction:   "neg_fraction",
	TagBigFraction:   "big_fraction",
	TagDecimal:       "decimal",
	TagNegDecimal:    "neg_decimal",
	TagRectangular:   "rectangular",
	TagPolar:         "polar",
	TagSymbol:        "symbol",
	TagEquation:      "equation",
	TagList:          "list",
	TagVector:        "vector",
	TagMatrix:        "matrix",
	TagProgram:       "program",
	TagBlock:         "block",
	TagLocalsHeader:    "locals_header",
	TagLoopDoUntil:     "do_until",
	TagLoopWhileRepeat: "while_repeat",
	TagLoopStartNext:   "start_next",
	TagLoopStartStep:   "start_step",
	TagLoopForNext:     "for_next",
	TagLoopForStep:     "for_step",
	TagText:          "text",
	TagDirectory:     "directory",
	TagMenu:          "menu",
	TagCmdAdd:        "+",
	TagCmdSub:        "-",
	TagCmdMul:        "*",
	TagCmdDiv:        "/",
	TagCmdNeg:        "NEG",
	TagCmdInv:        "INV",
	TagCmdSqrt:       "SQRT",
	TagCmdSTO:        "STO",
	TagCmdRCL:        "RCL",
	TagCmdPurge:      "PURGE",
	TagCmdVars:       "VARS",
	TagCmdCrdir:      "CRDIR",
	TagCmdUpdir:      "UPDIR",
	TagCmdEval:       "EVAL",
	TagCmdDup:        "DUP",
	TagCmdDrop:       "DROP",
	TagCmdSwap:       "SWAP",
	TagCmdRewrite:    "REWRITE",
	TagCmdRuleApply1: "RULEAPPLY1",
	TagCmdIfte:       "IFTE",
	TagCmdDotimes:    "DOTIMES",
	TagCmdBreak:      "BREAK",
	TagCmdPow:        "^",
	TagCmdCbrt:       "CBRT",
	TagCmdExp:        "EXP",
	TagCmdLn:         "LN",
	TagCmdLog10:      "LOG10",
	TagCmdLog2:       "LOG2",
	TagCmdLog1p:      "LOG1P",
	TagCmdExpm1:      "EXPM1",
	TagCmdSin:        "SIN",
	TagCmdCos:        "COS",
	TagCmdTan:        "TAN",
	TagCmdAsin:       "ASIN",
	TagCmdAcos:       "ACOS",
	TagCmdAtan:       "ATAN",
	TagCmdSinh:       "SINH",
	TagCmdCosh:       "COSH",
	TagCmdTanh:       "TANH",
	TagCmdAsinh:      "ASINH",
	TagCmdAcosh:      "ACOSH",
	TagCmdAtanh:      "ATANH",
	TagCmdErf:        "ERF",
	TagCmdErfc:       "ERFC",
	TagCmdTgamma:     "TGAMMA",
	TagCmdLgamma:     "LGAMMA",
	TagCmdToFrac:     "→FRAC",
	TagCmdToNum:      "→NUM",
}

// String returns the canonical command/type name for the tag, used by
// the renderer and by error messages.
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown"
}
