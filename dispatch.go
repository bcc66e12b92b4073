package rpl48

// Opcode enumerates the operations a type's handler table may support.
// Not every type implements every opcode. A tag with no registered
// handler uses its category default from defaultHandlerFor; a nil field
// in whichever handler applies falls back to the generic behavior in
// Size, Eval, Exec and HelpTopic. A registered handler's nil fields are
// not filled in from the category default.
type Opcode int

const (
	OpSize Opcode = iota
	OpEval
	OpExec
	OpRender
	OpHelp
	OpMenuMarker
	OpArity
	OpPrecedence
)

// OpResult is the union-typed result of a dispatch call: exactly one
// field is meaningful for a given Opcode/Status combination (integer,
// handle, string, or status).
type OpResult struct {
	Int    int64
	H      Handle
	Str    string
	Status Status
}

// typeHandler is the per-tag table of opcode implementations. Fields left
// nil fall back to the generic behavior of the matching VM method (Size,
// Eval, Exec, HelpTopic), not to the category default.
type typeHandler struct {
	Size       func(vm *VM, h Handle) int
	Eval       func(vm *VM, h Handle) Status
	Exec       func(vm *VM, h Handle) Status
	Render     func(vm *VM, h Handle, w *renderState)
	Help       func(vm *VM, h Handle) (topic string, ok bool)
	MenuMarker func(vm *VM, h Handle) string
	Arity      func(vm *VM, h Handle) int
	Precedence func(vm *VM, h Handle) int
}

// handlers is the dense dispatch table indexed by Tag, populated by the
// init functions in eval.go and loops.go via registerHandler. Tags with
// no entry use defaultHandlerFor.
var handlers [tagCount]*typeHandler

// registerHandler installs h as the handler for tag. Panics if a handler
// is already registered, which would indicate two components claiming
// the same tag — an internal-error-class bug, not a runtime condition.
func registerHandler(tag Tag, h *typeHandler) {
	if handlers[tag] != nil {
		panic("rpl48: duplicate handler registration for tag " + tag.String())
	}
	handlers[tag] = h
}

// handlerFor returns the handler for h's tag, or the category default
// if none is registered.
func handlerFor(vm *VM, h Handle) *typeHandler {
	tag := vm.TagOf(h)
	if ht := handlers[tag]; ht != nil {
		return ht
	}
	return defaultHandlerFor(tag)
}

// defaultHandlerFor returns the fallback handler for a type category.
// Every concrete type at minimum gets a working Size (from the tag's
// static payload shape) and Eval (push self); Exec, Render, Help,
// MenuMarker, Arity, and Precedence may remain unimplemented for types
// that don't need them (numbers have no Exec beyond Eval, for instance).
func defaultHandlerFor(tag Tag) *typeHandler {
	switch {
	case tag.IsReal(), tag.IsComplex(), tag == TagSymbol, tag == TagText:
		return &realDefaultHandler
	case tag.IsAlgebraic():
		return &algebraicDefaultHandler
	case tag.IsCommand():
		return &commandDefaultHandler
	default:
		return &objectDefaultHandler
	}
}

// objectDefaultHandler is the base-of-all-bases fallback: EVAL pushes
// self, nothing else is implemented.
var objectDefaultHandler typeHandler

// realDefaultHandler is shared by every real/complex/text/symbol leaf
// type unless it overrides a specific opcode.
var realDefaultHandler typeHandler

// algebraicDefaultHandler is shared by list/vector/matrix/program/block/
// equation containers.
var algebraicDefaultHandler typeHandler

func init() {
	objectDefaultHandler = typeHandler{Eval: defaultEvalPushSelf}
	realDefaultHandler = typeHandler{Eval: defaultEvalPushSelf}
	algebraicDefaultHandler = typeHandler{Eval: defaultEvalPushSelf}
}

// commandDefaultHandler is shared by every command tag: commands are
// registered in object.go's commandTable via registerCommand, not given
// a typeHandler of their own, and this Eval looks them up there.
var commandDefaultHandler = typeHandler{
	Eval: defaultEvalExecute,
}

func defaultEvalPushSelf(vm *VM, h Handle) Status {
	return vm.Push(h)
}

func defaultEvalExecute(vm *VM, h Handle) Status {
	return vm.execHandle(h)
}

// Size returns the total byte size of the object at h, tag included,
// computed by that type's SIZE handler. Every object's size is
// deterministic from its own bytes, so this never needs to consult
// neighboring objects.
func (vm *VM) Size(h Handle) int {
	ht := handlerFor(vm, h)
	if ht.Size != nil {
		return ht.Size(vm, h)
	}
	return sizeByPayloadShape(vm, h)
}

// Eval implements the default EVAL opcode: non-command objects push
// themselves; commands invoke their handler.
func (vm *VM) Eval(h Handle) Status {
	ht := handlerFor(vm, h)
	if ht.Eval != nil {
		return ht.Eval(vm, h)
	}
	return vm.Push(h)
}

// Exec runs the tag's Exec handler (programs and loop objects register
// one); any other object, equations and blocks included, is handled as
// by Eval, so commands run and everything else is pushed.
func (vm *VM) Exec(h Handle) Status {
	ht := handlerFor(vm, h)
	if ht.Exec != nil {
		return ht.Exec(vm, h)
	}
	return vm.Eval(h)
}

// HelpTopic returns the type's help topic string, if any, implementing
// the HELP opcode.
func (vm *VM) HelpTopic(h Handle) (string, bool) {
	ht := handlerFor(vm, h)
	if ht.Help != nil {
		return ht.Help(vm, h)
	}
	return "", false
}
