/*
Package rpl48 implements a variable-precision RPL (Reverse Polish Lisp)
calculator engine in the style of the HP-48/50 family.

The engine is built around a single contiguous object arena (heap.go,
handle.go, scratchpad.go) holding uniformly tagged, self-describing values
(tag.go, vli.go, object.go, dispatch.go). Exact integer, bignum, and
fraction arithmetic (integer.go, bignum.go, fraction.go) and a
variable-precision base-1000 decimal engine (decimal.go and friends) sit
on top of the object model. A recursive-descent parser and its inverse
renderer (lex.go, parse.go, render.go) convert between RPL source text and
arena objects. The evaluator (eval.go, control.go, loops.go, rewrite.go)
is a stack machine with local-variable frames, structured control flow,
and symbolic rewrite. A directory stack and process-wide settings record
(directory.go, settings.go) round out the runtime, with state.go handling
save/restore of a whole session to a text file of RPL commands.

# Quick start

	vm := rpl48.NewVM(rpl48.DefaultHeapSize)
	defer vm.Close()
	if err := vm.EvalString("1 2 +"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(vm.RenderTop())

# Scope

This package covers the object memory system, the decimal and exact
numeric engines, and the evaluator core. Device drivers, on-screen menu
rendering, and key-scanning are intentionally out of scope; they belong
to a host program that drives this package through the KeyQueue and
Host interfaces in host.go.
*/
package rpl48

// EngineVersion identifies this engine's ABI generation. It bears no
// relation to any version of the original HP calculator firmware.
const EngineVersion = "1"
