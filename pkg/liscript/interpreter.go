// Package liscript bundles the reader, evaluator, and built-in library
// into a single entry point a host program drives one top-level form
// at a time: the REPL, the file runner, and the test suite all go
// through an *Interpreter rather than wiring env/eval/builtin by hand.
package liscript

import (
	"io"

	"github.com/cwbudde/go-liscript/internal/builtin"
	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/eval"
	"github.com/cwbudde/go-liscript/internal/reader"
	"github.com/cwbudde/go-liscript/internal/value"
)

// Interpreter owns one independent Env/Evaluator pair. Each instance
// gets its own global object and call stack. Two pieces of package
// state are shared across instances: the interned-string table, and
// value.StringProto, which every New repoints at its own String
// prototype (a string keeps the prototype it was interned with).
type Interpreter struct {
	Env   *env.Env
	Eval  *eval.Evaluator
	Stdin io.Reader
}

// New builds a fresh interpreter with the standard built-in library
// bound to its global object, reading console.readLine from stdin.
func New(stdin io.Reader) *Interpreter {
	e := builtin.Bootstrap(stdin)
	return &Interpreter{Env: e, Eval: eval.New(e), Stdin: stdin}
}

// ReadEval reads one top-level form from r and evaluates it. ok is
// false (with a zero result and a nil err) when the line held no form,
// matching reader.Reader.ReadExpr's own convention so a REPL can tell
// "blank line" apart from both a value and a genuine error.
func (in *Interpreter) ReadEval(r *reader.Reader) (result value.Value, ok bool, err error) {
	expr, ok, err := r.ReadExpr()
	if err != nil {
		return value.Value{}, false, err
	}
	if !ok {
		return value.Value{}, false, nil
	}
	if err := r.ExpectEOL(); err != nil {
		return value.Value{}, false, err
	}
	result, err = in.Eval.Eval(expr)
	return result, true, err
}

// DumpExprEnabled reports whether replConfig.dumpExpr is currently
// true on this interpreter's global object.
func (in *Interpreter) DumpExprEnabled() bool {
	return builtin.ReplConfigDumpExpr(in.Env.Global)
}
