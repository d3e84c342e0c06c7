package eval

import (
	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/value"
)

// evalCall resolves a non-keyword list "(a b c...)": a evaluates to
// the receiver. If a is a non-null object, b is syntactically an atom,
// and walking a's prototype chain finds b's name bound to a function,
// this is a member call: that function, this=a, args=c.... Otherwise b
// is evaluated on its own; if it is a function, this is a generic
// call: that function, this=a, args=c.... If neither path yields a
// function, that is a list-evaluate error. A single-item list is
// always invalid.
func (ev *Evaluator) evalCall(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) <= 1 {
		return value.Value{}, NewError(ErrInvalidFuncCall)
	}

	receiver, err := ev.Eval(expr.List[0])
	if err != nil {
		return value.Value{}, err
	}

	var fnObj *value.Object

	if receiver.Kind == value.KindObject && receiver.Obj != nil && expr.List[1].Kind == ast.Atom {
		key := value.Intern(expr.List[1].Text)
		if _, v, found := value.FindMember(receiver.Obj, key); found && v.IsFunction() {
			fnObj = v.Obj
		}
	}

	if fnObj == nil {
		calleeVal, err := ev.Eval(expr.List[1])
		if err != nil {
			return value.Value{}, err
		}
		if calleeVal.IsFunction() {
			fnObj = calleeVal.Obj
		}
	}

	if fnObj == nil {
		return value.Value{}, NewError(ErrListEvaluate)
	}

	args := make([]value.Value, 0, len(expr.List)-2)
	for _, a := range expr.List[2:] {
		v, err := ev.Eval(a)
		if err != nil {
			return value.Value{}, err
		}
		args = append(args, v)
	}

	return ev.invoke(fnObj, receiver, args)
}

// invoke calls fnObj with the given this and already-evaluated
// arguments. Natives dispatch immediately and validate their own arity
// (see builtin/array.go, builtin/parsefloat.go); the §4.4.3 step-1
// arity check below applies only to script functions, since every
// native is constructed with Variadic=false and a nil Params (see
// value.NewNativeFunctionObject), which would otherwise reject any
// native call taking an argument at all. A variadic script function
// skips the check entirely; excess arguments are never bound to a
// parameter name, only visible through the `arguments` keyword's raw
// array. For script functions invoke pushes a fresh frame, binds
// parameters positionally, evaluates the body, and pops the frame
// again. `this` is restored afterward from the OUTERMOST frame's This
// rather than the nearest-enclosing one; this mirrors a quirk of the
// reference implementation, which restores `this` from
// stackframe.front() regardless of call depth.
func (ev *Evaluator) invoke(fnObj *value.Object, this value.Value, args []value.Value) (value.Value, error) {
	fn := fnObj.Function()
	if fn == nil {
		return value.Value{}, NewError(ErrNotFunction)
	}

	if fn.Native != nil {
		return fn.Native(this, args)
	}

	if !fn.Variadic && len(args) > len(fn.Params) {
		return value.Value{}, NewError(ErrInvalidArg)
	}

	argsArr := value.NewArrayObject(ev.Env.ProtoArray, append([]value.Value(nil), args...))
	block := value.NewPropertyTable()
	bindParams(block, fn.Params, args)

	frame := &env.Frame{Arguments: argsArr, This: this, Blocks: []*value.PropertyTable{block}}
	ev.Env.PushFrame(frame)
	savedThis := ev.Env.This
	ev.Env.This = this

	result, err := ev.Eval(fn.Body)

	ev.Env.PopFrame()
	if outer := ev.Env.Frames; len(outer) > 0 {
		ev.Env.This = outer[0].This
	} else {
		ev.Env.This = savedThis
	}

	if err != nil {
		return value.Value{}, err
	}
	return result, nil
}

func bindParams(block *value.PropertyTable, params []*value.Object, args []value.Value) {
	for i, p := range params {
		if i < len(args) {
			block.Set(p, args[i])
		} else {
			block.Set(p, value.Undefined())
		}
	}
}
