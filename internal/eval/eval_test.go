package eval

import (
	"bufio"
	"strings"
	"testing"

	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/reader"
	"github.com/cwbudde/go-liscript/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEvaluator builds the Object, Function and Array root
// prototypes (no String prototype) by hand rather than
// going through the builtin package, which itself imports eval: a
// package-internal test importing its own importer would be a cycle.
func newTestEvaluator() *Evaluator {
	protoObject := value.NewPlainObject(nil)
	protoFunction := value.NewPlainObject(protoObject)
	protoArray := value.NewPlainObject(protoObject)
	keyPrototype := value.Intern("prototype")

	ctorObject := value.NewNativeFunctionObject(protoFunction, func(this value.Value, args []value.Value) (value.Value, error) {
		return value.Undefined(), nil
	})
	ctorObject.Props.Set(keyPrototype, value.ObjectValue(protoObject))

	global := value.NewPlainObject(protoObject)
	global.Props.Set(value.Intern("Object"), value.ObjectValue(ctorObject))

	installTestArrayMethods(protoFunction, protoArray)

	e := env.New(global)
	e.ProtoObject = protoObject
	e.ProtoFunction = protoFunction
	e.ProtoArray = protoArray
	e.KeyPrototype = keyPrototype
	return New(e)
}

// installTestArrayMethods binds the same get/set surface
// builtin.installArrayMethods wires in production, so this package's
// own tests can exercise member calls against a native that actually
// reads its argument list (regression coverage for invoke dispatching
// natives before the script-function arity check).
func installTestArrayMethods(protoFunction, protoArray *value.Object) {
	get := func(this value.Value, args []value.Value) (value.Value, error) {
		arr := this.Obj.Array()
		i := int(args[0].Num)
		return arr.Items[i], nil
	}
	set := func(this value.Value, args []value.Value) (value.Value, error) {
		arr := this.Obj.Array()
		i := int(args[0].Num)
		arr.Items[i] = args[1]
		return args[1], nil
	}
	protoArray.Props.Set(value.Intern("get"), value.ObjectValue(value.NewNativeFunctionObject(protoFunction, get)))
	protoArray.Props.Set(value.Intern("set"), value.ObjectValue(value.NewNativeFunctionObject(protoFunction, set)))
}

func parse(t *testing.T, src string) *ast.Expr {
	t.Helper()
	r := reader.New(bufio.NewReader(strings.NewReader(src + "\n")))
	expr, ok, err := r.ReadExpr()
	require.NoError(t, err)
	require.True(t, ok)
	return expr
}

func run(t *testing.T, ev *Evaluator, src string) (value.Value, error) {
	t.Helper()
	return ev.Eval(parse(t, src))
}

func TestArithmetic(t *testing.T) {
	ev := newTestEvaluator()

	v, err := run(t, ev, "(+ 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(6), v)

	v, err = run(t, ev, "(- 5)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(-5), v)

	v, err = run(t, ev, "(- 5 2)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)

	_, err = run(t, ev, "(+)")
	requireKind(t, err, ErrInvalidKeywordList)

	_, err = run(t, ev, "(- 1 2 3)")
	requireKind(t, err, ErrInvalidKeywordList)
}

func TestDivisionAndMod(t *testing.T) {
	ev := newTestEvaluator()

	v, err := run(t, ev, "(/ 7 2)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(3.5), v)

	v, err = run(t, ev, "(idiv 7 2)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)

	v, err = run(t, ev, "(imod 7 2)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)

	_, err = run(t, ev, "(idiv 7 0)")
	requireKind(t, err, ErrInvalidArg)
}

func TestTruthinessRejectsNumbers(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, "(if 1 2 3)")
	requireKind(t, err, ErrInvalidConditional)
}

func TestIfRequiresExactlyThreeForms(t *testing.T) {
	ev := newTestEvaluator()
	v, err := run(t, ev, "(if true 1 2)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)

	_, err = run(t, ev, "(if true 1)")
	requireKind(t, err, ErrInvalidKeywordList)
}

func TestWhileLoopsUntilFalseAndClearsPrev(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl n 0)`)
	require.NoError(t, err)
	_, err = run(t, ev, `(while (< n 3) (setl n (+ n 1)))`)
	require.NoError(t, err)
	v, err := run(t, ev, "n")
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)

	v, err = run(t, ev, "prev")
	require.NoError(t, err)
	assert.Equal(t, value.Undefined(), v)
}

func TestDoTracksPrevAcrossForms(t *testing.T) {
	ev := newTestEvaluator()
	v, err := run(t, ev, `(do 1 2 (+ prev 1))`)
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)

	v, err = run(t, ev, "prev")
	require.NoError(t, err)
	assert.Equal(t, value.Undefined(), v)
}

func TestDoRequiresAtLeastOneForm(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(do)`)
	requireKind(t, err, ErrInvalidKeywordList)
}

// TestWhileZeroIterationsReturnsUndefinedEvenInsideDo pins the
// original's local `variable ret` accumulator: a while loop that never
// runs its body returns undefined, never whatever `prev` happened to
// hold from an enclosing do, even though do's own prev tracking is
// still live at the point the while form runs.
func TestWhileZeroIterationsReturnsUndefinedEvenInsideDo(t *testing.T) {
	ev := newTestEvaluator()
	v, err := run(t, ev, `(do (setl x 5) (while false 1))`)
	require.NoError(t, err)
	assert.Equal(t, value.Undefined(), v)
}

func TestAndOrAlwaysYieldBooleans(t *testing.T) {
	ev := newTestEvaluator()
	v, err := run(t, ev, "(and true true)")
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)

	v, err = run(t, ev, "(and true false)")
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(false), v)

	v, err = run(t, ev, "(or false false)")
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(false), v)
}

func TestFuncDefinitionAndCall(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl square (func (x) (* x x)))`)
	require.NoError(t, err)
	v, err := run(t, ev, `(global square 4)`)
	require.NoError(t, err)
	assert.Equal(t, value.Number(16), v)
}

func TestNamedFuncBindsItsOwnName(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(func double (x) (* x 2))`)
	require.NoError(t, err)
	v, err := run(t, ev, `(global double 21)`)
	require.NoError(t, err)
	assert.Equal(t, value.Number(42), v)
}

func TestVariadicFunctionSkipsArityCheck(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl identity (func (...) arguments))`)
	require.NoError(t, err)
	// A variadic call with more arguments than named parameters (zero,
	// here) must not raise invalid-arg; the call sees them all through
	// `arguments`.
	v, err := run(t, ev, `(global identity 1 2 3)`)
	require.NoError(t, err)
	require.True(t, v.IsFunction() == false && v.Kind == value.KindObject)
	assert.Equal(t, 3, len(v.Obj.Array().Items))
}

func TestNonVariadicExcessArgsIsInvalidArg(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl f (func (x) x))`)
	require.NoError(t, err)
	_, err = run(t, ev, `(global f 1 2)`)
	requireKind(t, err, ErrInvalidArg)
}

func TestMemberCallBindsThisToReceiver(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl obj (new Object))`)
	require.NoError(t, err)
	_, err = run(t, ev, `(setf obj greet (func () (getf this tag)))`)
	require.NoError(t, err)
	_, err = run(t, ev, `(setf obj tag "hi")`)
	require.NoError(t, err)
	v, err := run(t, ev, `(obj greet)`)
	require.NoError(t, err)
	assert.Equal(t, "hi", v.Obj.StringContent())
}

func TestSingleItemListIsInvalidFuncCall(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(5)`)
	requireKind(t, err, ErrInvalidFuncCall)
}

func TestArrayLiteralBuildsBackingSlice(t *testing.T) {
	ev := newTestEvaluator()
	v, err := run(t, ev, `(array 1 2 3)`)
	require.NoError(t, err)
	require.Equal(t, value.KindObject, v.Kind)
	assert.Equal(t, []value.Value{value.Number(1), value.Number(2), value.Number(3)}, v.Obj.Array().Items)
}

// TestNativeMemberCallReceivesArguments pins spec.md section 8's array
// scenario: a native bound via member call must actually see its
// arguments rather than being rejected before it runs. invoke used to
// apply the script-function arity check (len(args) > len(fn.Params))
// to every function including natives, which are built with
// Variadic=false and a nil Params — so any native called with at least
// one argument raised invalid-arg before fn.Native ever ran.
func TestNativeMemberCallReceivesArguments(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl a (array 10 20 30))`)
	require.NoError(t, err)

	v, err := run(t, ev, `(a get 1)`)
	require.NoError(t, err)
	assert.Equal(t, value.Number(20), v)

	v, err = run(t, ev, `(a set 1 99)`)
	require.NoError(t, err)
	assert.Equal(t, value.Number(99), v)

	v, err = run(t, ev, `(a get 1)`)
	require.NoError(t, err)
	assert.Equal(t, value.Number(99), v)
}

func TestGetiSetiUseStringKeys(t *testing.T) {
	ev := newTestEvaluator()
	_, err := run(t, ev, `(setl obj (new Object))`)
	require.NoError(t, err)
	_, err = run(t, ev, `(seti obj "color" "red")`)
	require.NoError(t, err)
	v, err := run(t, ev, `(geti obj "color")`)
	require.NoError(t, err)
	assert.Equal(t, "red", v.Obj.StringContent())

	_, err = run(t, ev, `(geti obj 5)`)
	requireKind(t, err, ErrNotString)
}

func requireKind(t *testing.T, err error, k Kind) {
	t.Helper()
	require.Error(t, err)
	eerr, ok := err.(*Error)
	require.True(t, ok, "expected *eval.Error, got %T", err)
	assert.Equal(t, k, eerr.Kind)
}
