// Package value implements the heap and the tagged-union Value that the
// evaluator passes around: booleans and numbers by content, everything
// else (plain objects, strings, functions, arrays) as a pointer into the
// heap, all reachable through Go's own garbage collector rather than a
// hand-rolled tracing allocator.
package value

import "github.com/cwbudde/go-liscript/internal/ast"

// Kind discriminates the four shapes a Value can take.
type Kind int

const (
	KindBoolean Kind = iota
	KindNumber
	KindUndefined
	KindObject
)

// Value is copied by value everywhere; Obj is the only pointer-sized
// field, and a KindObject Value with a nil Obj is the language's null.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Obj  *Object
}

func Boolean(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

func Undefined() Value { return Value{Kind: KindUndefined} }

// ObjectValue wraps a heap object. Passing nil produces null.
func ObjectValue(o *Object) Value { return Value{Kind: KindObject, Obj: o} }

// Null is the language's null: a non-undefined object value with no
// referent.
func Null() Value { return Value{Kind: KindObject, Obj: nil} }

func (v Value) IsNull() bool { return v.Kind == KindObject && v.Obj == nil }

func (v Value) IsFunction() bool {
	return v.Kind == KindObject && v.Obj != nil && v.Obj.Tag == TagFunction
}

// Equal implements the language's single equality relation: kind must
// match, and object identity is pointer identity (interning is what
// makes two equal-content strings compare equal here).
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Num == b.Num
	case KindUndefined:
		return true
	case KindObject:
		return a.Obj == b.Obj
	}
	return false
}

// Tag discriminates the heap object variants. Every Object, regardless
// of Tag, carries a Proto pointer and a property table.
type Tag int

const (
	TagPlain Tag = iota
	TagString
	TagFunction
	TagArray
)

// Object is the single heap-object representation; which payload field
// is valid is determined by Tag.
type Object struct {
	Tag   Tag
	Proto *Object
	// Name is the interned string this object is tagged with: set on
	// the four root prototypes and on a named function's fresh
	// prototype object. Nil means untagged.
	Name  *Object
	Props *PropertyTable

	str string
	fn  *Function
	arr *Array
}

// NewPlainObject allocates a fresh plain object with an empty property
// table and the given prototype (possibly nil, terminating the chain).
func NewPlainObject(proto *Object) *Object {
	return &Object{Tag: TagPlain, Proto: proto, Props: NewPropertyTable()}
}

func newStringObject(content string, proto *Object) *Object {
	return &Object{Tag: TagString, Proto: proto, Props: NewPropertyTable(), str: content}
}

// StringContent returns the payload of a Tag == TagString object; it is
// the empty string for any other tag.
func (o *Object) StringContent() string { return o.str }

// Function is the payload of a Tag == TagFunction object. Exactly one
// of Body or Native is set.
type Function struct {
	Params   []*Object
	Variadic bool

	// Body and Root are set for script functions: Body is the form to
	// evaluate, Root is the top-level form it came from, kept alive
	// alongside it.
	Body *ast.Expr
	Root *ast.Expr

	// Native is set for built-in functions instead of Body/Root.
	Native NativeFunc
}

// NativeFunc is the signature every built-in function implements.
type NativeFunc func(this Value, args []Value) (Value, error)

func NewFunctionObject(proto *Object, params []*Object, variadic bool, body, root *ast.Expr) *Object {
	return &Object{
		Tag:   TagFunction,
		Proto: proto,
		Props: NewPropertyTable(),
		fn:    &Function{Params: params, Variadic: variadic, Body: body, Root: root},
	}
}

func NewNativeFunctionObject(proto *Object, native NativeFunc) *Object {
	return &Object{
		Tag:   TagFunction,
		Proto: proto,
		Props: NewPropertyTable(),
		fn:    &Function{Native: native},
	}
}

// Function returns the function payload, or nil if Tag != TagFunction.
func (o *Object) Function() *Function { return o.fn }

// Array is the payload of a Tag == TagArray object.
type Array struct {
	Items []Value
}

func NewArrayObject(proto *Object, items []Value) *Object {
	return &Object{Tag: TagArray, Proto: proto, Props: NewPropertyTable(), arr: &Array{Items: items}}
}

// Array returns the array payload, or nil if Tag != TagArray.
func (o *Object) Array() *Array { return o.arr }

// FindMember walks obj's prototype chain looking for key, returning the
// object that actually owns the slot (which may be a prototype, not
// obj itself) along with its value.
func FindMember(obj *Object, key *Object) (owner *Object, v Value, found bool) {
	for o := obj; o != nil; o = o.Proto {
		if val, ok := o.Props.Get(key); ok {
			return o, val, true
		}
	}
	return nil, Value{}, false
}
