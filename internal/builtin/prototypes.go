// Package builtin wires the root prototypes, constructors, and native
// function library into a fresh *env.Env: everything a script sees
// bound under `global` before its first top-level form runs.
package builtin

import (
	"io"

	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/value"
)

// Bootstrap allocates the four root prototypes (Object, Function,
// String, Array) and their constructor functions, installs the
// constructors on a fresh global object, patches value.StringProto so
// that every interned string from this point on carries the right
// prototype, and binds the native built-in library (Array.prototype
// methods, console, parseFloat, replConfig). stdin backs console's
// readLine, injected rather than read from a package-level global so
// tests can supply their own.
func Bootstrap(stdin io.Reader) *env.Env {
	protoObject := value.NewPlainObject(nil)
	protoFunction := value.NewPlainObject(protoObject)
	protoString := value.NewPlainObject(protoObject)
	protoArray := value.NewPlainObject(protoObject)

	value.StringProto = protoString

	protoObject.Name = value.Intern("Object")
	protoFunction.Name = value.Intern("Function")
	protoString.Name = value.Intern("String")
	protoArray.Name = value.Intern("Array")

	keyPrototype := value.Intern("prototype")

	ctorObject := value.NewNativeFunctionObject(protoFunction, noopCtor)
	ctorObject.Props.Set(keyPrototype, value.ObjectValue(protoObject))

	ctorFunction := value.NewNativeFunctionObject(protoFunction, noopCtor)
	ctorFunction.Props.Set(keyPrototype, value.ObjectValue(protoFunction))

	ctorString := value.NewNativeFunctionObject(protoFunction, noopCtor)
	ctorString.Props.Set(keyPrototype, value.ObjectValue(protoString))

	ctorArray := value.NewNativeFunctionObject(protoFunction, noopCtor)
	ctorArray.Props.Set(keyPrototype, value.ObjectValue(protoArray))

	global := value.NewPlainObject(protoObject)
	global.Props.Set(value.Intern("Object"), value.ObjectValue(ctorObject))
	global.Props.Set(value.Intern("Function"), value.ObjectValue(ctorFunction))
	global.Props.Set(value.Intern("String"), value.ObjectValue(ctorString))
	global.Props.Set(value.Intern("Array"), value.ObjectValue(ctorArray))

	e := env.New(global)
	e.ProtoObject, e.ProtoFunction, e.ProtoString, e.ProtoArray = protoObject, protoFunction, protoString, protoArray
	e.CtorObject, e.CtorFunction, e.CtorString, e.CtorArray = ctorObject, ctorFunction, ctorString, ctorArray
	e.KeyPrototype = keyPrototype

	installArrayMethods(e, protoArray)
	installConsole(e, global, stdin)
	installParseFloat(e, global)
	installReplConfig(e, global)

	return e
}

// noopCtor backs the four root constructors: `(new Object)` etc. need
// a callable, but the root prototypes carry no fields of their own to
// initialize.
func noopCtor(this value.Value, args []value.Value) (value.Value, error) {
	return value.Undefined(), nil
}
