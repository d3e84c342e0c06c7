package builtin

import (
	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/eval"
	"github.com/cwbudde/go-liscript/internal/value"
)

// installArrayMethods binds Array.prototype.size/get/set: the only way
// to reach an (array ...) object's items. geti/seti read and write
// string-keyed properties, not items.
func installArrayMethods(e *env.Env, protoArray *value.Object) {
	protoArray.Props.Set(value.Intern("size"), value.ObjectValue(
		value.NewNativeFunctionObject(e.ProtoFunction, arraySize)))
	protoArray.Props.Set(value.Intern("get"), value.ObjectValue(
		value.NewNativeFunctionObject(e.ProtoFunction, arrayGet)))
	protoArray.Props.Set(value.Intern("set"), value.ObjectValue(
		value.NewNativeFunctionObject(e.ProtoFunction, arraySet)))
}

func thisArray(this value.Value) (*value.Array, error) {
	if this.Kind != value.KindObject || this.Obj == nil || this.Obj.Tag != value.TagArray {
		return nil, eval.NewError(eval.ErrNotArray)
	}
	return this.Obj.Array(), nil
}

// arrayIndex requires an exact integer within [0, size), re-taxonomized
// as invalid-arg rather than out-of-range or not-number: the reference
// implementation's array built-ins report any bad index uniformly.
func arrayIndex(v value.Value, size int) (int, error) {
	if v.Kind != value.KindNumber {
		return 0, eval.NewError(eval.ErrInvalidArg)
	}
	i := int(v.Num)
	if float64(i) != v.Num || i < 0 || i >= size {
		return 0, eval.NewError(eval.ErrInvalidArg)
	}
	return i, nil
}

func arraySize(this value.Value, args []value.Value) (value.Value, error) {
	arr, err := thisArray(this)
	if err != nil {
		return value.Value{}, err
	}
	if len(args) != 0 {
		return value.Value{}, eval.NewError(eval.ErrInvalidArg)
	}
	return value.Number(float64(len(arr.Items))), nil
}

func arrayGet(this value.Value, args []value.Value) (value.Value, error) {
	arr, err := thisArray(this)
	if err != nil {
		return value.Value{}, err
	}
	if len(args) != 1 {
		return value.Value{}, eval.NewError(eval.ErrInvalidArg)
	}
	i, err := arrayIndex(args[0], len(arr.Items))
	if err != nil {
		return value.Value{}, err
	}
	return arr.Items[i], nil
}

func arraySet(this value.Value, args []value.Value) (value.Value, error) {
	arr, err := thisArray(this)
	if err != nil {
		return value.Value{}, err
	}
	if len(args) != 2 {
		return value.Value{}, eval.NewError(eval.ErrInvalidArg)
	}
	i, err := arrayIndex(args[0], len(arr.Items))
	if err != nil {
		return value.Value{}, err
	}
	arr.Items[i] = args[1]
	return args[1], nil
}
