package builtin

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/eval"
	"github.com/cwbudde/go-liscript/internal/value"
)

// installParseFloat binds parseFloat(s), a free function (not a
// member) that requires a string consumed in full by strconv.ParseFloat
// — "3.14" parses, "3.14x" is an invalid-arg error rather than a
// truncated 3.14, since the language has no notion of partial parses.
func installParseFloat(e *env.Env, global *value.Object) {
	global.Props.Set(value.Intern("parseFloat"), value.ObjectValue(
		value.NewNativeFunctionObject(e.ProtoFunction, parseFloat)))
}

func parseFloat(this value.Value, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, eval.NewError(eval.ErrInvalidArg)
	}
	s := args[0]
	if s.Kind != value.KindObject || s.Obj == nil || s.Obj.Tag != value.TagString {
		return value.Value{}, eval.NewError(eval.ErrNotString)
	}
	text := strings.TrimSpace(s.Obj.StringContent())
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Value{}, eval.NewErrorf(eval.ErrInvalidArg, "parseFloat: %v", err)
	}
	return value.Number(n), nil
}
