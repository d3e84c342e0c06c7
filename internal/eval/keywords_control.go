package eval

import (
	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/value"
)

// kwDo evaluates every sub-form in sequence, assigning each result to
// `prev` as it completes so a later form can see the one before it;
// `prev` is restored to undefined once the whole do exits.
func (ev *Evaluator) kwDo(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) < 2 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	result := value.Undefined()
	for _, e := range expr.List[1:] {
		v, err := ev.Eval(e)
		if err != nil {
			return value.Value{}, err
		}
		result = v
		ev.Env.Prev = v
	}
	ev.Env.Prev = value.Undefined()
	return result, nil
}

// toConditional implements truthiness: true is true; a non-null object
// (including string/function/array objects) is true; false, null, and
// undefined are false. Any other value (a number) isn't a valid
// conditional at all.
func toConditional(v value.Value) (bool, error) {
	switch v.Kind {
	case value.KindBoolean:
		return v.Bool, nil
	case value.KindUndefined:
		return false, nil
	case value.KindObject:
		return !v.IsNull(), nil
	default:
		return false, NewError(ErrInvalidConditional)
	}
}

// kwIf requires all three of cond/then/else.
func (ev *Evaluator) kwIf(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 4 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	cond, err := ev.Eval(expr.List[1])
	if err != nil {
		return value.Value{}, err
	}
	truthy, err := toConditional(cond)
	if err != nil {
		return value.Value{}, err
	}
	if truthy {
		return ev.Eval(expr.List[2])
	}
	return ev.Eval(expr.List[3])
}

// kwWhile evaluates cond before each iteration of body, stopping the
// first time it is falsy. `prev` holds the previous iteration's body
// value while the loop runs; it is reset to undefined only once the
// loop finishes normally. The returned value is tracked in a local,
// starting at undefined, independent of Env.Prev — mirroring the
// reference implementation's local `variable ret`, not its shared
// prev_var, so a zero-iteration loop yields undefined even when nested
// inside a `do` that already set `prev` to something else. An error
// raised partway through a body leaves Prev exactly as the reference
// implementation's non-RAII loop does: dirty, still holding the last
// completed iteration's value.
func (ev *Evaluator) kwWhile(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 3 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	condExpr, bodyExpr := expr.List[1], expr.List[2]
	result := value.Undefined()
	for {
		cond, err := ev.Eval(condExpr)
		if err != nil {
			return value.Value{}, err
		}
		truthy, err := toConditional(cond)
		if err != nil {
			return value.Value{}, err
		}
		if !truthy {
			break
		}
		v, err := ev.Eval(bodyExpr)
		if err != nil {
			return value.Value{}, err
		}
		ev.Env.Prev = v
		result = v
	}
	ev.Env.Prev = value.Undefined()
	return result, nil
}
