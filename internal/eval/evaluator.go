// Package eval is the tree-walking evaluator: it turns an *ast.Expr
// into a value.Value against an *env.Env, dispatching atoms and lists
// through two small keyword tables before falling back to local-
// variable reads and member/generic calls.
package eval

import (
	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/value"
)

// Evaluator walks expression trees against one Env. Multiple
// Evaluators over independent Envs coexist safely in the same process.
type Evaluator struct {
	Env *env.Env
}

func New(e *env.Env) *Evaluator { return &Evaluator{Env: e} }

// Eval evaluates one expression node. It is a total function over a
// well-formed tree: every fault it can hit is reported as a *Error,
// never a panic.
func (ev *Evaluator) Eval(expr *ast.Expr) (value.Value, error) {
	switch expr.Kind {
	case ast.String:
		return value.ObjectValue(value.Intern(expr.Text)), nil
	case ast.Number:
		return value.Number(expr.Number), nil
	case ast.Atom:
		return ev.evalAtom(expr)
	case ast.List:
		return ev.evalList(expr)
	default:
		return value.Undefined(), nil
	}
}

func (ev *Evaluator) evalAtom(expr *ast.Expr) (value.Value, error) {
	if fn, ok := atomKeywords[expr.Text]; ok {
		return fn(ev)
	}
	key := value.Intern(expr.Text)
	v, ok := ev.Env.LookupLocal(key)
	if !ok {
		return value.Undefined(), nil
	}
	return v, nil
}

func (ev *Evaluator) evalList(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) == 0 {
		return value.Undefined(), nil
	}
	head := expr.List[0]
	if head.Kind == ast.Atom {
		if fn, ok := listKeywords[head.Text]; ok {
			return fn(ev, expr)
		}
	}
	return ev.evalCall(expr)
}

// IsKeyword reports whether name names an atom-keyword or a
// list-keyword, used by the func parameter-list validator to reject
// keyword names as parameter names.
func IsKeyword(name string) bool {
	if _, ok := atomKeywords[name]; ok {
		return true
	}
	_, ok := listKeywords[name]
	return ok
}
