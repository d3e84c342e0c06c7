package eval

import (
	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/value"
)

// kwAnd short-circuits on the first falsy operand, returning boolean
// false; if every operand is truthy it returns boolean true (not the
// last operand's own value), per the "and/or reduce to booleans" rule.
func (ev *Evaluator) kwAnd(expr *ast.Expr) (value.Value, error) {
	for _, e := range expr.List[1:] {
		v, err := ev.Eval(e)
		if err != nil {
			return value.Value{}, err
		}
		truthy, err := toConditional(v)
		if err != nil {
			return value.Value{}, err
		}
		if !truthy {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}

func (ev *Evaluator) kwOr(expr *ast.Expr) (value.Value, error) {
	for _, e := range expr.List[1:] {
		v, err := ev.Eval(e)
		if err != nil {
			return value.Value{}, err
		}
		truthy, err := toConditional(v)
		if err != nil {
			return value.Value{}, err
		}
		if truthy {
			return value.Boolean(true), nil
		}
	}
	return value.Boolean(false), nil
}

func (ev *Evaluator) kwNot(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 2 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	v, err := ev.Eval(expr.List[1])
	if err != nil {
		return value.Value{}, err
	}
	truthy, err := toConditional(v)
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(!truthy), nil
}

func (ev *Evaluator) kwEq(expr *ast.Expr) (value.Value, error) {
	if len(expr.List) != 3 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	a, err := ev.Eval(expr.List[1])
	if err != nil {
		return value.Value{}, err
	}
	b, err := ev.Eval(expr.List[2])
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(value.Equal(a, b)), nil
}

func (ev *Evaluator) kwNeq(expr *ast.Expr) (value.Value, error) {
	v, err := ev.kwEq(expr)
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(!v.Bool), nil
}

// kwCompareFn builds a list-keyword handler for one of the four
// ordering operators, sharing the two-numeric-argument evaluation.
func kwCompareFn(cmp func(a, b float64) bool) func(*Evaluator, *ast.Expr) (value.Value, error) {
	return func(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
		if len(expr.List) != 3 {
			return value.Value{}, NewError(ErrInvalidKeywordList)
		}
		a, err := ev.Eval(expr.List[1])
		if err != nil {
			return value.Value{}, err
		}
		b, err := ev.Eval(expr.List[2])
		if err != nil {
			return value.Value{}, err
		}
		if a.Kind != value.KindNumber || b.Kind != value.KindNumber {
			return value.Value{}, NewError(ErrNotNumber)
		}
		return value.Boolean(cmp(a.Num, b.Num)), nil
	}
}
