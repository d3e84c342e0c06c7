package eval

import (
	"math"

	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/value"
)

// evalNumbers evaluates every argument form, requiring each to produce
// a number.
func (ev *Evaluator) evalNumbers(expr *ast.Expr) ([]float64, error) {
	nums := make([]float64, 0, len(expr.List)-1)
	for _, e := range expr.List[1:] {
		v, err := ev.Eval(e)
		if err != nil {
			return nil, err
		}
		if v.Kind != value.KindNumber {
			return nil, NewError(ErrNotNumber)
		}
		nums = append(nums, v.Num)
	}
	return nums, nil
}

// kwSum and kwProduct fold over one-or-more numeric operands.
func kwSum(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	nums, err := ev.evalNumbers(expr)
	if err != nil {
		return value.Value{}, err
	}
	if len(nums) == 0 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	acc := 0.0
	for _, n := range nums {
		acc += n
	}
	return value.Number(acc), nil
}

func kwProduct(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	nums, err := ev.evalNumbers(expr)
	if err != nil {
		return value.Value{}, err
	}
	if len(nums) == 0 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	acc := 1.0
	for _, n := range nums {
		acc *= n
	}
	return value.Number(acc), nil
}

// kwMinus handles (- x) negation and (- x y) subtraction.
func kwMinus(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	nums, err := ev.evalNumbers(expr)
	if err != nil {
		return value.Value{}, err
	}
	switch len(nums) {
	case 1:
		return value.Number(-nums[0]), nil
	case 2:
		return value.Number(nums[0] - nums[1]), nil
	default:
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
}

func kwDivide(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	nums, err := ev.evalNumbers(expr)
	if err != nil {
		return value.Value{}, err
	}
	if len(nums) != 2 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	return value.Number(nums[0] / nums[1]), nil
}

// kwMod is IEEE fmod-shaped floating remainder, not a truncated
// integer operation; idiv/imod below cover the integer variants.
func kwMod(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	nums, err := ev.evalNumbers(expr)
	if err != nil {
		return value.Value{}, err
	}
	if len(nums) != 2 {
		return value.Value{}, NewError(ErrInvalidKeywordList)
	}
	return value.Number(math.Mod(nums[0], nums[1])), nil
}

// toInt64 requires the number to represent an exact integer value, the
// way every int-only keyword (idiv/imod/&/|/^) needs its operands.
func toInt64(v value.Value) (int64, error) {
	if v.Kind != value.KindNumber {
		return 0, NewError(ErrNotNumber)
	}
	i := int64(v.Num)
	if float64(i) != v.Num {
		return 0, NewError(ErrNotInteger)
	}
	return i, nil
}

func (ev *Evaluator) evalIntPair(expr *ast.Expr) (int64, int64, error) {
	if len(expr.List) != 3 {
		return 0, 0, NewError(ErrInvalidKeywordList)
	}
	av, err := ev.Eval(expr.List[1])
	if err != nil {
		return 0, 0, err
	}
	bv, err := ev.Eval(expr.List[2])
	if err != nil {
		return 0, 0, err
	}
	a, err := toInt64(av)
	if err != nil {
		return 0, 0, err
	}
	b, err := toInt64(bv)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func kwIdiv(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	a, b, err := ev.evalIntPair(expr)
	if err != nil {
		return value.Value{}, err
	}
	if b == 0 {
		return value.Value{}, NewError(ErrInvalidArg)
	}
	return value.Number(float64(a / b)), nil
}

func kwImod(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	a, b, err := ev.evalIntPair(expr)
	if err != nil {
		return value.Value{}, err
	}
	if b == 0 {
		return value.Value{}, NewError(ErrInvalidArg)
	}
	return value.Number(float64(a % b)), nil
}

func kwBitAnd(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	a, b, err := ev.evalIntPair(expr)
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(float64(a & b)), nil
}

func kwBitOr(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	a, b, err := ev.evalIntPair(expr)
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(float64(a | b)), nil
}

func kwBitXor(ev *Evaluator, expr *ast.Expr) (value.Value, error) {
	a, b, err := ev.evalIntPair(expr)
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(float64(a ^ b)), nil
}
