package eval

import (
	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/value"
)

// listKeywords holds every list-keyword other than a plain call: the
// head atom names an entry here instead of being evaluated as an
// expression.
var listKeywords map[string]func(*Evaluator, *ast.Expr) (value.Value, error)

func init() {
	listKeywords = map[string]func(*Evaluator, *ast.Expr) (value.Value, error){
		"func":  (*Evaluator).kwFunc,
		"new":   (*Evaluator).kwNew,
		"array": (*Evaluator).kwArray,
		"getf":  (*Evaluator).kwGetf,
		"setf":  (*Evaluator).kwSetf,
		"getl":  (*Evaluator).kwGetl,
		"setl":  (*Evaluator).kwSetl,
		"geti":  (*Evaluator).kwGeti,
		"seti":  (*Evaluator).kwSeti,
		"do":    (*Evaluator).kwDo,
		"if":    (*Evaluator).kwIf,
		"while": (*Evaluator).kwWhile,
		"and":   (*Evaluator).kwAnd,
		"or":    (*Evaluator).kwOr,
		"not":   (*Evaluator).kwNot,
		"=":     (*Evaluator).kwEq,
		"/=":    (*Evaluator).kwNeq,
		"<":     kwCompareFn(func(a, b float64) bool { return a < b }),
		"<=":    kwCompareFn(func(a, b float64) bool { return a <= b }),
		">":     kwCompareFn(func(a, b float64) bool { return a > b }),
		">=":    kwCompareFn(func(a, b float64) bool { return a >= b }),
		"+":     kwSum,
		"-":     kwMinus,
		"*":     kwProduct,
		"/":     kwDivide,
		"%":     kwMod,
		"idiv":  kwIdiv,
		"imod":  kwImod,
		"&":     kwBitAnd,
		"|":     kwBitOr,
		"^":     kwBitXor,
	}
}
