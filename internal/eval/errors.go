package eval

import "fmt"

// Kind enumerates the evaluator's closed error taxonomy, disjoint from
// reader.Kind: every runtime fault the evaluator (or a native built-in)
// can raise fits exactly one of these.
type Kind int

const (
	ErrInvalidKeywordList Kind = iota
	ErrInvalidKeywordAtom
	ErrInvalidConditional
	ErrInvalidFuncCall
	ErrListEvaluate
	ErrInvalidArg
	ErrOutOfRange
	ErrNotObject
	ErrNotString
	ErrNotFunction
	ErrNotArray
	ErrNotNumber
	ErrNotInteger
	ErrNullReference
	ErrUndefined
)

var messages = map[Kind]string{
	ErrInvalidKeywordList: "invalid keyword list",
	ErrInvalidKeywordAtom: "invalid keyword atom",
	ErrInvalidConditional: "invalid conditional",
	ErrInvalidFuncCall:    "invalid function call",
	ErrListEvaluate:       "list evaluate error",
	ErrInvalidArg:         "invalid argument",
	ErrOutOfRange:         "index out of range",
	ErrNotObject:          "value is not an object",
	ErrNotString:          "value is not a string",
	ErrNotFunction:        "value is not a function",
	ErrNotArray:           "value is not an array",
	ErrNotNumber:          "value is not a number",
	ErrNotInteger:         "value is not an integer",
	ErrNullReference:      "null reference",
	ErrUndefined:          "value is undefined",
}

// Error is the evaluator's single error type; Kind identifies which
// taxonomy entry occurred, with an optional human-readable Message for
// the cases (arity mismatches, and so on) where a bare Kind isn't
// specific enough to be useful at the REPL.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return messages[e.Kind]
}

// NewError constructs a Kind-tagged error with its default message.
// Exported for the builtin package, whose native functions raise the
// same taxonomy as the evaluator itself.
func NewError(k Kind) *Error { return &Error{Kind: k} }

// NewErrorf constructs a Kind-tagged error with a formatted message.
func NewErrorf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}
