package reader

// Kind enumerates the reader's closed error taxonomy. It never overlaps
// with eval.Kind: a syntax problem is always a reader.Error, a runtime
// problem is always an eval.Error.
type Kind int

const (
	ErrUnexpectedEOF Kind = iota
	ErrUnexpectedNewline
	ErrInvalidEscape
	ErrInvalidAtom
	ErrInvalidNumber
	ErrUnexpectedCharacter
)

var messages = map[Kind]string{
	ErrUnexpectedEOF:       "unexpected end of file",
	ErrUnexpectedNewline:   "unexpected newline",
	ErrInvalidEscape:       "invalid escape character",
	ErrInvalidAtom:         "invalid atom",
	ErrInvalidNumber:       "invalid number",
	ErrUnexpectedCharacter: "unexpected character",
}

// Error is the reader's single error type; Kind identifies which of the
// six syntax problems occurred.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string { return messages[e.Kind] }

func newError(k Kind) *Error { return &Error{Kind: k} }
