// Package ast holds the expression tree produced by the reader and
// consumed by the evaluator. The grammar has exactly one structural
// shape, a list, plus three leaves, so one node type covers all of it.
package ast

// Kind tags which of the four expression shapes a Expr holds.
type Kind int

const (
	// List is a parenthesized sequence of sub-expressions.
	List Kind = iota
	// Atom is a bare, non-numeric token: a keyword, identifier, or
	// operator spelling.
	Atom
	// String is a double-quoted literal; Text holds the decoded content.
	String
	// Number is a digit-leading token parsed as a float64.
	Number
)

// Expr is one node of a parsed form. Only the fields matching Kind are
// meaningful; the rest are zero. Root always points at the outermost
// Expr of the top-level form this node was read from, which is enough
// to keep the whole tree reachable once it is captured inside a
// function's body (see value.Function).
type Expr struct {
	Kind Kind

	// Text holds the atom spelling (Kind == Atom) or the decoded string
	// content (Kind == String).
	Text string

	// Number holds the parsed value when Kind == Number.
	Number float64

	// List holds the sub-expressions when Kind == List.
	List []*Expr

	// Root is the top-level Expr this node was parsed as part of.
	Root *Expr
}
