// Package reader turns a rune stream into expression trees, one
// top-level form at a time. The grammar is deliberately tiny: a list is
// parenthesized, a string is double-quoted, and anything else is read
// as a run of non-space, non-paren characters that is either a number
// (if it starts with a digit) or an atom.
package reader

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cwbudde/go-liscript/internal/ast"
)

// Reader reads successive top-level forms from src.
type Reader struct {
	src io.RuneScanner
}

// New wraps src, which must already support unreading the last rune it
// produced (bufio.Reader satisfies this directly).
func New(src io.RuneScanner) *Reader {
	return &Reader{src: src}
}

func (r *Reader) getRune() (rune, error) {
	ch, _, err := r.src.ReadRune()
	return ch, err
}

func (r *Reader) unreadRune() {
	_ = r.src.UnreadRune()
}

// ReadExpr reads one top-level expression. ok is false with a nil err
// when the current line held no expression (a bare newline, or leading
// whitespace followed by one) rather than a parse failure; err is
// io.EOF at the end of the stream.
func (r *Reader) ReadExpr() (expr *ast.Expr, ok bool, err error) {
	e := &ast.Expr{}
	found, err := r.readInto(e, e)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return e, true, nil
}

func isTokenChar(ch rune) bool {
	return unicode.IsGraphic(ch) && !unicode.IsSpace(ch)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// readInto parses one expression into e, recording root on every node
// it creates. It returns false, nil when the very first non-whitespace
// character it would have read is a bare newline, and false, io.EOF
// when the stream has nothing left at all.
func (r *Reader) readInto(e *ast.Expr, root *ast.Expr) (bool, error) {
	ch, err := r.skipLeadingSpace()
	if err != nil {
		return false, err
	}
	if !ch.present {
		return false, nil
	}

	switch {
	case ch.r == '"':
		if err := r.readString(e); err != nil {
			return false, err
		}
	case ch.r == '(':
		if err := r.readList(e, root); err != nil {
			return false, err
		}
	default:
		if err := r.readToken(e, ch.r); err != nil {
			return false, err
		}
	}

	e.Root = root
	return true, nil
}

type maybeRune struct {
	r       rune
	present bool
}

// skipLeadingSpace consumes whitespace up to the first non-space rune,
// which it returns unconsumed from the stream's point of view (callers
// use the returned rune directly rather than unreading it). A bare
// newline encountered here yields !present, nil; reaching the end of
// the stream before any form starts yields !present, io.EOF, so
// ReadExpr's caller can tell "blank line" apart from "nothing left to
// read" and stop looping.
func (r *Reader) skipLeadingSpace() (maybeRune, error) {
	for {
		ch, err := r.getRune()
		if err != nil {
			if err == io.EOF {
				return maybeRune{}, io.EOF
			}
			return maybeRune{}, err
		}
		if ch == '\n' {
			return maybeRune{}, nil
		}
		if !unicode.IsSpace(ch) {
			return maybeRune{r: ch, present: true}, nil
		}
	}
}

func (r *Reader) readList(e *ast.Expr, root *ast.Expr) error {
	e.Kind = ast.List
	for {
		ch, err := r.getRune()
		if err != nil {
			return newError(ErrUnexpectedEOF)
		}
		if unicode.IsSpace(ch) {
			continue
		}
		if ch == ')' {
			return nil
		}
		r.unreadRune()

		child := &ast.Expr{}
		found, err := r.readInto(child, root)
		if err != nil {
			return err
		}
		if !found {
			// The only way the leading-whitespace skip can fail here
			// (space and ')' were already filtered above) is EOF.
			return newError(ErrUnexpectedEOF)
		}
		e.List = append(e.List, child)
	}
}

func (r *Reader) readToken(e *ast.Expr, first rune) error {
	var sb strings.Builder
	ch := first
	for {
		if ch == '(' || ch == ')' || unicode.IsSpace(ch) {
			r.unreadRune()
			break
		}
		if !isTokenChar(ch) {
			return tokenError(sb.String())
		}
		sb.WriteRune(ch)

		next, err := r.getRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		ch = next
	}

	tok := sb.String()
	if tok == "" {
		return newError(ErrInvalidAtom)
	}
	if isDigit(tok[0]) {
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return newError(ErrInvalidNumber)
		}
		e.Kind = ast.Number
		e.Number = n
		return nil
	}
	e.Kind = ast.Atom
	e.Text = tok
	return nil
}

func tokenError(partial string) error {
	if len(partial) > 0 && isDigit(partial[0]) {
		return newError(ErrInvalidNumber)
	}
	return newError(ErrInvalidAtom)
}

func (r *Reader) readString(e *ast.Expr) error {
	e.Kind = ast.String
	var sb strings.Builder
	for {
		ch, err := r.getRune()
		if err != nil {
			return newError(ErrUnexpectedEOF)
		}
		switch {
		case ch == '"':
			e.Text = sb.String()
			return nil
		case ch == '\n':
			return newError(ErrUnexpectedNewline)
		case ch == '\\':
			esc, err := r.getRune()
			if err != nil {
				return newError(ErrUnexpectedEOF)
			}
			switch esc {
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			default:
				return newError(ErrInvalidEscape)
			}
		case unicode.IsSpace(ch):
			sb.WriteByte(' ')
		default:
			sb.WriteRune(ch)
		}
	}
}

// ExpectEOL enforces that, after a top-level form was successfully
// read, the rest of the line holds nothing but a trailing newline (or
// end of stream).
func (r *Reader) ExpectEOL() error {
	ch, err := r.getRune()
	if err != nil {
		return nil
	}
	if ch != '\n' {
		return newError(ErrUnexpectedCharacter)
	}
	return nil
}

// SkipToNextLine discards input through the next newline (or end of
// stream), used to resynchronize after a parse error mid-line.
func (r *Reader) SkipToNextLine() {
	for {
		ch, err := r.getRune()
		if err != nil || ch == '\n' {
			return
		}
	}
}
