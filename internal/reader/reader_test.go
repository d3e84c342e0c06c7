package reader

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, src string) *ast.Expr {
	t.Helper()
	r := New(bufio.NewReader(strings.NewReader(src)))
	expr, ok, err := r.ReadExpr()
	require.NoError(t, err)
	require.True(t, ok)
	return expr
}

func TestReadAtom(t *testing.T) {
	e := mustRead(t, "hello\n")
	assert.Equal(t, ast.Atom, e.Kind)
	assert.Equal(t, "hello", e.Text)
}

func TestReadNumber(t *testing.T) {
	e := mustRead(t, "3.14\n")
	assert.Equal(t, ast.Number, e.Kind)
	assert.Equal(t, 3.14, e.Number)
}

func TestReadString(t *testing.T) {
	e := mustRead(t, `"hi\tthere"` + "\n")
	assert.Equal(t, ast.String, e.Kind)
	assert.Equal(t, "hi\tthere", e.Text)
}

func TestReadList(t *testing.T) {
	e := mustRead(t, "(+ 1 2)\n")
	require.Equal(t, ast.List, e.Kind)
	require.Len(t, e.List, 3)
	assert.Equal(t, "+", e.List[0].Text)
	assert.Equal(t, 1.0, e.List[1].Number)
	assert.Equal(t, 2.0, e.List[2].Number)
	assert.Same(t, e, e.List[0].Root)
}

func TestReadListSpansLines(t *testing.T) {
	e := mustRead(t, "(do\n  1\n  2)\n")
	require.Equal(t, ast.List, e.Kind)
	require.Len(t, e.List, 3)
}

func TestBlankLineYieldsNotOk(t *testing.T) {
	r := New(bufio.NewReader(strings.NewReader("\nhello\n")))
	_, ok, err := r.ReadExpr()
	require.NoError(t, err)
	assert.False(t, ok)

	expr, ok, err := r.ReadExpr()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", expr.Text)
}

func TestEOFStopsTheLoop(t *testing.T) {
	r := New(bufio.NewReader(strings.NewReader("")))
	_, ok, err := r.ReadExpr()
	assert.False(t, ok)
	assert.ErrorIs(t, err, io.EOF)
}

func TestUnterminatedListIsUnexpectedEOF(t *testing.T) {
	r := New(bufio.NewReader(strings.NewReader("(+ 1 2")))
	_, _, err := r.ReadExpr()
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrUnexpectedEOF, rerr.Kind)
}

func TestUnterminatedStringIsUnexpectedNewline(t *testing.T) {
	r := New(bufio.NewReader(strings.NewReader("\"oops\n")))
	_, _, err := r.ReadExpr()
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrUnexpectedNewline, rerr.Kind)
}

func TestExpectEOLRejectsTrailingGarbage(t *testing.T) {
	r := New(bufio.NewReader(strings.NewReader("foo bar\n")))
	_, ok, err := r.ReadExpr()
	require.NoError(t, err)
	require.True(t, ok)
	err = r.ExpectEOL()
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrUnexpectedCharacter, rerr.Kind)
}
