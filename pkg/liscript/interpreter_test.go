package liscript

import (
	"bufio"
	"strings"
	"testing"

	"github.com/cwbudde/go-liscript/internal/printer"
	"github.com/cwbudde/go-liscript/internal/reader"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTranscript feeds src through a fresh interpreter one top-level
// form at a time and renders each result the way the REPL echoes it,
// joining every line into one transcript string. A form that errors
// contributes its error message instead of a value and the loop
// continues, mirroring the REPL's own per-form recovery.
func runTranscript(t *testing.T, src string) string {
	t.Helper()
	in := New(strings.NewReader(""))
	r := reader.New(bufio.NewReader(strings.NewReader(src)))

	var lines []string
	for {
		expr, ok, err := r.ReadExpr()
		if err != nil {
			break
		}
		if !ok {
			continue
		}
		require.NoError(t, r.ExpectEOL())

		result, err := in.Eval.Eval(expr)
		if err != nil {
			lines = append(lines, "error: "+err.Error())
			continue
		}
		lines = append(lines, printer.FormatValue(result))
	}
	return strings.Join(lines, "\n")
}

func TestArithmeticTranscript(t *testing.T) {
	out := runTranscript(t, "(+ 1 2 3)\n(* 2 (+ 1 1))\n(/ 7 2)\n")
	snaps.MatchSnapshot(t, out)
}

func TestConditionalTranscript(t *testing.T) {
	out := runTranscript(t, "(if true 1 2)\n(if false 1 2)\n(and true true)\n(or false true)\n")
	snaps.MatchSnapshot(t, out)
}

func TestFunctionAndObjectTranscript(t *testing.T) {
	out := runTranscript(t, strings.Join([]string{
		`(func square (x) (* x x))`,
		`(global square 5)`,
		`(setl counter (new Object))`,
		`(setf counter value 0)`,
		`(setf counter bump (func () (setf this value (+ (getf this value) 1))))`,
		`(counter bump)`,
		`(counter bump)`,
		`(getf counter value)`,
	}, "\n") + "\n")
	snaps.MatchSnapshot(t, out)
}

func TestArrayTranscript(t *testing.T) {
	out := runTranscript(t, "(array 1 2 3)\n(array)\n")
	snaps.MatchSnapshot(t, out)
}

func TestErrorRecoveryTranscript(t *testing.T) {
	out := runTranscript(t, "(if 1 2 3)\n(+ 1 2)\n(5)\n(+ 1 2)\n")
	snaps.MatchSnapshot(t, out)
}

func TestInterpreterIsolation(t *testing.T) {
	a := New(strings.NewReader(""))
	b := New(strings.NewReader(""))
	assert.NotSame(t, a.Env, b.Env)
	assert.NotSame(t, a.Env.Global, b.Env.Global)
}
