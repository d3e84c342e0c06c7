package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-liscript/internal/printer"
	"github.com/cwbudde/go-liscript/internal/reader"
	"github.com/cwbudde/go-liscript/internal/value"
	"github.com/cwbudde/go-liscript/pkg/liscript"
	"github.com/spf13/cobra"
)

// linePrompter adapts an interactive stdin into the io.RuneScanner the
// reader needs, printing the ">> "/"-- " prompt pair the original REPL
// uses: ">> " the first time a prompt is shown since the last
// top-level form finished, "-- " for every continuation line a
// multi-line list form needs after that.
type linePrompter struct {
	in    *bufio.Reader
	out   io.Writer
	line  []byte
	pos   int
	first bool
	atEOF bool
}

// newLinePrompter takes an already-constructed *bufio.Reader rather
// than wrapping a fresh one around in: the same reader also backs
// console.readLine, and two independent bufio.Readers layered over one
// os.Stdin would each buffer ahead and silently steal bytes from the
// other.
func newLinePrompter(in *bufio.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: in, out: out, first: true}
}

// resetPrompt marks the next read as starting a fresh top-level form,
// so its first prompt is ">> " rather than "-- ".
func (p *linePrompter) resetPrompt() { p.first = true }

func (p *linePrompter) ReadRune() (rune, int, error) {
	if p.pos >= len(p.line) {
		if p.atEOF {
			return 0, 0, io.EOF
		}
		if p.first {
			fmt.Fprint(p.out, ">> ")
			p.first = false
		} else {
			fmt.Fprint(p.out, "-- ")
		}
		text, err := p.in.ReadString('\n')
		if err != nil && text == "" {
			p.atEOF = true
			return 0, 0, io.EOF
		}
		if err != nil {
			p.atEOF = true
		}
		if n := len(text); n > 0 && text[n-1] == '\n' {
			text = text[:n-1]
		}
		p.line = []byte(text)
		p.pos = 0
	}
	if p.pos == len(p.line) {
		p.pos++
		return '\n', 1, nil
	}
	ch := rune(p.line[p.pos])
	p.pos++
	return ch, 1, nil
}

func (p *linePrompter) UnreadRune() error {
	if p.pos > 0 {
		p.pos--
	}
	return nil
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl is also the root command's own action, so running bare
// `liscript` with no subcommand drops straight into the REPL.
func runRepl(cmd *cobra.Command, args []string) error {
	return runReplOn(os.Stdin, os.Stdout, os.Stderr, dumpExpr)
}

// runReplOn is runRepl's testable core: it takes its three streams as
// parameters instead of reaching for os.Stdin/os.Stdout/os.Stderr, so
// a test can drive the real REPL loop (prompts, dumpExpr, per-form
// error recovery, and all) over an in-memory transcript.
func runReplOn(stdinSrc io.Reader, stdout, stderr io.Writer, dumpExprFlag bool) error {
	stdin := bufio.NewReader(stdinSrc)
	prompter := newLinePrompter(stdin, stdout)
	r := reader.New(prompter)
	in := liscript.New(stdin)
	if dumpExprFlag {
		setReplConfigDumpExpr(in)
	}

	for {
		prompter.resetPrompt()
		expr, ok, err := r.ReadExpr()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			fmt.Fprintln(stderr, err)
			r.SkipToNextLine()
			continue
		}
		if !ok {
			continue
		}
		if err := r.ExpectEOL(); err != nil {
			fmt.Fprintln(stderr, err)
			r.SkipToNextLine()
			continue
		}

		if in.DumpExprEnabled() {
			fmt.Fprint(stdout, printer.DumpExpr(expr))
		}

		result, err := in.Eval.Eval(expr)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		fmt.Fprintln(stdout, printer.FormatValue(result))
	}
}

func setReplConfigDumpExpr(in *liscript.Interpreter) {
	_, v, ok := value.FindMember(in.Env.Global, value.Intern("replConfig"))
	if !ok || v.Kind != value.KindObject || v.Obj == nil {
		return
	}
	v.Obj.Props.Set(value.Intern("dumpExpr"), value.Boolean(true))
}
