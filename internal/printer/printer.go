// Package printer formats run-time values and parsed expression trees
// for display: FormatValue backs console.dump and the REPL's echoed
// result, DumpExpr backs --dump-expr/replConfig.dumpExpr. Both mirror
// the original interpreter's print_var/dump_expr conventions exactly,
// down to the bracket and indentation choices.
package printer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/go-liscript/internal/ast"
	"github.com/cwbudde/go-liscript/internal/value"
)

// FormatValue renders v the way the REPL echoes a result and
// console.dump prints an argument: booleans as true/false, numbers
// bare, undefined as "(undefined)", null as "(null)", strings quoted,
// functions as "(func (p1, p2 ) (...))", and arrays/objects as an
// indented, comma-separated, newline-delimited listing.
func FormatValue(v value.Value) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return b.String()
}

// Println writes FormatValue(v) to stdout followed by a newline,
// backing console.dump's one-line-per-argument behavior.
func Println(v value.Value) {
	fmt.Fprintln(os.Stdout, FormatValue(v))
}

func writeValue(b *strings.Builder, v value.Value, indent int) {
	switch v.Kind {
	case value.KindBoolean:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindNumber:
		b.WriteString(formatNumber(v.Num))
	case value.KindUndefined:
		b.WriteString("(undefined)")
	case value.KindObject:
		writeObject(b, v.Obj, indent)
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func writeObject(b *strings.Builder, o *value.Object, indent int) {
	if o == nil {
		b.WriteString("(null)")
		return
	}
	switch o.Tag {
	case value.TagString:
		b.WriteByte('"')
		b.WriteString(o.StringContent())
		b.WriteByte('"')
	case value.TagFunction:
		writeFunction(b, o)
	case value.TagArray:
		writeArray(b, o, indent)
	default:
		writePlain(b, o, indent)
	}
}

func writeFunction(b *strings.Builder, o *value.Object) {
	b.WriteString("(func (")
	fn := o.Function()
	for i, p := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.StringContent())
	}
	b.WriteString(" ) (...))")
}

func writeArray(b *strings.Builder, o *value.Object, indent int) {
	items := o.Array().Items
	if len(items) == 0 {
		b.WriteString("[ ]")
		return
	}
	inner := strings.Repeat("  ", indent+1)
	for i, it := range items {
		if i == 0 {
			b.WriteString("[\n")
		} else {
			b.WriteString(",\n")
		}
		b.WriteString(inner)
		writeValue(b, it, indent+1)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteByte(']')
}

func writePlain(b *strings.Builder, o *value.Object, indent int) {
	keys := o.Props.Keys()
	if len(keys) == 0 {
		b.WriteString("{ }")
		return
	}
	inner := strings.Repeat("  ", indent+1)
	for i, k := range keys {
		if i == 0 {
			b.WriteString("{\n")
		} else {
			b.WriteString(",\n")
		}
		b.WriteString(inner)
		b.WriteString(k.StringContent())
		b.WriteString(": ")
		v, _ := o.Props.Get(k)
		writeValue(b, v, indent+1)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteByte('}')
}

// DumpExpr renders a parsed form the way --dump-expr does: one node per
// line, tagged with its shape, nested lists indented two spaces deeper
// than their parent.
func DumpExpr(e *ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, e, 0)
	return b.String()
}

// FprintDumpExpr writes DumpExpr(e) to w, letting the CLI avoid a
// throwaway string allocation when it is only going to print it.
func FprintDumpExpr(w io.Writer, e *ast.Expr) {
	fmt.Fprint(w, DumpExpr(e))
}

func writeExpr(b *strings.Builder, e *ast.Expr, indent int) {
	pad := strings.Repeat("  ", indent)
	b.WriteString(pad)
	switch e.Kind {
	case ast.Atom:
		b.WriteString("[atom] ")
		b.WriteString(e.Text)
		b.WriteByte('\n')
	case ast.String:
		b.WriteString("[string] ")
		b.WriteString(e.Text)
		b.WriteByte('\n')
	case ast.Number:
		b.WriteString("[number] ")
		b.WriteString(formatNumber(e.Number))
		b.WriteByte('\n')
	case ast.List:
		if len(e.List) == 0 {
			b.WriteString("( )\n")
			return
		}
		b.WriteString("(\n")
		for _, sub := range e.List {
			writeExpr(b, sub, indent+1)
		}
		b.WriteString(pad)
		b.WriteString(")\n")
	}
}
