package builtin

import (
	"bufio"
	"io"
	"strings"

	"github.com/cwbudde/go-liscript/internal/env"
	"github.com/cwbudde/go-liscript/internal/eval"
	"github.com/cwbudde/go-liscript/internal/printer"
	"github.com/cwbudde/go-liscript/internal/value"
)

// installConsole binds `console`, a plain object carrying two native
// members: dump(items...), variadic, printing each argument on its own
// line; and readLine(), which reads one line from stdin. stdin is
// wrapped in a *bufio.Reader owned by this console instance so repeated
// readLine calls resume where the last one left off, and so tests can
// supply a strings.Reader instead of the process's real stdin.
func installConsole(e *env.Env, global *value.Object, stdin io.Reader) {
	console := value.NewPlainObject(e.ProtoObject)
	r := bufio.NewReader(stdin)

	console.Props.Set(value.Intern("dump"), value.ObjectValue(
		value.NewNativeFunctionObject(e.ProtoFunction, consoleDump)))
	console.Props.Set(value.Intern("readLine"), value.ObjectValue(
		value.NewNativeFunctionObject(e.ProtoFunction, consoleReadLineFunc(r))))

	global.Props.Set(value.Intern("console"), value.ObjectValue(console))
}

func consoleDump(this value.Value, args []value.Value) (value.Value, error) {
	for _, a := range args {
		printer.Println(a)
	}
	return value.Undefined(), nil
}

func consoleReadLineFunc(r *bufio.Reader) value.NativeFunc {
	return func(this value.Value, args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return value.Value{}, eval.NewError(eval.ErrInvalidArg)
		}
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return value.Value{}, eval.NewErrorf(eval.ErrInvalidArg, "readLine: %v", err)
		}
		line = strings.TrimRight(line, "\r\n")
		return value.ObjectValue(value.Intern(line)), nil
	}
}
