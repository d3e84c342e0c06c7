// Command liscript is the CLI entry point: `liscript` alone drops into
// the REPL, `liscript run` executes a file or -e expression, and
// `liscript version` prints build information.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-liscript/cmd/liscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
