// Package cmd implements the liscript command-line interface: a
// cobra.Command tree with the REPL as its default action plus `run`
// and `version` subcommands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// dumpExpr mirrors replConfig.dumpExpr from the CLI side: set once at
// startup via --dump-expr, it seeds the interpreter's own flag instead
// of being consulted directly, so a script toggling replConfig.dumpExpr
// at runtime still works as expected.
var dumpExpr bool

var rootCmd = &cobra.Command{
	Use:     "liscript",
	Short:   "liscript interpreter",
	Long:    `liscript is a small Lisp-syntax, prototype-based scripting language.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&dumpExpr, "dump-expr", false, "print each parsed form before evaluating it")
}
