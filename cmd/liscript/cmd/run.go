package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/go-liscript/internal/printer"
	"github.com/cwbudde/go-liscript/internal/reader"
	"github.com/cwbudde/go-liscript/pkg/liscript"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a liscript file or inline expression",
	Long: `Execute a liscript program read one top-level form per line from a
file or from an inline expression.

Examples:
  liscript run script.lis
  liscript run -e "(console dump (+ 1 2))"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(cmd *cobra.Command, args []string) error {
	var src string
	switch {
	case evalExpr != "":
		src = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		src = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	r := reader.New(bufio.NewReader(strings.NewReader(src)))
	in := liscript.New(os.Stdin)
	if dumpExpr {
		setReplConfigDumpExpr(in)
	}

	for {
		expr, ok, err := r.ReadExpr()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !ok {
			continue
		}
		if err := r.ExpectEOL(); err != nil {
			return err
		}

		if in.DumpExprEnabled() {
			fmt.Print(printer.DumpExpr(expr))
		}

		result, err := in.Eval.Eval(expr)
		if err != nil {
			return fmt.Errorf("runtime error: %w", err)
		}
		fmt.Println(printer.FormatValue(result))
	}
}
