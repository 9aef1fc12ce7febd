package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eaburns/konbini/grammars/calc"
	"github.com/eaburns/pretty"
	"github.com/spf13/cobra"
)

func newCalcCmd(f *flags) *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "calc <expr>...",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression.

The arguments are joined with spaces to form the expression.
The operators are + - * / and ^, with parentheses for grouping.

Use -t to print the tokens of the expression instead of its value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			if tokens {
				toks, err := calc.Lex(expr)
				if err != nil {
					return err
				}
				pretty.Print(toks)
				fmt.Println("")
				return nil
			}
			v, err := calc.Eval(expr, f.runOptions()...)
			if err != nil {
				return err
			}
			fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tokens, "tokens", "t", false, "print the tokens instead of evaluating")

	return cmd
}
