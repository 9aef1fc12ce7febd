// Copyright © 2020 The Konbini Authors under an MIT-style license.

// Konbini runs the example grammars on their input.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eaburns/konbini"
	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pretty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// flags shared by the subcommands.
type flags struct {
	partial bool
	tree    bool
	verbose int
}

func main() {
	pretty.Indent = "    "

	var f flags
	rootCmd := &cobra.Command{
		Use:           "konbini",
		Short:         "Run the konbini example grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			commonlog.Configure(f.verbose, nil)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&f.partial, "partial", false, "accept input with unparsed trailing text")
	rootCmd.PersistentFlags().BoolVar(&f.tree, "tree", false, "print the failure tree of a parse error")
	rootCmd.PersistentFlags().CountVarP(&f.verbose, "verbose", "v", "log grammar rule traces (repeat for more detail)")

	rootCmd.AddCommand(newJSONCmd(&f))
	rootCmd.AddCommand(newCalcCmd(&f))

	if err := rootCmd.Execute(); err != nil {
		die(err, f.tree)
	}
}

func (f *flags) runOptions() []konbini.RunOption {
	return []konbini.RunOption{konbini.RequireFullConsumption(!f.partial)}
}

func die(err error, tree bool) {
	var perr *konbini.ParseError
	if tree && errors.As(err, &perr) {
		peg.PrettyWrite(os.Stdout, perr.Tree())
		fmt.Println("")
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
