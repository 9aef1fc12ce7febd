package main

import (
	"fmt"
	"io"
	"os"

	"github.com/eaburns/konbini/grammars/json"
	"github.com/eaburns/pretty"
	"github.com/spf13/cobra"
)

func newJSONCmd(f *flags) *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document and print its value",
		Long: `Parse a JSON document and print its value.

If no file is provided, reads the document from stdin.

Use -c to print the value as canonical JSON
instead of as a Go value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			var source []byte
			var err error
			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				path = args[0]
				source, err = os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			v, err := json.ParseFile(path, string(source), f.runOptions()...)
			if err != nil {
				return err
			}
			if canonical {
				fmt.Println(json.Print(v))
				return nil
			}
			pretty.Print(v)
			fmt.Println("")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&canonical, "canonical", "c", false, "print canonical JSON")

	return cmd
}
