package main

import (
	"os"

	"github.com/alecthomas/repr"
	"github.com/prestosql/prestocst/pkgs/parser"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var rule string

	cmd := &cobra.Command{
		Use:   "tree <file|->",
		Short: "Parse a file and dump its concrete syntax tree structurally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			tree, errs := parseWithRule(rule, source)
			repr.Println(tree)
			for _, e := range errs {
				printDiagnostic(os.Stdout, e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rule, "rule", "statement", "entry point to parse from: statement, query, expression, type")
	return cmd
}
