package main

import (
	"fmt"
	"os"

	"github.com/prestosql/prestocst/pkgs/parser"
	"github.com/prestosql/prestocst/pkgs/syntax"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var rule string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a file and print its diagnostics, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			tree, errs := parseWithRule(rule, source)
			for _, e := range errs {
				printDiagnostic(os.Stdout, e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("found %d diagnostic(s)", len(errs))
			}
			_ = tree
			return nil
		},
	}

	cmd.Flags().StringVar(&rule, "rule", "statement", "entry point to parse from: statement, query, expression, type")
	return cmd
}

func parseWithRule(rule, source string) (*parser.Tree, []*parser.ParseError) {
	switch rule {
	case "query":
		return parser.ParseQuery(source)
	case "expression":
		return parser.ParseExpression(source)
	case "type":
		return parser.ParseType(source)
	default:
		return parser.ParseStatement(source)
	}
}

func printDiagnostic(w *os.File, e *parser.ParseError) {
	start := e.Range().Start
	fmt.Fprintf(w, "%d:%d: %s%d: %s\n", start.Line+1, start.Column+1, diagnosticPrefix(e.Code), e.Code, e.Messages[0].Text)
}

func diagnosticPrefix(code int) string {
	if code == syntax.ErrSyntax {
		return "E"
	}
	return "L"
}
